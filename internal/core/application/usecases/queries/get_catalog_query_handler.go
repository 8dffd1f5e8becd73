package queries

import (
	"context"

	"pratofit/internal/core/domain/model/catalog"
)

// GetCatalogQueryHandler serves the static catalog: kits and the menu.
type GetCatalogQueryHandler struct {
	catalog *catalog.Catalog
}

// NewGetCatalogQueryHandler creates a handler for catalog reads.
func NewGetCatalogQueryHandler(cat *catalog.Catalog) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{catalog: cat}
}

// Handle returns the kits and the menu grouped by category, filtered by
// the query's search term.
func (h GetCatalogQueryHandler) Handle(
	_ context.Context,
	query GetCatalogQuery,
) (GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCatalogQueryResponse{}, err
	}

	return GetCatalogQueryResponse{
		Kits:       h.catalog.Kits(),
		Categories: h.catalog.Categories(query.Search()),
	}, nil
}
