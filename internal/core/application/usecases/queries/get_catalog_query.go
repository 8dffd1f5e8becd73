package queries

import (
	"errors"

	"pratofit/internal/core/domain/model/catalog"
	"pratofit/internal/pkg/guard"
)

var (
	ErrGetCatalogQueryIsNotConstructed = errors.New(
		"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
	)
)

// GetCatalogQuery retrieves the kit definitions and the menu grouped by
// category. An optional search term filters the menu by title or tag,
// case-insensitively; categories left empty by the filter are dropped.
type GetCatalogQuery struct {
	search string

	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a catalog query. An empty search returns the
// whole menu.
func NewGetCatalogQuery(search string) GetCatalogQuery {
	return GetCatalogQuery{
		search: search,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCatalogQueryIsNotConstructed if validation fails.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// Search returns the menu filter term, possibly empty.
func (q GetCatalogQuery) Search() string {
	return q.search
}

// GetCatalogQueryResponse carries the kit definitions and the filtered
// menu in display order.
type GetCatalogQueryResponse struct {
	Kits       []catalog.Kit
	Categories []catalog.Category
}
