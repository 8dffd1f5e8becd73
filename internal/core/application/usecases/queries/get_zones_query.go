package queries

import (
	"errors"

	"pratofit/internal/core/domain/model/checkout"
	"pratofit/internal/core/domain/model/zone"
	"pratofit/internal/pkg/guard"
)

var (
	ErrGetZonesQueryIsNotConstructed = errors.New(
		"GetZonesQuery must be created via NewGetZonesQuery constructor",
	)
)

// GetZonesQuery retrieves the delivery zone table and the pickup point, so
// a client can render the neighborhood picker and the pickup details.
type GetZonesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetZonesQuery creates a query for the delivery zones.
func NewGetZonesQuery() GetZonesQuery {
	return GetZonesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetZonesQueryIsNotConstructed if validation fails.
func (q GetZonesQuery) Validate() error {
	return q.guard.Validate(ErrGetZonesQueryIsNotConstructed)
}

// GetZonesQueryResponse carries the fee tiers and the pickup point.
type GetZonesQueryResponse struct {
	Zones  []zone.Zone
	Pickup checkout.PickupInfo
}
