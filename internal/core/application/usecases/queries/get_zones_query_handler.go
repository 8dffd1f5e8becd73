package queries

import (
	"context"

	"pratofit/internal/core/domain/model/checkout"
	"pratofit/internal/core/domain/model/zone"
)

// GetZonesQueryHandler serves the static delivery zone table and pickup
// point.
type GetZonesQueryHandler struct {
	zones  zone.Table
	pickup checkout.PickupInfo
}

// NewGetZonesQueryHandler creates a handler for zone reads.
func NewGetZonesQueryHandler(zones zone.Table, pickup checkout.PickupInfo) GetZonesQueryHandler {
	return GetZonesQueryHandler{zones: zones, pickup: pickup}
}

// Handle returns the fee tiers in ascending fee order and the pickup point.
func (h GetZonesQueryHandler) Handle(
	_ context.Context,
	query GetZonesQuery,
) (GetZonesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetZonesQueryResponse{}, err
	}

	return GetZonesQueryResponse{
		Zones:  h.zones.Zones(),
		Pickup: h.pickup,
	}, nil
}
