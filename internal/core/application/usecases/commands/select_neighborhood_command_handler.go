package commands

import (
	"context"

	"pratofit/internal/core/domain/model/zone"
	"pratofit/internal/core/ports"
)

// SelectNeighborhoodCommandHandler sets or clears the session's delivery
// neighborhood from the zone table.
type SelectNeighborhoodCommandHandler struct {
	sessionRepo ports.SessionRepository
	zones       zone.Table
}

// NewSelectNeighborhoodCommandHandler creates a handler for manual
// neighborhood selection.
func NewSelectNeighborhoodCommandHandler(
	sessionRepo ports.SessionRepository,
	zones zone.Table,
) SelectNeighborhoodCommandHandler {
	return SelectNeighborhoodCommandHandler{sessionRepo: sessionRepo, zones: zones}
}

// Handle applies the selection to the session's checkout.
// Returns errs.ObjectNotFoundError when the name is not a table spelling.
func (h SelectNeighborhoodCommandHandler) Handle(
	ctx context.Context,
	cmd SelectNeighborhoodCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := loadSession(ctx, h.sessionRepo, cmd.SessionID())
	if err != nil {
		return err
	}

	if err = aggregate.Checkout().SelectNeighborhood(cmd.Neighborhood(), h.zones); err != nil {
		return err
	}

	return saveSession(ctx, h.sessionRepo, aggregate)
}
