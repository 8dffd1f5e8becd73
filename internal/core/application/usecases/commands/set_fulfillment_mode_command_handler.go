package commands

import (
	"context"

	"pratofit/internal/core/domain/model/checkout"
	"pratofit/internal/core/domain/model/zone"
	"pratofit/internal/core/ports"
)

// SetFulfillmentModeCommandHandler switches a session between delivery and
// pickup fulfillment.
type SetFulfillmentModeCommandHandler struct {
	sessionRepo ports.SessionRepository
	zones       zone.Table
}

// NewSetFulfillmentModeCommandHandler creates a handler for mode switches.
func NewSetFulfillmentModeCommandHandler(
	sessionRepo ports.SessionRepository,
	zones zone.Table,
) SetFulfillmentModeCommandHandler {
	return SetFulfillmentModeCommandHandler{sessionRepo: sessionRepo, zones: zones}
}

// Handle applies the mode. Switching to pickup zeroes the fee but keeps
// the neighborhood; switching back to delivery restores the fee from the
// zone table. Setting the current mode again is a no-op.
func (h SetFulfillmentModeCommandHandler) Handle(
	ctx context.Context,
	cmd SetFulfillmentModeCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := loadSession(ctx, h.sessionRepo, cmd.SessionID())
	if err != nil {
		return err
	}

	switch cmd.Mode() {
	case checkout.ModePickup:
		aggregate.Checkout().SwitchToPickup()
	case checkout.ModeDelivery:
		aggregate.Checkout().SwitchToDelivery(h.zones)
	}

	return saveSession(ctx, h.sessionRepo, aggregate)
}
