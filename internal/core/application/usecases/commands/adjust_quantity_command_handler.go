package commands

import (
	"context"

	"pratofit/internal/core/domain/model/cart"
	"pratofit/internal/core/ports"
)

// AdjustQuantityCommandHandler changes cart line quantities by a signed
// delta. Items not already in the cart are never created this way; that is
// AddItemCommand's job.
type AdjustQuantityCommandHandler struct {
	sessionRepo ports.SessionRepository
}

// NewAdjustQuantityCommandHandler creates a handler for quantity changes.
func NewAdjustQuantityCommandHandler(sessionRepo ports.SessionRepository) AdjustQuantityCommandHandler {
	return AdjustQuantityCommandHandler{sessionRepo: sessionRepo}
}

// Handle applies the delta to the item's cart line and relays the cart's
// signal. A delta that would push the cart past capacity is rejected whole;
// partial application never happens.
func (h AdjustQuantityCommandHandler) Handle(
	ctx context.Context,
	cmd AdjustQuantityCommand,
) (cart.Signal, error) {
	if err := cmd.Validate(); err != nil {
		return cart.SignalNone, err
	}

	aggregate, err := loadSession(ctx, h.sessionRepo, cmd.SessionID())
	if err != nil {
		return cart.SignalNone, err
	}

	signal := aggregate.Cart().AdjustQuantity(cmd.ItemID(), cmd.Delta())
	if signal.Rejected() {
		return signal, nil
	}

	return signal, saveSession(ctx, h.sessionRepo, aggregate)
}
