package commands

import (
	"context"

	"pratofit/internal/core/domain/model/cart"
	"pratofit/internal/core/domain/model/catalog"
	"pratofit/internal/core/ports"
)

// AddItemCommandHandler adds menu item units to a session's cart.
// Capacity enforcement lives in the cart itself; the handler only resolves
// the item and relays the resulting signal.
type AddItemCommandHandler struct {
	sessionRepo ports.SessionRepository
	catalog     *catalog.Catalog
}

// NewAddItemCommandHandler creates a handler for adding cart units.
func NewAddItemCommandHandler(
	sessionRepo ports.SessionRepository,
	cat *catalog.Catalog,
) AddItemCommandHandler {
	return AddItemCommandHandler{sessionRepo: sessionRepo, catalog: cat}
}

// Handle adds one unit of the item to the cart.
// Returns the cart's signal: SignalLimitRejected means the cart was already
// at capacity and nothing changed, SignalKitCompleted means this unit
// filled the kit exactly. A rejected add is not an error.
func (h AddItemCommandHandler) Handle(
	ctx context.Context,
	cmd AddItemCommand,
) (cart.Signal, error) {
	if err := cmd.Validate(); err != nil {
		return cart.SignalNone, err
	}

	aggregate, err := loadSession(ctx, h.sessionRepo, cmd.SessionID())
	if err != nil {
		return cart.SignalNone, err
	}

	item, err := h.catalog.ItemByID(cmd.ItemID())
	if err != nil {
		return cart.SignalNone, err
	}

	signal := aggregate.Cart().AddUnit(item)
	if signal.Rejected() {
		return signal, nil
	}

	return signal, saveSession(ctx, h.sessionRepo, aggregate)
}
