package commands

import (
	"context"

	"pratofit/internal/core/domain/model/catalog"
	"pratofit/internal/core/ports"
)

// SelectKitCommandHandler assigns a catalog kit to a session's cart,
// discarding whatever was selected before.
type SelectKitCommandHandler struct {
	sessionRepo ports.SessionRepository
	catalog     *catalog.Catalog
}

// NewSelectKitCommandHandler creates a handler for kit selection.
func NewSelectKitCommandHandler(
	sessionRepo ports.SessionRepository,
	cat *catalog.Catalog,
) SelectKitCommandHandler {
	return SelectKitCommandHandler{sessionRepo: sessionRepo, catalog: cat}
}

// Handle resolves the kit in the catalog and assigns it to the cart.
// Returns errs.ObjectNotFoundError when the kit ID is unknown.
func (h SelectKitCommandHandler) Handle(ctx context.Context, cmd SelectKitCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := loadSession(ctx, h.sessionRepo, cmd.SessionID())
	if err != nil {
		return err
	}

	kit, err := h.catalog.KitByID(cmd.KitID())
	if err != nil {
		return err
	}

	aggregate.Cart().SelectKit(kit)

	return saveSession(ctx, h.sessionRepo, aggregate)
}
