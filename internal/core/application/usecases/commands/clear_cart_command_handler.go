package commands

import (
	"context"

	"pratofit/internal/core/ports"
)

// clearCartPrompt is shown before a non-empty selection is emptied.
const clearCartPrompt = "Tem certeza que deseja remover todos os itens da cesta?"

// ClearCartCommandHandler empties the session's cart while keeping the
// chosen kit in place.
type ClearCartCommandHandler struct {
	sessionRepo ports.SessionRepository
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(sessionRepo ports.SessionRepository) ClearCartCommandHandler {
	return ClearCartCommandHandler{sessionRepo: sessionRepo}
}

// Handle empties the cart. An already-empty cart is a no-op that never asks
// for confirmation; a non-empty cart without the confirmed flag is left
// untouched and Confirmation.Required is set.
func (h ClearCartCommandHandler) Handle(
	ctx context.Context,
	cmd ClearCartCommand,
) (Confirmation, error) {
	if err := cmd.Validate(); err != nil {
		return Confirmation{}, err
	}

	aggregate, err := loadSession(ctx, h.sessionRepo, cmd.SessionID())
	if err != nil {
		return Confirmation{}, err
	}

	if aggregate.Cart().IsEmpty() {
		return Confirmation{}, nil
	}

	if !cmd.Confirmed() {
		return Confirmation{Required: true, Prompt: clearCartPrompt}, nil
	}

	aggregate.Cart().Clear()

	return Confirmation{}, saveSession(ctx, h.sessionRepo, aggregate)
}
