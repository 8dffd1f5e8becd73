package commands

import (
	"context"

	"pratofit/internal/core/ports"
)

// changeKitPrompt is shown before a non-empty selection is discarded.
const changeKitPrompt = "Se você trocar de plano, sua seleção atual será perdida. Deseja continuar?"

// ChangeKitCommandHandler drops the session's kit and selection, restarting
// the order flow from kit choice.
type ChangeKitCommandHandler struct {
	sessionRepo ports.SessionRepository
}

// NewChangeKitCommandHandler creates a handler for kit changes.
func NewChangeKitCommandHandler(sessionRepo ports.SessionRepository) ChangeKitCommandHandler {
	return ChangeKitCommandHandler{sessionRepo: sessionRepo}
}

// Handle drops the kit, the selected units and the checkout progress.
// An empty cart never asks for confirmation; a non-empty cart without the
// confirmed flag is left untouched and Confirmation.Required is set.
func (h ChangeKitCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeKitCommand,
) (Confirmation, error) {
	if err := cmd.Validate(); err != nil {
		return Confirmation{}, err
	}

	aggregate, err := loadSession(ctx, h.sessionRepo, cmd.SessionID())
	if err != nil {
		return Confirmation{}, err
	}

	if !aggregate.Cart().IsEmpty() && !cmd.Confirmed() {
		return Confirmation{Required: true, Prompt: changeKitPrompt}, nil
	}

	aggregate.ResetOrderFlow()

	return Confirmation{}, saveSession(ctx, h.sessionRepo, aggregate)
}
