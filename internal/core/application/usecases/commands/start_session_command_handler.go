package commands

import (
	"context"
	"time"

	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/core/domain/model/session"
	"pratofit/internal/core/ports"
)

// StartSessionCommandHandler creates new session aggregates.
// Every other command and query requires the identifier it returns.
type StartSessionCommandHandler struct {
	sessionRepo ports.SessionRepository
}

// NewStartSessionCommandHandler creates a handler for opening sessions.
func NewStartSessionCommandHandler(sessionRepo ports.SessionRepository) StartSessionCommandHandler {
	return StartSessionCommandHandler{sessionRepo: sessionRepo}
}

// Handle creates and stores a fresh session, returning its identifier.
func (h StartSessionCommandHandler) Handle(
	ctx context.Context,
	cmd StartSessionCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := session.NewSession(kernel.NewUUID(), time.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.sessionRepo.Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
