package commands

import (
	"context"
	"time"

	"pratofit/internal/core/ports"
)

// CleanupSessionsCommandHandler reaps abandoned sessions from the store.
type CleanupSessionsCommandHandler struct {
	sessionRepo ports.SessionRepository
}

// NewCleanupSessionsCommandHandler creates a handler for session cleanup.
func NewCleanupSessionsCommandHandler(sessionRepo ports.SessionRepository) CleanupSessionsCommandHandler {
	return CleanupSessionsCommandHandler{sessionRepo: sessionRepo}
}

// Handle removes every session idle longer than the command's TTL and
// returns how many were removed.
func (h CleanupSessionsCommandHandler) Handle(
	ctx context.Context,
	cmd CleanupSessionsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return h.sessionRepo.DeleteIdleSince(ctx, time.Now().Add(-cmd.TTL()))
}
