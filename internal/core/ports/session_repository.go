package ports

import (
	"context"
	"time"

	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/core/domain/model/session"
)

// SessionRepository defines the storage contract for session aggregates.
// Sessions are transient: they live for the duration of an ordering flow
// and are reaped once idle past the configured TTL.
type SessionRepository interface {
	// Add stores a new session aggregate.
	// The session must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *session.Session) error

	// Get retrieves a session by its unique identifier. The returned
	// aggregate is the caller's to mutate: implementations must not share
	// it with other callers.
	Get(ctx context.Context, id kernel.UUID) (*session.Session, error)

	// Update persists changes to an existing session aggregate, replacing
	// the stored state wholesale.
	Update(ctx context.Context, aggregate *session.Session) error

	// DeleteIdleSince removes every session with no activity since cutoff
	// and returns how many were removed.
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error)
}
