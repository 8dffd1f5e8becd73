// Package sessionrepo stores session aggregates in process memory.
// Sessions are transient by design; losing them on restart only costs the
// customer an unfinished cart.
package sessionrepo

import (
	"context"
	"sync"
	"time"

	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/core/domain/model/session"
	"pratofit/internal/pkg/errs"
)

// InMemorySessionRepository implements SessionRepository with a
// mutex-guarded map. The store owns its copies: Get hands out a clone and
// Add/Update swap a clone in, so an aggregate held by one request is never
// written by another goroutine or read by the cleanup janitor. Concurrent
// updates to one session are last-write-wins, each stored copy internally
// consistent.
type InMemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[kernel.UUID]*session.Session
}

// NewInMemorySessionRepository creates an empty in-memory session store.
func NewInMemorySessionRepository() *InMemorySessionRepository {
	return &InMemorySessionRepository{
		sessions: make(map[kernel.UUID]*session.Session),
	}
}

// Add stores a new session. Adding an existing ID is invalid.
func (r *InMemorySessionRepository) Add(_ context.Context, aggregate *session.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("session ID already exists")
	}

	r.sessions[aggregate.ID()] = aggregate.Clone()
	return nil
}

// Get retrieves a session by ID.
// Returns errs.ObjectNotFoundError for unknown or expired sessions.
func (r *InMemorySessionRepository) Get(_ context.Context, id kernel.UUID) (*session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregate, exists := r.sessions[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("sessionID", id.String())
	}

	return aggregate.Clone(), nil
}

// Update persists changes to an existing session, replacing the stored
// copy wholesale.
func (r *InMemorySessionRepository) Update(_ context.Context, aggregate *session.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("sessionID", aggregate.ID().String())
	}

	r.sessions[aggregate.ID()] = aggregate.Clone()
	return nil
}

// DeleteIdleSince removes every session idle since cutoff and returns the
// number removed. Live sessions are never touched.
func (r *InMemorySessionRepository) DeleteIdleSince(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, aggregate := range r.sessions {
		if aggregate.IsIdleSince(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}

	return removed, nil
}
