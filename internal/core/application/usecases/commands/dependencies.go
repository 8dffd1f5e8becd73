// Package commands contains business operations that modify session state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, aggregate mutation, and persistence.
package commands

import (
	"context"
	"time"

	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/core/domain/model/session"
	"pratofit/internal/core/ports"
)

// OrderLinkBuilder turns a finished order message into a link the customer
// can open to send it. Implemented by the WhatsApp out-adapter.
type OrderLinkBuilder interface {
	OrderLink(message string) string
}

// Confirmation is returned by destructive commands that were issued without
// the confirmed flag against a non-empty cart. No state was changed; the
// caller should show Prompt and reissue the command with confirmed set.
type Confirmation struct {
	Required bool
	Prompt   string
}

// loadSession fetches and revalidates a session aggregate for mutation.
// The repository contract makes the returned aggregate private to this
// request; changes become visible to others only through saveSession.
func loadSession(
	ctx context.Context,
	repo ports.SessionRepository,
	id kernel.UUID,
) (*session.Session, error) {
	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = aggregate.Validate(); err != nil {
		return nil, err
	}
	return aggregate, nil
}

// saveSession stamps the activity time and persists the aggregate.
func saveSession(ctx context.Context, repo ports.SessionRepository, aggregate *session.Session) error {
	aggregate.Touch(time.Now())
	return repo.Update(ctx, aggregate)
}
