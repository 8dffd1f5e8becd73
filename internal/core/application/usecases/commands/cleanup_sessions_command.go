package commands

import (
	"errors"
	"time"

	"pratofit/internal/pkg/guard"
)

var (
	ErrCleanupSessionsCommandIsNotConstructed = errors.New(
		"CleanupSessionsCommand must be created via NewCleanupSessionsCommand constructor",
	)
	ErrTTLIsInvalid = errors.New("session TTL must be greater than 0")
)

// CleanupSessionsCommand removes sessions that have been idle longer than
// the TTL. Only abandoned sessions are touched; any activity resets the
// clock.
type CleanupSessionsCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewCleanupSessionsCommand creates a command to reap sessions idle longer
// than ttl.
func NewCleanupSessionsCommand(ttl time.Duration) (CleanupSessionsCommand, error) {
	cmd := CleanupSessionsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTTL(ttl); err != nil {
		return CleanupSessionsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCleanupSessionsCommandIsNotConstructed if validation fails.
func (c CleanupSessionsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupSessionsCommandIsNotConstructed)
}

// TTL returns the idle duration after which a session is reaped.
func (c CleanupSessionsCommand) TTL() time.Duration {
	return c.ttl
}

func (c *CleanupSessionsCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return ErrTTLIsInvalid
	}

	c.ttl = ttl
	return nil
}
