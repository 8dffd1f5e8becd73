package commands

import (
	"errors"

	"pratofit/internal/pkg/guard"
)

var (
	ErrStartSessionCommandIsNotConstructed = errors.New(
		"StartSessionCommand must be created via NewStartSessionCommand constructor",
	)
)

// StartSessionCommand requests a fresh ordering session: empty cart, no
// kit, delivery mode with nothing resolved.
//
// Example:
//
//	cmd := NewStartSessionCommand()
//	handler := NewStartSessionCommandHandler(repo)
//
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to start session: %w", err)
//	}
//	fmt.Printf("session %s started", id)
type StartSessionCommand struct {
	guard guard.ConstructorGuard
}

// NewStartSessionCommand creates a command to open a new session.
func NewStartSessionCommand() StartSessionCommand {
	return StartSessionCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartSessionCommandIsNotConstructed if validation fails.
func (c StartSessionCommand) Validate() error {
	return c.guard.Validate(ErrStartSessionCommandIsNotConstructed)
}
