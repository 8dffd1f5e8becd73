package commands

import (
	"errors"

	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/pkg/guard"
)

var (
	ErrClearCartCommandIsNotConstructed = errors.New(
		"ClearCartCommand must be created via NewClearCartCommand constructor",
	)
)

// ClearCartCommand removes every selected unit while keeping the chosen
// kit. Like ChangeKitCommand it is two-phase: without the confirmed flag a
// non-empty cart is left untouched and confirmation is requested.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	confirmed bool

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to empty the session's cart.
func NewClearCartCommand(sessionID kernel.UUID, confirmed bool) (ClearCartCommand, error) {
	cmd := ClearCartCommand{
		confirmed: confirmed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return ClearCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClearCartCommandIsNotConstructed if validation fails.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c ClearCartCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Confirmed reports whether the customer acknowledged losing the selection.
func (c ClearCartCommand) Confirmed() bool {
	return c.confirmed
}

func (c *ClearCartCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
