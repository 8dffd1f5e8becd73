package commands

import (
	"errors"

	"pratofit/internal/core/domain/model/checkout"
	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/pkg/guard"
)

var (
	ErrSetFulfillmentModeCommandIsNotConstructed = errors.New(
		"SetFulfillmentModeCommand must be created via NewSetFulfillmentModeCommand constructor",
	)
)

// SetFulfillmentModeCommand switches the session between delivery and
// pickup. The resolved neighborhood survives the switch; only the fee
// follows the mode.
type SetFulfillmentModeCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	mode      checkout.Mode

	guard guard.ConstructorGuard
}

// NewSetFulfillmentModeCommand creates a command to switch fulfillment mode.
func NewSetFulfillmentModeCommand(
	sessionID kernel.UUID,
	mode checkout.Mode,
) (SetFulfillmentModeCommand, error) {
	cmd := SetFulfillmentModeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setMode(mode),
	); err != nil {
		return SetFulfillmentModeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetFulfillmentModeCommandIsNotConstructed if validation fails.
func (c SetFulfillmentModeCommand) Validate() error {
	return c.guard.Validate(ErrSetFulfillmentModeCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c SetFulfillmentModeCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Mode returns the requested fulfillment mode.
func (c SetFulfillmentModeCommand) Mode() checkout.Mode {
	return c.mode
}

func (c *SetFulfillmentModeCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *SetFulfillmentModeCommand) setMode(mode checkout.Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.mode = mode
	return nil
}
