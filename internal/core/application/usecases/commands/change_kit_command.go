package commands

import (
	"errors"

	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/pkg/guard"
)

var (
	ErrChangeKitCommandIsNotConstructed = errors.New(
		"ChangeKitCommand must be created via NewChangeKitCommand constructor",
	)
)

// ChangeKitCommand drops the session's kit so a different one can be
// chosen. Because the selection is lost with it, the command is two-phase:
// issued without the confirmed flag against a non-empty cart it changes
// nothing and reports that confirmation is required.
//
// Example:
//
//	cmd, err := NewChangeKitCommand(sessionID, false)
//	if err != nil {
//	    return err
//	}
//
//	confirmation, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if confirmation.Required {
//	    // show confirmation.Prompt, then reissue with confirmed=true
//	}
type ChangeKitCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	confirmed bool

	guard guard.ConstructorGuard
}

// NewChangeKitCommand creates a command to drop the session's current kit.
// The confirmed flag acknowledges that a non-empty selection will be lost.
func NewChangeKitCommand(sessionID kernel.UUID, confirmed bool) (ChangeKitCommand, error) {
	cmd := ChangeKitCommand{
		confirmed: confirmed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return ChangeKitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeKitCommandIsNotConstructed if validation fails.
func (c ChangeKitCommand) Validate() error {
	return c.guard.Validate(ErrChangeKitCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c ChangeKitCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Confirmed reports whether the customer acknowledged losing the selection.
func (c ChangeKitCommand) Confirmed() bool {
	return c.confirmed
}

func (c *ChangeKitCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
