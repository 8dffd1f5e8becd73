package commands

import (
	"errors"

	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/pkg/guard"
)

var (
	ErrSelectKitCommandIsNotConstructed = errors.New(
		"SelectKitCommand must be created via NewSelectKitCommand constructor",
	)
	ErrKitIDIsRequired = errors.New("kit ID is required")
)

// SelectKitCommand assigns a meal kit to the session's cart. Any previous
// kit and all selected units are discarded; callers that care about the
// existing selection go through ChangeKitCommand instead, which asks for
// confirmation first.
//
// Example:
//
//	cmd, err := NewSelectKitCommand(sessionID, "kit5")
//	if err != nil {
//	    return fmt.Errorf("invalid kit selection: %w", err)
//	}
//
//	handler := NewSelectKitCommandHandler(repo, catalog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to select kit: %w", err)
//	}
type SelectKitCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	kitID     string

	guard guard.ConstructorGuard
}

// NewSelectKitCommand creates a command to pick a kit for a session.
// Validates that the session ID is constructed and the kit ID is not empty.
func NewSelectKitCommand(sessionID kernel.UUID, kitID string) (SelectKitCommand, error) {
	cmd := SelectKitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setKitID(kitID),
	); err != nil {
		return SelectKitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSelectKitCommandIsNotConstructed if validation fails.
func (c SelectKitCommand) Validate() error {
	return c.guard.Validate(ErrSelectKitCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c SelectKitCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// KitID returns the catalog identifier of the kit to select.
func (c SelectKitCommand) KitID() string {
	return c.kitID
}

func (c *SelectKitCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *SelectKitCommand) setKitID(kitID string) error {
	if kitID == "" {
		return ErrKitIDIsRequired
	}

	c.kitID = kitID
	return nil
}
