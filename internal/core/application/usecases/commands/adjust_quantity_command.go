package commands

import (
	"errors"

	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/pkg/guard"
)

var (
	ErrAdjustQuantityCommandIsNotConstructed = errors.New(
		"AdjustQuantityCommand must be created via NewAdjustQuantityCommand constructor",
	)
	ErrDeltaIsZero = errors.New("quantity delta must not be zero")
)

// AdjustQuantityCommand changes the quantity of an item already in the
// cart by a signed delta. Negative deltas that reach zero remove the line.
type AdjustQuantityCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	itemID    string
	delta     int

	guard guard.ConstructorGuard
}

// NewAdjustQuantityCommand creates a command to change a cart line by delta.
// Validates that the session ID is constructed, the item ID is not empty
// and the delta is non-zero.
func NewAdjustQuantityCommand(
	sessionID kernel.UUID,
	itemID string,
	delta int,
) (AdjustQuantityCommand, error) {
	cmd := AdjustQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setItemID(itemID),
		cmd.setDelta(delta),
	); err != nil {
		return AdjustQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdjustQuantityCommandIsNotConstructed if validation fails.
func (c AdjustQuantityCommand) Validate() error {
	return c.guard.Validate(ErrAdjustQuantityCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c AdjustQuantityCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// ItemID returns the catalog identifier of the line to adjust.
func (c AdjustQuantityCommand) ItemID() string {
	return c.itemID
}

// Delta returns the signed quantity change.
func (c AdjustQuantityCommand) Delta() int {
	return c.delta
}

func (c *AdjustQuantityCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *AdjustQuantityCommand) setItemID(itemID string) error {
	if itemID == "" {
		return ErrItemIDIsRequired
	}

	c.itemID = itemID
	return nil
}

func (c *AdjustQuantityCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrDeltaIsZero
	}

	c.delta = delta
	return nil
}
