package commands

import (
	"errors"

	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
	ErrItemIDIsRequired = errors.New("item ID is required")
)

// AddItemCommand adds one unit of a menu item to the session's cart.
//
// Example:
//
//	cmd, err := NewAddItemCommand(sessionID, "frango-grelhado")
//	if err != nil {
//	    return err
//	}
//
//	signal, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if signal.Rejected() {
//	    // cart is at capacity, nothing was added
//	}
type AddItemCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	itemID    string

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add one unit of a menu item.
// Validates that the session ID is constructed and the item ID is not empty.
func NewAddItemCommand(sessionID kernel.UUID, itemID string) (AddItemCommand, error) {
	cmd := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setItemID(itemID),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddItemCommandIsNotConstructed if validation fails.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c AddItemCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// ItemID returns the catalog identifier of the menu item to add.
func (c AddItemCommand) ItemID() string {
	return c.itemID
}

func (c *AddItemCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *AddItemCommand) setItemID(itemID string) error {
	if itemID == "" {
		return ErrItemIDIsRequired
	}

	c.itemID = itemID
	return nil
}
