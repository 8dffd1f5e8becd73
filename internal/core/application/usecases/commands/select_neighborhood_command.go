package commands

import (
	"errors"

	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/pkg/guard"
)

var (
	ErrSelectNeighborhoodCommandIsNotConstructed = errors.New(
		"SelectNeighborhoodCommand must be created via NewSelectNeighborhoodCommand constructor",
	)
)

// SelectNeighborhoodCommand picks a delivery neighborhood by its exact
// table spelling, either as the manual fallback after a failed lookup or to
// override a matched one. An empty name clears the current resolution.
type SelectNeighborhoodCommand struct { //nolint:recvcheck //using for validation
	sessionID    kernel.UUID
	neighborhood string

	guard guard.ConstructorGuard
}

// NewSelectNeighborhoodCommand creates a command to set the delivery
// neighborhood. The empty string is valid and means "clear the selection".
func NewSelectNeighborhoodCommand(
	sessionID kernel.UUID,
	neighborhood string,
) (SelectNeighborhoodCommand, error) {
	cmd := SelectNeighborhoodCommand{
		neighborhood: neighborhood,
		guard:        guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return SelectNeighborhoodCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSelectNeighborhoodCommandIsNotConstructed if validation fails.
func (c SelectNeighborhoodCommand) Validate() error {
	return c.guard.Validate(ErrSelectNeighborhoodCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c SelectNeighborhoodCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Neighborhood returns the table spelling to select, or "" to clear.
func (c SelectNeighborhoodCommand) Neighborhood() string {
	return c.neighborhood
}

func (c *SelectNeighborhoodCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
