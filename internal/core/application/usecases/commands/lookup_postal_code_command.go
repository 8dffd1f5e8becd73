package commands

import (
	"errors"

	"pratofit/internal/core/domain/model/checkout"
	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/pkg/guard"
)

var (
	ErrLookupPostalCodeCommandIsNotConstructed = errors.New(
		"LookupPostalCodeCommand must be created via NewLookupPostalCodeCommand constructor",
	)
)

// LookupPostalCodeCommand resolves a delivery postal code to an address
// through the external lookup service and maps the returned neighborhood
// onto the delivery zone table.
//
// The raw code may contain formatting characters; it is normalized before
// use. A code shorter than eight digits is treated as still being typed:
// the handler performs no lookup and reports nothing.
type LookupPostalCodeCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.UUID
	postalCode string

	guard guard.ConstructorGuard
}

// NewLookupPostalCodeCommand creates a command to resolve a postal code.
// The code is normalized to digits here; incomplete codes are accepted and
// handled as a no-op by the handler.
func NewLookupPostalCodeCommand(
	sessionID kernel.UUID,
	postalCode string,
) (LookupPostalCodeCommand, error) {
	cmd := LookupPostalCodeCommand{
		postalCode: checkout.NormalizePostalCode(postalCode),
		guard:      guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return LookupPostalCodeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLookupPostalCodeCommandIsNotConstructed if validation fails.
func (c LookupPostalCodeCommand) Validate() error {
	return c.guard.Validate(ErrLookupPostalCodeCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c LookupPostalCodeCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// PostalCode returns the normalized digits-only postal code.
func (c LookupPostalCodeCommand) PostalCode() string {
	return c.postalCode
}

func (c *LookupPostalCodeCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
