package commands

import (
	"errors"

	"pratofit/internal/core/domain/model/checkout"
	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/pkg/errs"
	"pratofit/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
)

// SubmitOrderCommand finalizes the order: it carries the fulfillment form
// as typed by the customer. Field-level rules are deliberately not checked
// here; Handle validates the draft against the session's mode and resolved
// neighborhood and reports every violation at once, so the form can
// highlight all of them in one round trip.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	draft     checkout.Draft

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to finalize the session's order.
// Only the session ID and payment method are validated up front; the rest
// of the draft is validated by the handler as form violations.
func NewSubmitOrderCommand(
	sessionID kernel.UUID,
	draft checkout.Draft,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setDraft(draft),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c SubmitOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Draft returns the fulfillment form as typed.
func (c SubmitOrderCommand) Draft() checkout.Draft {
	return c.draft
}

func (c *SubmitOrderCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *SubmitOrderCommand) setDraft(draft checkout.Draft) error {
	if draft.Payment != checkout.PaymentPix && draft.Payment != checkout.PaymentLink {
		return errs.NewValueIsInvalidError("payment method")
	}

	c.draft = draft
	return nil
}
