package commands

import (
	"context"

	"pratofit/internal/core/domain/model/checkout"
	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/core/ports"
	"pratofit/internal/pkg/errs"
)

// SubmitOrderResult is the outcome of an order submission. When Violations
// is non-empty nothing was finalized and the other fields are zero.
type SubmitOrderResult struct {
	Violations []checkout.Field
	Message    string
	Link       string
	Total      kernel.Money
}

// SubmitOrderCommandHandler finalizes an order: validates the fulfillment
// form, assembles the order and serializes it into the message and link
// the customer sends over WhatsApp.
type SubmitOrderCommandHandler struct {
	sessionRepo ports.SessionRepository
	pickup      checkout.PickupInfo
	links       OrderLinkBuilder
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
func NewSubmitOrderCommandHandler(
	sessionRepo ports.SessionRepository,
	pickup checkout.PickupInfo,
	links OrderLinkBuilder,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		sessionRepo: sessionRepo,
		pickup:      pickup,
		links:       links,
	}
}

// Handle validates the draft and, when clean, produces the order message
// and link. Form violations are data, not errors: they come back in the
// result with a nil error. A cart that is not filled to exact capacity
// fails with checkout.ErrOrderIsIncomplete.
func (h SubmitOrderCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitOrderCommand,
) (SubmitOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitOrderResult{}, err
	}

	aggregate, err := loadSession(ctx, h.sessionRepo, cmd.SessionID())
	if err != nil {
		return SubmitOrderResult{}, err
	}

	kit, ok := aggregate.Cart().Kit()
	if !ok {
		return SubmitOrderResult{}, errs.NewValueIsRequiredError("kit")
	}

	chk := aggregate.Checkout()
	if violations := cmd.Draft().Validate(chk.Mode(), chk.Neighborhood()); len(violations) > 0 {
		return SubmitOrderResult{Violations: violations}, nil
	}

	order, err := checkout.NewOrder(
		kit,
		aggregate.Cart().Lines(),
		chk.Mode(),
		cmd.Draft(),
		chk.Neighborhood(),
		chk.Fee(),
		h.pickup,
	)
	if err != nil {
		return SubmitOrderResult{}, err
	}

	message := order.Message()

	if err = saveSession(ctx, h.sessionRepo, aggregate); err != nil {
		return SubmitOrderResult{}, err
	}

	return SubmitOrderResult{
		Message: message,
		Link:    h.links.OrderLink(message),
		Total:   order.Total(),
	}, nil
}
