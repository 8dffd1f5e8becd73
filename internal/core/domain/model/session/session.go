// Package session provides the aggregate root for one ordering session:
// the cart being configured and the checkout resolving its fulfillment.
// There is exactly one logical session per client; all engine state hangs
// off this object instead of process-wide globals.
package session

import (
	"errors"
	"time"

	"pratofit/internal/core/domain/model/cart"
	"pratofit/internal/core/domain/model/checkout"
	"pratofit/internal/core/domain/model/kernel"
)

// ErrSessionIsNotConstructed is returned when a Session instance was not
// created through the NewSession factory method.
var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

// Session is the aggregate root owning one Cart and one Checkout. The
// aggregate does no locking; the session store hands each caller an
// isolated copy, and an update replaces the stored copy wholesale.
type Session struct {
	id       kernel.UUID
	cart     *cart.Cart
	checkout *checkout.Checkout

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewSession creates a session with an empty cart and a fresh checkout.
func NewSession(id kernel.UUID, now time.Time) (*Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		id:            id,
		cart:          cart.NewCart(),
		checkout:      checkout.NewCheckout(),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// Clone returns a deep copy of the aggregate sharing no mutable state
// with the receiver.
func (s *Session) Clone() *Session {
	return &Session{
		id:            s.id,
		cart:          s.cart.Clone(),
		checkout:      s.checkout.Clone(),
		createdAt:     s.createdAt,
		updatedAt:     s.updatedAt,
		isConstructed: s.isConstructed,
	}
}

// Validate ensures the session was created through NewSession.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the session identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// Cart returns the session's cart.
func (s *Session) Cart() *cart.Cart {
	return s.cart
}

// Checkout returns the session's checkout.
func (s *Session) Checkout() *checkout.Checkout {
	return s.checkout
}

// CreatedAt returns when the session was created.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns when the session last served an operation.
func (s *Session) UpdatedAt() time.Time {
	return s.updatedAt
}

// Touch records activity so the janitor does not reap a live session.
func (s *Session) Touch(now time.Time) {
	s.updatedAt = now
}

// IsIdleSince reports whether the session saw no activity since cutoff.
func (s *Session) IsIdleSince(cutoff time.Time) bool {
	return s.updatedAt.Before(cutoff)
}

// ResetOrderFlow clears the kit, the cart lines and the fee-resolution
// state in one step. This is the "session reset" event behind changing the
// kit: every surface tied to the order flow is invalidated together rather
// than flag by flag at the call site.
func (s *Session) ResetOrderFlow() {
	s.cart.ClearKit()
	s.checkout = checkout.NewCheckout()
}
