package checkout

import (
	"fmt"

	"pratofit/internal/pkg/errs"
)

// Mode selects which fulfillment form fields and fee rules apply.
type Mode int

const (
	// ModeUnknown represents an invalid or undefined mode.
	ModeUnknown Mode = iota

	// ModeDelivery ships the order to the customer's address for a
	// zone-based fee.
	ModeDelivery

	// ModePickup has the customer collect the order at the store; no fee.
	ModePickup
)

// ParseMode converts a wire value ("delivery" | "pickup") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "delivery":
		return ModeDelivery, nil
	case "pickup":
		return ModePickup, nil
	default:
		return ModeUnknown, errs.NewValueIsInvalidErrorWithCause("fulfillment mode",
			fmt.Errorf("%q is not a valid mode", s))
	}
}

// Validate checks that the mode is one of the defined values.
func (m Mode) Validate() error {
	if m != ModeDelivery && m != ModePickup {
		return errs.NewValueIsInvalidErrorWithCause("fulfillment mode",
			fmt.Errorf("%d is not a valid mode", m))
	}
	return nil
}

// String returns the wire name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeDelivery:
		return "delivery"
	case ModePickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// ResolutionStatus is the state of the shipping-fee resolution for one
// checkout, delivery mode only.
//
// State transitions:
//
//	Unresolved ──> Resolving ──┬──> Resolved
//	                 ^         └──> Failed
//	                 └──(retry)──────┘
//
// Resolved covers both a matched neighborhood and the resolved-but-unset
// case where the postal code was found but no zone matched; the latter
// keeps neighborhood and fee empty and asks for a manual selection.
type ResolutionStatus int

const (
	// Unresolved is the initial state: no fee, no neighborhood.
	Unresolved ResolutionStatus = iota

	// Resolving means a postal-code lookup is in flight; a second lookup
	// must not be issued until it settles.
	Resolving

	// Resolved means the lookup settled with the postal code found.
	Resolved

	// Failed means the lookup failed or the postal code was not found.
	Failed
)

// String returns the status name for logging and DTOs.
func (s ResolutionStatus) String() string {
	switch s {
	case Unresolved:
		return "Unresolved"
	case Resolving:
		return "Resolving"
	case Resolved:
		return "Resolved"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}
