package checkout

import (
	"errors"

	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/core/domain/model/zone"
)

// ErrLookupInFlight is returned when a postal-code lookup is started while
// another one is still resolving for the same checkout.
var ErrLookupInFlight = errors.New("a postal code lookup is already in flight")

// LookupResult classifies how a postal-code lookup settled.
type LookupResult int

const (
	// LookupMatched means the code was found and its neighborhood mapped to
	// a zone.
	LookupMatched LookupResult = iota

	// LookupUnmatched means the code was found but its neighborhood matched
	// no zone; the customer selects manually.
	LookupUnmatched

	// LookupNotFound means the lookup service did not know the code.
	LookupNotFound
)

// LookupOutcome is the settled result of one postal-code lookup, carrying
// enough context for the notification layer: the matched table spelling on
// success, the raw external text when the zone mapping failed.
type LookupOutcome struct {
	Result               LookupResult
	Neighborhood         string
	ExternalNeighborhood string
	Street               string
	Fee                  kernel.Money
}

// Checkout holds the fee-resolution state for one session: the fulfillment
// mode, the resolution state machine and the currently resolved
// neighborhood with its fee.
//
// The neighborhood survives a switch to pickup (only the fee is zeroed), so
// switching back to delivery restores the fee without re-prompting.
type Checkout struct {
	mode         Mode
	resolution   ResolutionStatus
	neighborhood string
	fee          kernel.Money
}

// NewCheckout creates a checkout in delivery mode with nothing resolved.
func NewCheckout() *Checkout {
	return &Checkout{
		mode:       ModeDelivery,
		resolution: Unresolved,
	}
}

// Clone returns an independent copy of the checkout state.
func (c *Checkout) Clone() *Checkout {
	clone := *c
	return &clone
}

// Mode returns the current fulfillment mode.
func (c *Checkout) Mode() Mode { return c.mode }

// Resolution returns the current resolution status.
func (c *Checkout) Resolution() ResolutionStatus { return c.resolution }

// Neighborhood returns the resolved neighborhood, or "" when unset.
func (c *Checkout) Neighborhood() string { return c.neighborhood }

// Fee returns the current delivery fee; zero while unresolved or in pickup
// mode.
func (c *Checkout) Fee() kernel.Money { return c.fee }

// StartLookup transitions to Resolving. Only one lookup may be in flight at
// a time; a second start is rejected with ErrLookupInFlight. There is no
// cancellation: a late result still applies when it arrives.
func (c *Checkout) StartLookup() error {
	if c.resolution == Resolving {
		return ErrLookupInFlight
	}
	c.resolution = Resolving
	return nil
}

// ApplyLookupNotFound settles the in-flight lookup as Failed. Any prior
// neighborhood and fee stay as they were; the customer can retry or select
// manually.
func (c *Checkout) ApplyLookupNotFound() LookupOutcome {
	c.resolution = Failed
	return LookupOutcome{Result: LookupNotFound}
}

// ApplyLookupFound settles the in-flight lookup with the neighborhood text
// the external service returned. The text is matched against the zone
// table; on a match the checkout resolves to that neighborhood and fee, on
// no match it resolves unset (empty neighborhood, zero fee) so the
// customer is asked to select manually. Both paths leave the status
// Resolved: the postal code itself was found.
func (c *Checkout) ApplyLookupFound(externalNeighborhood string, street string, table zone.Table) LookupOutcome {
	c.resolution = Resolved

	if m, ok := table.MatchNeighborhood(externalNeighborhood); ok {
		c.neighborhood = m.Neighborhood
		c.fee = m.Fee
		return LookupOutcome{
			Result:               LookupMatched,
			Neighborhood:         m.Neighborhood,
			ExternalNeighborhood: externalNeighborhood,
			Street:               street,
			Fee:                  m.Fee,
		}
	}

	c.neighborhood = ""
	c.fee = kernel.ZeroMoney()
	return LookupOutcome{
		Result:               LookupUnmatched,
		ExternalNeighborhood: externalNeighborhood,
		Street:               street,
	}
}

// SelectNeighborhood applies a manual choice from the zone table; the
// manual choice always wins over whatever a lookup produced. An empty name
// resets the fee to zero and leaves the neighborhood empty. Names not
// present in the table are rejected.
func (c *Checkout) SelectNeighborhood(name string, table zone.Table) error {
	if name == "" {
		c.neighborhood = ""
		c.fee = kernel.ZeroMoney()
		return nil
	}

	fee, err := table.FeeFor(name)
	if err != nil {
		return err
	}

	c.neighborhood = name
	c.resolution = Resolved
	if c.mode == ModeDelivery {
		c.fee = fee
	}
	return nil
}

// SwitchToPickup switches the fulfillment mode to pickup and zeroes the fee
// unconditionally. The neighborhood memory is kept.
func (c *Checkout) SwitchToPickup() {
	c.mode = ModePickup
	c.fee = kernel.ZeroMoney()
}

// SwitchToDelivery switches back to delivery and restores the fee for the
// remembered neighborhood by re-reading the zone table, not a cached fee.
func (c *Checkout) SwitchToDelivery(table zone.Table) {
	c.mode = ModeDelivery
	if c.neighborhood == "" {
		return
	}
	fee, err := table.FeeFor(c.neighborhood)
	if err != nil {
		// Neighborhood no longer in the table; force a manual re-selection.
		c.neighborhood = ""
		c.fee = kernel.ZeroMoney()
		return
	}
	c.fee = fee
}

// Total computes the amount to pay: the kit price plus the delivery fee in
// delivery mode, the kit price alone for pickup.
func (c *Checkout) Total(kitPrice kernel.Money) kernel.Money {
	if c.mode == ModeDelivery {
		return kitPrice.Add(c.fee)
	}
	return kitPrice
}
