package commands

import (
	"context"
	"log/slog"

	"pratofit/internal/core/domain/model/checkout"
	"pratofit/internal/core/domain/model/zone"
	"pratofit/internal/core/ports"
)

// LookupPostalCodeResult reports how a postal-code lookup request settled.
// Performed is false when the code was still incomplete and no lookup ran.
type LookupPostalCodeResult struct {
	Performed bool
	Outcome   checkout.LookupOutcome
}

// LookupPostalCodeCommandHandler orchestrates one postal-code lookup:
// start the in-flight guard, query the external service, settle the
// checkout with whatever came back. Transport failures are logged and
// degrade to the not-found outcome so the customer can pick the
// neighborhood manually.
type LookupPostalCodeCommandHandler struct {
	sessionRepo ports.SessionRepository
	lookup      ports.AddressLookup
	zones       zone.Table
	logger      *slog.Logger
}

// NewLookupPostalCodeCommandHandler creates a handler for postal-code
// resolution.
func NewLookupPostalCodeCommandHandler(
	sessionRepo ports.SessionRepository,
	lookup ports.AddressLookup,
	zones zone.Table,
	logger *slog.Logger,
) LookupPostalCodeCommandHandler {
	return LookupPostalCodeCommandHandler{
		sessionRepo: sessionRepo,
		lookup:      lookup,
		zones:       zones,
		logger:      logger,
	}
}

// Handle resolves the code and applies the result to the session's
// checkout. Incomplete codes return Performed=false without touching any
// state. A concurrent lookup on the same session is rejected with
// checkout.ErrLookupInFlight.
func (h LookupPostalCodeCommandHandler) Handle(
	ctx context.Context,
	cmd LookupPostalCodeCommand,
) (LookupPostalCodeResult, error) {
	if err := cmd.Validate(); err != nil {
		return LookupPostalCodeResult{}, err
	}

	if !checkout.IsValidPostalCode(cmd.PostalCode()) {
		return LookupPostalCodeResult{}, nil
	}

	aggregate, err := loadSession(ctx, h.sessionRepo, cmd.SessionID())
	if err != nil {
		return LookupPostalCodeResult{}, err
	}

	chk := aggregate.Checkout()
	if err = chk.StartLookup(); err != nil {
		return LookupPostalCodeResult{}, err
	}

	// Persist the Resolving state before the external call so a second
	// lookup on the same session is rejected while this one runs.
	if err = saveSession(ctx, h.sessionRepo, aggregate); err != nil {
		return LookupPostalCodeResult{}, err
	}

	var outcome checkout.LookupOutcome

	address, lookupErr := h.lookup.Lookup(ctx, cmd.PostalCode())
	switch {
	case lookupErr != nil:
		h.logger.WarnContext(ctx, "postal code lookup failed",
			"postal_code", cmd.PostalCode(),
			"error", lookupErr,
		)
		outcome = chk.ApplyLookupNotFound()
	case !address.Found:
		outcome = chk.ApplyLookupNotFound()
	default:
		outcome = chk.ApplyLookupFound(address.Neighborhood, address.Street, h.zones)
	}

	if err = saveSession(ctx, h.sessionRepo, aggregate); err != nil {
		return LookupPostalCodeResult{}, err
	}

	return LookupPostalCodeResult{Performed: true, Outcome: outcome}, nil
}
