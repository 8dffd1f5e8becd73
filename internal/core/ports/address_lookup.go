package ports

import "context"

// AddressLookupResult is what the external address service knows about a
// postal code. The text fields are free-form and inconsistently formatted
// by the source; callers normalize before matching.
type AddressLookupResult struct {
	// Street is the street name registered for the code.
	Street string

	// Neighborhood is the neighborhood text registered for the code.
	Neighborhood string

	// Found is false when the service explicitly reports an unknown code.
	Found bool
}

// AddressLookup defines the outbound contract for resolving an 8-digit
// postal code to an address. The service is untrusted and unreliable; an
// error means transport trouble, which callers treat like an unknown code.
type AddressLookup interface {
	// Lookup queries the external service for a normalized 8-digit code.
	Lookup(ctx context.Context, postalCode string) (AddressLookupResult, error)
}
