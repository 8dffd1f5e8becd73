package zone

import (
	"strings"

	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/pkg/errs"
)

// Table is the static collection of delivery zones keyed by neighborhood
// name. It resolves manual neighborhood choices to fees and matches the
// free-text neighborhood returned by the postal lookup against the internal
// fixed vocabulary.
type Table struct {
	zones []Zone
}

// Match is a successful resolution of an external neighborhood text to a
// table entry and its zone fee. Neighborhood is the table's own spelling,
// not the external one.
type Match struct {
	Neighborhood string
	Fee          kernel.Money
}

// NewTable builds a table from validated zones. A neighborhood name may
// appear in only one zone.
func NewTable(zones []Zone) (Table, error) {
	seen := make(map[string]struct{})
	for _, z := range zones {
		if err := z.Validate(); err != nil {
			return Table{}, err
		}
		for _, name := range z.Neighborhoods() {
			key := Normalize(name)
			if _, ok := seen[key]; ok {
				return Table{}, errs.NewValueIsInvalidError("neighborhood listed in more than one zone: " + name)
			}
			seen[key] = struct{}{}
		}
	}

	return Table{zones: append([]Zone(nil), zones...)}, nil
}

// Zones returns the zones in configuration order.
func (t Table) Zones() []Zone {
	return append([]Zone(nil), t.zones...)
}

// FeeFor resolves the fee for a neighborhood name exactly as listed in the
// table. Used for manual selection and for recomputing the fee when the
// fulfillment mode switches back to delivery.
func (t Table) FeeFor(neighborhood string) (kernel.Money, error) {
	for _, z := range t.zones {
		for _, name := range z.Neighborhoods() {
			if name == neighborhood {
				return z.Fee(), nil
			}
		}
	}
	return kernel.Money{}, errs.NewObjectNotFoundError("neighborhood", neighborhood)
}

// MatchNeighborhood resolves free-text neighborhood input from the postal
// lookup against the table using normalized comparison. Two tiers, in order
// of precedence:
//
//  1. Exact: the normalized input equals a normalized table entry.
//  2. Substring: the normalized input contains a normalized entry, or is
//     contained by one ("bairro centro" matches "Centro").
//
// The substring fallback balances precision against the external source's
// formatting drift without a full fuzzy-distance algorithm; it is
// deliberately unbounded on token length, preserving the established
// behavior of the match against this table.
func (t Table) MatchNeighborhood(external string) (Match, bool) {
	input := Normalize(external)
	if input == "" {
		return Match{}, false
	}

	for _, z := range t.zones {
		for _, name := range z.Neighborhoods() {
			if Normalize(name) == input {
				return Match{Neighborhood: name, Fee: z.Fee()}, true
			}
		}
	}

	for _, z := range t.zones {
		for _, name := range z.Neighborhoods() {
			entry := Normalize(name)
			if strings.Contains(input, entry) || strings.Contains(entry, input) {
				return Match{Neighborhood: name, Fee: z.Fee()}, true
			}
		}
	}

	return Match{}, false
}
