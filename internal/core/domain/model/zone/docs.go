// Package zone provides the shipping-fee domain: named fee tiers covering
// fixed sets of neighborhoods, and the normalized two-tier text matching
// (exact, then substring) that maps the free-text neighborhood returned by
// the postal lookup onto the internal fixed vocabulary.
//
// All comparisons are case-folded and diacritic-stripped, so "CATÓLE" from
// the lookup service matches the table entry "Catolé".
package zone
