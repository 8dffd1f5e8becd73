// Package checkout provides the fulfillment side of the order flow: the
// fee-resolution state machine fed by the postal-code lookup, the transient
// fulfillment form with its all-at-once validation, and the serialization
// of a finished order into the operator channel's message format.
//
// Key business rules:
//   - Fee resolution runs Unresolved -> Resolving -> Resolved | Failed,
//     with a single in-flight lookup per checkout
//   - A found postal code whose neighborhood matches no zone resolves
//     "unset": a distinct outcome from Failed that asks for manual choice
//   - A manual neighborhood choice always wins once made
//   - Switching to pickup zeroes the fee but keeps the neighborhood, so
//     switching back restores the fee from the zone table
//   - Totals are computed in exact decimal arithmetic
//   - The serialized message is an external contract: field order and
//     labels must stay stable
package checkout
