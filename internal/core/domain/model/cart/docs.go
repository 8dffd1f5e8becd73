// Package cart provides the order-configuration engine: the selected kit,
// the cart lines filling it and the exact-capacity invariant enforced on
// every mutation.
//
// Key business rules:
//   - Selecting a kit always resets the lines
//   - No mutation may push the total quantity past the kit capacity
//   - A blocked add fires SignalLimitRejected before mutating anything
//   - The add that fills the kit fires SignalKitCompleted after applying
//   - Lines at quantity 0 are removed, never retained
//   - Checkout is eligible only at exactly full capacity
//
// Capacity violations are signals, not errors; destructive operations
// (changing the kit or clearing a non-empty cart) are confirmed by the
// application layer before the cart is touched.
package cart
