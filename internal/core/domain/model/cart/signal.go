package cart

// Signal reports the capacity outcome of a cart mutation. Constraint
// violations are signals routed to user notification, never errors.
//
// SignalLimitRejected and SignalKitCompleted both surface the same dialog in
// the current client, but their trigger conditions differ and stay
// distinguishable here: rejected fires before a blocked add, completed fires
// after the add that fills the kit.
type Signal int

const (
	// SignalNone means the mutation applied without hitting capacity.
	SignalNone Signal = iota

	// SignalLimitRejected means the mutation would have pushed the cart past
	// the kit capacity and was not applied.
	SignalLimitRejected

	// SignalKitCompleted means the mutation applied and made the cart
	// exactly full.
	SignalKitCompleted
)

// String returns the signal name for logging.
func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "None"
	case SignalLimitRejected:
		return "LimitRejected"
	case SignalKitCompleted:
		return "KitCompleted"
	default:
		return "Unknown"
	}
}

// Rejected reports whether the mutation was blocked.
func (s Signal) Rejected() bool {
	return s == SignalLimitRejected
}
