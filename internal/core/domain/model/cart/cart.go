package cart

import (
	"pratofit/internal/core/domain/model/catalog"
)

// Line is one menu item and its selected quantity within the active kit.
//
// Invariants:
//   - quantity is always >= 1; a line that reaches 0 is removed, not kept
//   - at most one line exists per menu item identifier
type Line struct {
	item     catalog.MenuItem
	quantity int
}

// Item returns the menu item the line refers to.
func (l Line) Item() catalog.MenuItem { return l.item }

// Quantity returns the selected quantity, always >= 1.
func (l Line) Quantity() int { return l.quantity }

// Cart owns the selected kit and the cart lines, and enforces the
// exact-capacity invariant on every mutation: the line quantities never sum
// past the kit capacity, and checkout is eligible only when the sum equals
// the capacity exactly.
//
// Cart is not safe for concurrent use; each request works on its own copy
// of the owning session.
type Cart struct {
	kit   *catalog.Kit
	lines []Line
}

// NewCart creates an empty cart with no kit selected.
func NewCart() *Cart {
	return &Cart{}
}

// Clone returns a deep copy sharing no mutable state with the receiver.
func (c *Cart) Clone() *Cart {
	clone := &Cart{lines: append([]Line(nil), c.lines...)}
	if c.kit != nil {
		kit := *c.kit
		clone.kit = &kit
	}
	return clone
}

// Kit returns the active kit and whether one is selected.
func (c *Cart) Kit() (catalog.Kit, bool) {
	if c.kit == nil {
		return catalog.Kit{}, false
	}
	return *c.kit, true
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	return append([]Line(nil), c.lines...)
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// TotalSelected returns the sum of all line quantities.
func (c *Cart) TotalSelected() int {
	total := 0
	for _, line := range c.lines {
		total += line.quantity
	}
	return total
}

// QuantityOf returns the quantity for the given item id, or 0 when absent.
func (c *Cart) QuantityOf(itemID string) int {
	for _, line := range c.lines {
		if line.item.ID() == itemID {
			return line.quantity
		}
	}
	return 0
}

// IsComplete reports checkout eligibility: a kit is selected and the cart
// quantity equals its capacity exactly. Under- and over-filled carts are
// both ineligible; over-filled is unreachable given the mutation guards.
func (c *Cart) IsComplete() bool {
	return c.kit != nil && c.TotalSelected() == c.kit.TotalMeals()
}

// SelectKit sets the active kit and unconditionally clears all cart lines.
// Always succeeds; any in-progress checkout surfaces tied to the previous
// selection are invalidated by the caller.
func (c *Cart) SelectKit(kit catalog.Kit) {
	c.kit = &kit
	c.lines = nil
}

// ClearKit clears the kit selection and all lines. The confirmation gate for
// a non-empty cart lives with the caller; this method is the affirmative
// branch.
func (c *Cart) ClearKit() {
	c.kit = nil
	c.lines = nil
}

// Clear removes all lines, keeping the kit selection. As with ClearKit, the
// caller confirms first when the cart is non-empty.
func (c *Cart) Clear() {
	c.lines = nil
}

// AddUnit increments the item's line quantity by one, creating the line at
// quantity 1 when absent.
//
// With no kit selected the call is a no-op (defensive guard, unreachable via
// the normal flow). When the cart is already full the mutation is rejected
// and SignalLimitRejected is returned; when the increment fills the kit
// exactly, SignalKitCompleted is returned after applying it.
func (c *Cart) AddUnit(item catalog.MenuItem) Signal {
	if c.kit == nil {
		return SignalNone
	}

	total := c.TotalSelected()
	if total >= c.kit.TotalMeals() {
		return SignalLimitRejected
	}

	for i := range c.lines {
		if c.lines[i].item.ID() == item.ID() {
			c.lines[i].quantity++
			return c.completionSignal(total + 1)
		}
	}

	c.lines = append(c.lines, Line{item: item, quantity: 1})
	return c.completionSignal(total + 1)
}

// AdjustQuantity applies a quantity delta to the item's existing line.
// Callers only ever pass ±1, but any integer delta keeps the invariant: a
// positive delta that would push the total past capacity is rejected before
// mutation, with the same signals as AddUnit. Negative deltas skip the
// capacity check; the quantity is clamped at 0 and an emptied line is
// removed from the cart. Lines are never created here: a positive delta
// for an item with no line passes the capacity check and then falls
// through to SignalNone without mutating, since only AddUnit creates
// lines.
func (c *Cart) AdjustQuantity(itemID string, delta int) Signal {
	if c.kit == nil {
		return SignalNone
	}

	if delta > 0 {
		total := c.TotalSelected()
		if total+delta > c.kit.TotalMeals() {
			return SignalLimitRejected
		}
	}

	for i := range c.lines {
		if c.lines[i].item.ID() != itemID {
			continue
		}

		c.lines[i].quantity += delta
		if c.lines[i].quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return SignalNone
		}
		return c.completionSignal(c.TotalSelected())
	}

	return SignalNone
}

func (c *Cart) completionSignal(total int) Signal {
	if total == c.kit.TotalMeals() {
		return SignalKitCompleted
	}
	return SignalNone
}
