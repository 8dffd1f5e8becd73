package cart_test

import (
	"fmt"
	"testing"

	"pratofit/internal/core/domain/model/cart"
	"pratofit/internal/core/domain/model/catalog"
	"pratofit/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kitWithCapacity(t *testing.T, meals int) catalog.Kit {
	t.Helper()
	kit, err := catalog.NewKit(
		fmt.Sprintf("kit%d", meals),
		fmt.Sprintf("Kit %d Refeições", meals),
		meals,
		kernel.NewMoneyFromFloat(85.00),
		kernel.NewMoneyFromFloat(17.00),
		"",
		false,
	)
	require.NoError(t, err)
	return kit
}

func menuItem(t *testing.T, id string) catalog.MenuItem {
	t.Helper()
	item, err := catalog.NewMenuItem(id, "Prato "+id, "", "Serve 1 pessoa", "", "Almoço", nil)
	require.NoError(t, err)
	return item
}

func TestCart_AddUnit(t *testing.T) {
	t.Run("no kit selected is a no-op", func(t *testing.T) {
		c := cart.NewCart()
		sig := c.AddUnit(menuItem(t, "1"))
		assert.Equal(t, cart.SignalNone, sig)
		assert.True(t, c.IsEmpty())
	})

	t.Run("creates line at quantity 1, then increments", func(t *testing.T) {
		c := cart.NewCart()
		c.SelectKit(kitWithCapacity(t, 5))
		item := menuItem(t, "1")

		assert.Equal(t, cart.SignalNone, c.AddUnit(item))
		assert.Equal(t, cart.SignalNone, c.AddUnit(item))
		assert.Equal(t, 2, c.QuantityOf("1"))
		assert.Len(t, c.Lines(), 1)
	})

	t.Run("reject at capacity leaves lines untouched", func(t *testing.T) {
		c := cart.NewCart()
		c.SelectKit(kitWithCapacity(t, 1))
		require.Equal(t, cart.SignalKitCompleted, c.AddUnit(menuItem(t, "1")))

		before := c.Lines()
		sig := c.AddUnit(menuItem(t, "2"))
		assert.Equal(t, cart.SignalLimitRejected, sig)
		assert.True(t, sig.Rejected())
		assert.Equal(t, before, c.Lines())
		assert.Equal(t, 1, c.TotalSelected())
	})
}

func TestCart_CapacityInvariantHoldsForAnySequence(t *testing.T) {
	kit := kitWithCapacity(t, 5)
	items := []catalog.MenuItem{menuItem(t, "1"), menuItem(t, "2"), menuItem(t, "3")}

	c := cart.NewCart()
	c.SelectKit(kit)

	// A mixed sequence of adds and adjustments, deliberately overshooting.
	ops := []func(){
		func() { c.AddUnit(items[0]) },
		func() { c.AddUnit(items[1]) },
		func() { c.AdjustQuantity("1", +1) },
		func() { c.AddUnit(items[2]) },
		func() { c.AdjustQuantity("2", -1) },
		func() { c.AddUnit(items[1]) },
		func() { c.AddUnit(items[0]) },
		func() { c.AddUnit(items[2]) },
		func() { c.AdjustQuantity("3", +1) },
		func() { c.AdjustQuantity("3", +1) },
		func() { c.AddUnit(items[0]) },
	}

	for i, op := range ops {
		op()
		assert.LessOrEqual(t, c.TotalSelected(), kit.TotalMeals(), "after op %d", i)
	}
}

func TestCart_AdjustQuantity(t *testing.T) {
	t.Run("reducing to zero removes the line", func(t *testing.T) {
		c := cart.NewCart()
		c.SelectKit(kitWithCapacity(t, 5))
		c.AddUnit(menuItem(t, "1"))

		sig := c.AdjustQuantity("1", -1)
		assert.Equal(t, cart.SignalNone, sig)
		assert.Equal(t, 0, c.QuantityOf("1"))
		assert.True(t, c.IsEmpty())
	})

	t.Run("negative delta skips the capacity check", func(t *testing.T) {
		c := cart.NewCart()
		c.SelectKit(kitWithCapacity(t, 2))
		c.AddUnit(menuItem(t, "1"))
		c.AddUnit(menuItem(t, "1"))

		assert.Equal(t, cart.SignalNone, c.AdjustQuantity("1", -1))
		assert.Equal(t, 1, c.TotalSelected())
	})

	t.Run("positive delta past capacity is rejected before mutation", func(t *testing.T) {
		c := cart.NewCart()
		c.SelectKit(kitWithCapacity(t, 2))
		c.AddUnit(menuItem(t, "1"))
		c.AddUnit(menuItem(t, "1"))

		assert.Equal(t, cart.SignalLimitRejected, c.AdjustQuantity("1", +1))
		assert.Equal(t, 2, c.QuantityOf("1"))
	})

	t.Run("positive delta that fills the kit completes it", func(t *testing.T) {
		c := cart.NewCart()
		c.SelectKit(kitWithCapacity(t, 2))
		c.AddUnit(menuItem(t, "1"))

		assert.Equal(t, cart.SignalKitCompleted, c.AdjustQuantity("1", +1))
		assert.True(t, c.IsComplete())
	})

	t.Run("unknown item changes nothing", func(t *testing.T) {
		c := cart.NewCart()
		c.SelectKit(kitWithCapacity(t, 5))
		c.AddUnit(menuItem(t, "1"))

		assert.Equal(t, cart.SignalNone, c.AdjustQuantity("missing", -1))
		assert.Equal(t, 1, c.TotalSelected())
	})

	t.Run("positive delta never creates a line", func(t *testing.T) {
		c := cart.NewCart()
		c.SelectKit(kitWithCapacity(t, 5))
		c.AddUnit(menuItem(t, "1"))

		assert.Equal(t, cart.SignalNone, c.AdjustQuantity("missing", +1))
		assert.Equal(t, 0, c.QuantityOf("missing"))
		assert.Equal(t, 1, c.TotalSelected())
	})

	t.Run("capacity check runs before the line lookup", func(t *testing.T) {
		c := cart.NewCart()
		c.SelectKit(kitWithCapacity(t, 1))
		c.AddUnit(menuItem(t, "1"))

		assert.Equal(t, cart.SignalLimitRejected, c.AdjustQuantity("missing", +1))
		assert.Equal(t, 1, c.TotalSelected())
	})
}

func TestCart_SelectKitResetsLines(t *testing.T) {
	c := cart.NewCart()
	c.SelectKit(kitWithCapacity(t, 5))
	c.AddUnit(menuItem(t, "1"))
	c.AddUnit(menuItem(t, "2"))
	require.False(t, c.IsEmpty())

	c.SelectKit(kitWithCapacity(t, 10))
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalSelected())

	kit, ok := c.Kit()
	require.True(t, ok)
	assert.Equal(t, 10, kit.TotalMeals())
}

func TestCart_ClearAndClearKit(t *testing.T) {
	c := cart.NewCart()
	c.SelectKit(kitWithCapacity(t, 5))
	c.AddUnit(menuItem(t, "1"))

	c.Clear()
	assert.True(t, c.IsEmpty())
	_, ok := c.Kit()
	assert.True(t, ok, "Clear keeps the kit selection")

	c.AddUnit(menuItem(t, "1"))
	c.ClearKit()
	assert.True(t, c.IsEmpty())
	_, ok = c.Kit()
	assert.False(t, ok)
}

func TestCart_CheckoutEligibility(t *testing.T) {
	c := cart.NewCart()
	assert.False(t, c.IsComplete(), "no kit selected")

	c.SelectKit(kitWithCapacity(t, 2))
	assert.False(t, c.IsComplete(), "empty cart")

	c.AddUnit(menuItem(t, "1"))
	assert.False(t, c.IsComplete(), "under capacity")

	c.AddUnit(menuItem(t, "2"))
	assert.True(t, c.IsComplete(), "exactly full")
}

func TestCart_EndToEndKit5Scenario(t *testing.T) {
	c := cart.NewCart()
	c.SelectKit(kitWithCapacity(t, 5))

	completed := 0
	for i := 1; i <= 5; i++ {
		sig := c.AddUnit(menuItem(t, fmt.Sprintf("%d", i)))
		if sig == cart.SignalKitCompleted {
			completed++
			assert.Equal(t, 5, i, "completed signal fires on the 5th add")
		} else {
			assert.Equal(t, cart.SignalNone, sig)
		}
	}
	assert.Equal(t, 1, completed, "completed signal fires exactly once")

	before := c.Lines()
	assert.Equal(t, cart.SignalLimitRejected, c.AddUnit(menuItem(t, "6")))
	assert.Equal(t, before, c.Lines(), "rejected add leaves the cart unchanged")
	assert.True(t, c.IsComplete())
}
