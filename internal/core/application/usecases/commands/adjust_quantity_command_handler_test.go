package commands_test

import (
	"testing"

	"pratofit/internal/core/application/usecases/commands"
	"pratofit/internal/core/domain/model/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdjustQuantityCommandHandler_Handle_DecrementRemovesLine(t *testing.T) {
	ctx := t.Context()
	aggregate := testSession(t)
	cat := testCatalog(t)

	kit5, err := cat.KitByID("kit5")
	require.NoError(t, err)
	frango, err := cat.ItemByID("frango")
	require.NoError(t, err)
	aggregate.Cart().SelectKit(kit5)
	aggregate.Cart().AddUnit(frango)

	repo := new(MockSessionRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", ctx, aggregate).Return(nil).Once()

	h := commands.NewAdjustQuantityCommandHandler(repo)
	cmd, _ := commands.NewAdjustQuantityCommand(aggregate.ID(), "frango", -1)

	signal, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, cart.SignalNone, signal)
	assert.Equal(t, 0, aggregate.Cart().QuantityOf("frango"))
	assert.Empty(t, aggregate.Cart().Lines())
}

func TestAdjustQuantityCommandHandler_Handle_OverflowRejectedWhole(t *testing.T) {
	ctx := t.Context()
	aggregate := testSession(t)
	cat := testCatalog(t)

	kit2, err := cat.KitByID("kit2")
	require.NoError(t, err)
	frango, err := cat.ItemByID("frango")
	require.NoError(t, err)
	aggregate.Cart().SelectKit(kit2)
	aggregate.Cart().AddUnit(frango)

	repo := new(MockSessionRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	h := commands.NewAdjustQuantityCommandHandler(repo)
	cmd, _ := commands.NewAdjustQuantityCommand(aggregate.ID(), "frango", 2)

	signal, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, cart.SignalLimitRejected, signal)
	assert.Equal(t, 1, aggregate.Cart().QuantityOf("frango"))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
