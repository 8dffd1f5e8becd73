package commands_test

import (
	"testing"

	"pratofit/internal/core/application/usecases/commands"
	"pratofit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSelectKitCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := testSession(t)

	repo := new(MockSessionRepository)
	mock.InOrder(
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
	)

	h := commands.NewSelectKitCommandHandler(repo, testCatalog(t))
	cmd, _ := commands.NewSelectKitCommand(aggregate.ID(), "kit5")

	require.NoError(t, h.Handle(ctx, cmd))

	kit, ok := aggregate.Cart().Kit()
	require.True(t, ok)
	assert.Equal(t, "kit5", kit.ID())
	repo.AssertExpectations(t)
}

func TestSelectKitCommandHandler_Handle_ReplacesKitAndDropsSelection(t *testing.T) {
	ctx := t.Context()
	aggregate := testSession(t)
	cat := testCatalog(t)

	kit2, err := cat.KitByID("kit2")
	require.NoError(t, err)
	frango, err := cat.ItemByID("frango")
	require.NoError(t, err)

	aggregate.Cart().SelectKit(kit2)
	aggregate.Cart().AddUnit(frango)
	require.Equal(t, 1, aggregate.Cart().TotalSelected())

	repo := new(MockSessionRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", ctx, aggregate).Return(nil).Once()

	h := commands.NewSelectKitCommandHandler(repo, cat)
	cmd, _ := commands.NewSelectKitCommand(aggregate.ID(), "kit5")

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, 0, aggregate.Cart().TotalSelected())
}

func TestSelectKitCommandHandler_Handle_UnknownKit(t *testing.T) {
	ctx := t.Context()
	aggregate := testSession(t)

	repo := new(MockSessionRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	h := commands.NewSelectKitCommandHandler(repo, testCatalog(t))
	cmd, _ := commands.NewSelectKitCommand(aggregate.ID(), "kit99")

	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
