package commands_test

import (
	"errors"
	"testing"

	"pratofit/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartSessionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	repo := new(MockSessionRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*session.Session")).Return(nil).Once()

	h := commands.NewStartSessionCommandHandler(repo)
	id, err := h.Handle(ctx, commands.NewStartSessionCommand())

	require.NoError(t, err)
	require.NoError(t, id.Validate())
	repo.AssertExpectations(t)
}

func TestStartSessionCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	repo := new(MockSessionRepository)
	repo.On("Add", ctx, mock.Anything).Return(errors.New("store full")).Once()

	h := commands.NewStartSessionCommandHandler(repo)
	_, err := h.Handle(ctx, commands.NewStartSessionCommand())

	require.Error(t, err)
}

func TestStartSessionCommandHandler_Handle_UnconstructedCommand(t *testing.T) {
	h := commands.NewStartSessionCommandHandler(new(MockSessionRepository))
	_, err := h.Handle(t.Context(), commands.StartSessionCommand{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStartSessionCommandIsNotConstructed)
}
