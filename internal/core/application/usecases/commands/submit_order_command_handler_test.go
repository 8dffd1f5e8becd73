package commands_test

import (
	"testing"

	"pratofit/internal/core/application/usecases/commands"
	"pratofit/internal/core/domain/model/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubLinkBuilder struct{}

func (stubLinkBuilder) OrderLink(message string) string {
	return "https://wa.me/5583999999999?text=" + message
}

var testPickup = checkout.PickupInfo{
	Address:  "Rua Maria Minervina, 375 - Catolé",
	City:     "Campina Grande - PB",
	Hours:    "Seg a Sex, 9h às 18h",
	MapsLink: "https://maps.google.com/?q=Rua+Maria+Minervina+375",
}

func TestSubmitOrderCommandHandler_Handle_ReportsAllViolations(t *testing.T) {
	ctx := t.Context()
	aggregate := testSession(t)
	cat := testCatalog(t)

	kit2, err := cat.KitByID("kit2")
	require.NoError(t, err)
	aggregate.Cart().SelectKit(kit2)

	repo := new(MockSessionRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	h := commands.NewSubmitOrderCommandHandler(repo, testPickup, stubLinkBuilder{})
	cmd, err := commands.NewSubmitOrderCommand(aggregate.ID(), checkout.Draft{
		Name:    "Ana", // single token: invalid
		Payment: checkout.PaymentPix,
	})
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Contains(t, result.Violations, checkout.FieldName)
	assert.Contains(t, result.Violations, checkout.FieldStreet)
	assert.Contains(t, result.Violations, checkout.FieldNeighborhood)
	assert.Empty(t, result.Message)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSubmitOrderCommandHandler_Handle_PickupSuccess(t *testing.T) {
	ctx := t.Context()
	aggregate := testSession(t)
	cat := testCatalog(t)

	kit2, err := cat.KitByID("kit2")
	require.NoError(t, err)
	frango, err := cat.ItemByID("frango")
	require.NoError(t, err)
	carne, err := cat.ItemByID("carne")
	require.NoError(t, err)
	aggregate.Cart().SelectKit(kit2)
	aggregate.Cart().AddUnit(frango)
	aggregate.Cart().AddUnit(carne)
	aggregate.Checkout().SwitchToPickup()

	repo := new(MockSessionRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", ctx, aggregate).Return(nil).Once()

	h := commands.NewSubmitOrderCommandHandler(repo, testPickup, stubLinkBuilder{})
	cmd, err := commands.NewSubmitOrderCommand(aggregate.ID(), checkout.Draft{
		Name:       "Ana Souza",
		PickupTime: "12:30",
		Payment:    checkout.PaymentPix,
	})
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Empty(t, result.Violations)
	assert.Contains(t, result.Message, "Ana Souza")
	assert.Contains(t, result.Message, "Kit 2 Marmitas")
	assert.Contains(t, result.Link, "https://wa.me/")
	assert.Equal(t, "R$ 50,00", result.Total.BRL())
	repo.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_IncompleteCart(t *testing.T) {
	ctx := t.Context()
	aggregate := testSession(t)
	cat := testCatalog(t)

	kit2, err := cat.KitByID("kit2")
	require.NoError(t, err)
	frango, err := cat.ItemByID("frango")
	require.NoError(t, err)
	aggregate.Cart().SelectKit(kit2)
	aggregate.Cart().AddUnit(frango)
	aggregate.Checkout().SwitchToPickup()

	repo := new(MockSessionRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	h := commands.NewSubmitOrderCommandHandler(repo, testPickup, stubLinkBuilder{})
	cmd, err := commands.NewSubmitOrderCommand(aggregate.ID(), checkout.Draft{
		Name:       "Ana Souza",
		PickupTime: "12:30",
		Payment:    checkout.PaymentPix,
	})
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, checkout.ErrOrderIsIncomplete)
}
