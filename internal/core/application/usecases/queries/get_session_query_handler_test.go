package queries_test

import (
	"context"
	"testing"
	"time"

	"pratofit/internal/core/application/usecases/queries"
	"pratofit/internal/core/domain/model/catalog"
	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/core/domain/model/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

func TestGetSessionQueryHandler_Handle_FlattensCartAndCheckout(t *testing.T) {
	ctx := t.Context()

	aggregate, err := session.NewSession(kernel.NewUUID(), time.Now())
	require.NoError(t, err)

	kit, err := catalog.NewKit("kit2", "Kit 2 Marmitas",
		2, kernel.NewMoneyFromFloat(50), kernel.NewMoneyFromFloat(25), "", false)
	require.NoError(t, err)
	item, err := catalog.NewMenuItem("frango", "Frango Grelhado",
		"", "400g", "", "Tradicional", nil)
	require.NoError(t, err)

	aggregate.Cart().SelectKit(kit)
	aggregate.Cart().AddUnit(item)

	repo := new(MockSessionRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	h := queries.NewGetSessionQueryHandler(repo)
	query, err := queries.NewGetSessionQuery(aggregate.ID())
	require.NoError(t, err)

	response, err := h.Handle(ctx, query)
	require.NoError(t, err)

	require.NotNil(t, response.Kit)
	assert.Equal(t, "kit2", response.Kit.ID)
	assert.Equal(t, 2, response.Kit.TotalMeals)
	require.Len(t, response.Lines, 1)
	assert.Equal(t, "Frango Grelhado", response.Lines[0].Title)
	assert.Equal(t, 1, response.TotalSelected)
	assert.False(t, response.Complete)
	assert.Equal(t, "delivery", response.Mode)
	assert.Equal(t, "R$ 50,00", response.Total.BRL())
}

func TestGetSessionQueryHandler_Handle_EmptySession(t *testing.T) {
	ctx := t.Context()

	aggregate, err := session.NewSession(kernel.NewUUID(), time.Now())
	require.NoError(t, err)

	repo := new(MockSessionRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	h := queries.NewGetSessionQueryHandler(repo)
	query, err := queries.NewGetSessionQuery(aggregate.ID())
	require.NoError(t, err)

	response, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Nil(t, response.Kit)
	assert.Empty(t, response.Lines)
	assert.True(t, response.Total.IsZero())
}

func TestNewGetSessionQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetSessionQuery(kernel.UUID{})
	require.Error(t, err)
}
