package commands_test

import (
	"context"
	"testing"
	"time"

	"pratofit/internal/core/domain/model/catalog"
	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/core/domain/model/session"
	"pratofit/internal/core/domain/model/zone"
	"pratofit/internal/core/ports"

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

type MockAddressLookup struct{ mock.Mock }

func (m *MockAddressLookup) Lookup(ctx context.Context, postalCode string) (ports.AddressLookupResult, error) {
	args := m.Called(ctx, postalCode)
	return args.Get(0).(ports.AddressLookupResult), args.Error(1)
}

type MockChatAssistant struct{ mock.Mock }

func (m *MockChatAssistant) Reply(
	ctx context.Context,
	transcript []ports.ChatMessage,
	message string,
) (string, error) {
	args := m.Called(ctx, transcript, message)
	return args.String(0), args.Error(1)
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	kit2, err := catalog.NewKit("kit2", "Kit 2 Marmitas",
		2, kernel.NewMoneyFromFloat(50), kernel.NewMoneyFromFloat(25), "avulso", false)
	require.NoError(t, err)
	kit5, err := catalog.NewKit("kit5", "Kit 5 Marmitas",
		5, kernel.NewMoneyFromFloat(85), kernel.NewMoneyFromFloat(17), "semanal", true)
	require.NoError(t, err)

	frango, err := catalog.NewMenuItem("frango", "Frango Grelhado",
		"com legumes", "400g", "", "Tradicional", []string{"Proteico"})
	require.NoError(t, err)
	carne, err := catalog.NewMenuItem("carne", "Carne de Panela",
		"com mandioca", "400g", "", "Tradicional", nil)
	require.NoError(t, err)

	cat, err := catalog.NewCatalog(
		[]catalog.Kit{kit2, kit5},
		[]catalog.MenuItem{frango, carne},
	)
	require.NoError(t, err)
	return cat
}

func testZones(t *testing.T) zone.Table {
	t.Helper()

	near, err := zone.NewZone(kernel.NewMoneyFromFloat(7),
		"Zona 1", []string{"Catolé", "Centro"})
	require.NoError(t, err)
	far, err := zone.NewZone(kernel.NewMoneyFromFloat(12),
		"Zona 2", []string{"Bodocongó"})
	require.NoError(t, err)

	table, err := zone.NewTable([]zone.Zone{near, far})
	require.NoError(t, err)
	return table
}

func testSession(t *testing.T) *session.Session {
	t.Helper()

	aggregate, err := session.NewSession(kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return aggregate
}
