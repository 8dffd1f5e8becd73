package kernel_test

import (
	"testing"

	"pratofit/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_ExactArithmetic(t *testing.T) {
	kit := kernel.NewMoneyFromFloat(85.00)
	fee := kernel.NewMoneyFromFloat(7.00)

	total := kit.Add(fee)
	assert.Equal(t, "92.00", total.StringFixed())

	// Repeated one-cent adjustments must not drift the total.
	cent := kernel.NewMoneyFromFloat(0.01)
	adjusted := total
	for i := 0; i < 10_000; i++ {
		adjusted = adjusted.Add(cent)
	}
	for i := 0; i < 10_000; i++ {
		adjusted = adjusted.Sub(cent)
	}
	assert.True(t, adjusted.IsEqual(total))
	assert.Equal(t, "92.00", adjusted.StringFixed())
}

func TestMoney_FromString(t *testing.T) {
	m, err := kernel.NewMoneyFromString("160.00")
	require.NoError(t, err)
	assert.Equal(t, "160.00", m.StringFixed())

	_, err = kernel.NewMoneyFromString("not-a-number")
	require.Error(t, err)
}

func TestMoney_BRL(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "R$ 0,00"},
		{"fee", 7.00, "R$ 7,00"},
		{"kit", 85.00, "R$ 85,00"},
		{"hundreds", 300.00, "R$ 300,00"},
		{"thousands", 1085.50, "R$ 1.085,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kernel.NewMoneyFromFloat(tt.amount).BRL())
		})
	}
}

func TestMoney_ZeroValue(t *testing.T) {
	var m kernel.Money
	assert.True(t, m.IsZero())
	assert.False(t, m.IsPositive())
	assert.True(t, m.IsEqual(kernel.ZeroMoney()))
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID
	require.Error(t, zero.Validate())

	id := kernel.NewUUID()
	require.NoError(t, id.Validate())

	parsed, err := kernel.UUIDFromString(id.String())
	require.NoError(t, err)
	assert.True(t, parsed.IsEqual(id))

	_, err = kernel.UUIDFromString("not-a-uuid")
	require.Error(t, err)
}
