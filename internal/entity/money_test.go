package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount string, currency string) Money {
	t.Helper()
	m, err := NewMoney(decimal.RequireFromString(amount), currency)
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.RequireFromString("19.99"), " usd ")
	require.NoError(t, err)
	assert.Equal(t, "USD", m.Currency)
	assert.Equal(t, "19.99 USD", m.String())

	_, err = NewMoney(decimal.NewFromInt(1), "  ")
	assert.True(t, IsValidation(err))
}

func TestMoneyArithmetic(t *testing.T) {
	a := mustMoney(t, "10.50", "USD")
	b := mustMoney(t, "4.25", "USD")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "14.75 USD", sum.String())

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, "6.25 USD", diff.String())

	// Negative results are representable; callers decide what they mean.
	diff, err = b.Subtract(a)
	require.NoError(t, err)
	assert.True(t, diff.IsNegative())

	product := a.Multiply(decimal.NewFromInt(3))
	assert.Equal(t, "31.50 USD", product.String())

	quotient, err := a.Divide(decimal.NewFromInt(2))
	require.NoError(t, err)
	assert.Equal(t, "5.25 USD", quotient.String())

	_, err = a.Divide(decimal.Zero)
	assert.True(t, IsValidation(err))
}

func TestMoneyCurrencyMismatch(t *testing.T) {
	usd := mustMoney(t, "10", "USD")
	eur := mustMoney(t, "10", "EUR")

	_, err := usd.Add(eur)
	assert.True(t, IsValidation(err))
	_, err = usd.Subtract(eur)
	assert.True(t, IsValidation(err))
	_, err = usd.GreaterThan(eur)
	assert.True(t, IsValidation(err))
	_, err = usd.LessThan(eur)
	assert.True(t, IsValidation(err))
}

func TestMoneyComparisons(t *testing.T) {
	a := mustMoney(t, "10", "USD")
	b := mustMoney(t, "5", "USD")

	gt, err := a.GreaterThan(b)
	require.NoError(t, err)
	assert.True(t, gt)

	lt, err := a.LessThan(b)
	require.NoError(t, err)
	assert.False(t, lt)

	assert.True(t, ZeroMoney("USD").IsZero())
	assert.False(t, a.IsNegative())
}

func TestMoneyNoFloatDrift(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3.
	a := mustMoney(t, "0.1", "USD")
	b := mustMoney(t, "0.2", "USD")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount.Equal(decimal.RequireFromString("0.3")))
}
