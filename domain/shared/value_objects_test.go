package shared

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoney(300, "SGD")
	b := NewMoney(150, "SGD")

	sum, err := a.Add(*b)
	require.NoError(t, err)
	assert.Equal(t, int64(450), sum.Amount())

	diff, err := a.Subtract(*b)
	require.NoError(t, err)
	assert.Equal(t, int64(150), diff.Amount())

	product, err := a.Multiply(3)
	require.NoError(t, err)
	assert.Equal(t, int64(900), product.Amount())
}

func TestMoneyCurrencyMismatch(t *testing.T) {
	a := NewMoney(300, "SGD")
	b := NewMoney(150, "USD")

	_, err := a.Add(*b)
	assert.Error(t, err)

	_, err = a.Subtract(*b)
	assert.Error(t, err)
}

func TestMoneyMultiplyOverflow(t *testing.T) {
	huge := NewMoney(math.MaxInt64/2, "SGD")
	_, err := huge.Multiply(3)
	assert.Error(t, err)

	_, err = huge.Multiply(-1)
	assert.Error(t, err)
}

func TestMoneyComparisons(t *testing.T) {
	a := NewMoney(300, "SGD")
	b := NewMoney(150, "SGD")

	assert.True(t, a.IsGreaterThan(*b))
	assert.True(t, a.IsGreaterThanOrEqual(*a))
	assert.True(t, a.Equals(*NewMoney(300, "SGD")))
	assert.False(t, a.Equals(*NewMoney(300, "USD")))
	assert.True(t, NewMoney(0, "SGD").IsZero())
}
