package order

import (
	"testing"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExceedsCreditLimit(t *testing.T) {
	o := newTestOrder(t) // total 750

	over, err := ExceedsCreditLimit(o, PaymentTerms{
		CreditLimit:        *shared.NewMoney(1000, "SGD"),
		OutstandingBalance: *shared.NewMoney(0, "SGD"),
	})
	require.NoError(t, err)
	assert.False(t, over)

	over, err = ExceedsCreditLimit(o, PaymentTerms{
		CreditLimit:        *shared.NewMoney(1000, "SGD"),
		OutstandingBalance: *shared.NewMoney(500, "SGD"),
	})
	require.NoError(t, err)
	assert.True(t, over)
}

func TestZeroCreditLimitMeansUncapped(t *testing.T) {
	o := newTestOrder(t)

	over, err := ExceedsCreditLimit(o, PaymentTerms{
		CreditLimit:        *shared.NewMoney(0, "SGD"),
		OutstandingBalance: *shared.NewMoney(999999, "SGD"),
	})
	require.NoError(t, err)
	assert.False(t, over)
}

func TestExceedsCreditLimitCurrencyMismatch(t *testing.T) {
	o := newTestOrder(t)

	_, err := ExceedsCreditLimit(o, PaymentTerms{
		CreditLimit:        *shared.NewMoney(1000, "USD"),
		OutstandingBalance: *shared.NewMoney(0, "USD"),
	})
	assert.Error(t, err)
}
