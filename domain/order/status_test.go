package order

import (
	"testing"
	"time"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	o, err := NewOrder("shop-1", []ItemRequest{
		{ProductID: "p-apple", ProductName: "Apple", UOM: "kg", Quantity: 2, UnitPrice: *shared.NewMoney(300, "SGD")},
		{ProductID: "p-banana", ProductName: "Banana", UOM: "kg", Quantity: 1, UnitPrice: *shared.NewMoney(150, "SGD")},
	})
	require.NoError(t, err)
	return o
}

func TestNewOrderStartsAtToSelectDate(t *testing.T) {
	o := newTestOrder(t)

	assert.Equal(t, StatusToSelectDate, o.Status())
	assert.Equal(t, int64(750), o.TotalPrice().Amount())
	assert.Equal(t, o.OrderDate(), o.InvoiceDate())
	assert.Nil(t, o.ShippingDate())
	assert.Nil(t, o.BilledInInsmartBy())
}

func TestNewAdvanceOrderKeepsSeparateInvoiceDate(t *testing.T) {
	invoice := time.Now().AddDate(0, 0, 14)
	o, err := NewAdvanceOrder("shop-1", []ItemRequest{
		{ProductID: "p-apple", ProductName: "Apple", Quantity: 1, UnitPrice: *shared.NewMoney(300, "SGD")},
	}, invoice)
	require.NoError(t, err)

	assert.True(t, o.InvoiceDate().Equal(invoice))
	assert.True(t, o.EffectiveInvoiceDate().Equal(invoice))
}

func TestNewOrderValidation(t *testing.T) {
	_, err := NewOrder("shop-1", nil)
	assert.ErrorIs(t, err, ErrEmptyOrderItems)

	_, err = NewOrder("shop-1", []ItemRequest{
		{ProductID: "p-apple", Quantity: 0, UnitPrice: *shared.NewMoney(300, "SGD")},
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewOrder("", []ItemRequest{
		{ProductID: "p-apple", Quantity: 1, UnitPrice: *shared.NewMoney(300, "SGD")},
	})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestSetShippingDateAdvancesStatus(t *testing.T) {
	o := newTestOrder(t)
	date := time.Now().AddDate(0, 0, 2)

	require.NoError(t, o.SetShippingDate(date))
	assert.Equal(t, StatusToPickBiller, o.Status())
	require.NotNil(t, o.ShippingDate())
	assert.True(t, o.ShippingDate().Equal(date))
}

func TestSetShippingDateIsIdempotent(t *testing.T) {
	o := newTestOrder(t)
	date := time.Now().AddDate(0, 0, 2)

	require.NoError(t, o.SetShippingDate(date))
	statusAfterFirst := o.Status()
	eventsAfterFirst := len(o.PullEvents())

	// The same date again must cause no status churn and no new events.
	require.NoError(t, o.SetShippingDate(date))
	assert.Equal(t, statusAfterFirst, o.Status())
	assert.Empty(t, o.PullEvents())
	assert.Positive(t, eventsAfterFirst)
}

func TestSetShippingDateCanBeMovedBeforeAssignment(t *testing.T) {
	o := newTestOrder(t)
	first := time.Now().AddDate(0, 0, 2)
	second := time.Now().AddDate(0, 0, 5)

	require.NoError(t, o.SetShippingDate(first))
	require.NoError(t, o.SetShippingDate(second))

	assert.Equal(t, StatusToPickBiller, o.Status())
	assert.True(t, o.ShippingDate().Equal(second))
}

func TestClearShippingDateRevertsStatus(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.SetShippingDate(time.Now().AddDate(0, 0, 2)))

	require.NoError(t, o.ClearShippingDate())
	assert.Equal(t, StatusToSelectDate, o.Status())
	assert.Nil(t, o.ShippingDate())
}

func TestClearShippingDateRejectedOnceBillerAssigned(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.SetShippingDate(time.Now().AddDate(0, 0, 2)))
	require.NoError(t, o.AssignBiller("biller-meena"))

	err := o.ClearShippingDate()
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Equal(t, StatusDelegated, o.Status())
}

func TestAssignBillerDelegatesOrder(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.SetShippingDate(time.Now().AddDate(0, 0, 2)))

	require.NoError(t, o.AssignBiller("biller-meena"))
	assert.Equal(t, StatusDelegated, o.Status())
	require.NotNil(t, o.BilledInInsmartBy())
	assert.Equal(t, BillerID("biller-meena"), *o.BilledInInsmartBy())
}

func TestAssignBillerRequiresBillerQueue(t *testing.T) {
	o := newTestOrder(t)

	err := o.AssignBiller("biller-meena")
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Equal(t, StatusToSelectDate, o.Status())
}

func TestClearBillerRevertsFromDelegated(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.SetShippingDate(time.Now().AddDate(0, 0, 2)))
	require.NoError(t, o.AssignBiller("biller-meena"))

	require.NoError(t, o.ClearBiller())
	assert.Equal(t, StatusToPickBiller, o.Status())
	assert.Nil(t, o.BilledInInsmartBy())
}

func TestClearBillerRevertsFromBillingInProgress(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.SetShippingDate(time.Now().AddDate(0, 0, 2)))
	require.NoError(t, o.AssignBiller("biller-meena"))
	require.NoError(t, o.StartBilling())

	require.NoError(t, o.ClearBiller())
	assert.Equal(t, StatusToPickBiller, o.Status())
	assert.Nil(t, o.BilledInInsmartBy())
}

func TestBillingLifecycle(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.SetShippingDate(time.Now().AddDate(0, 0, 2)))
	require.NoError(t, o.AssignBiller("biller-meena"))

	require.NoError(t, o.StartBilling())
	assert.Equal(t, StatusBillingInProgress, o.Status())

	billedAt := time.Now()
	require.NoError(t, o.CompleteBilling(billedAt))
	assert.Equal(t, StatusBilledInInsmart, o.Status())
	require.NotNil(t, o.BilledDate())
	assert.True(t, o.BilledDate().Equal(billedAt))
}

func TestCancelBillingRetainsBiller(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.SetShippingDate(time.Now().AddDate(0, 0, 2)))
	require.NoError(t, o.AssignBiller("biller-meena"))
	require.NoError(t, o.StartBilling())

	require.NoError(t, o.CancelBilling())
	assert.Equal(t, StatusDelegated, o.Status())
	require.NotNil(t, o.BilledInInsmartBy())
	assert.Equal(t, BillerID("biller-meena"), *o.BilledInInsmartBy())
}

func TestStartBillingRequiresDelegation(t *testing.T) {
	o := newTestOrder(t)
	err := o.StartBilling()
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestShipAndDeliverStampFulfillmentMetadata(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.SetShippingDate(time.Now().AddDate(0, 0, 2)))
	require.NoError(t, o.AssignBiller("biller-meena"))
	require.NoError(t, o.StartBilling())
	require.NoError(t, o.CompleteBilling(time.Now()))

	require.NoError(t, o.MarkShipped("packer-ravi"))
	assert.Equal(t, StatusShipped, o.Status())
	assert.Equal(t, "packer-ravi", o.PackedBy())

	require.NoError(t, o.MarkDelivered("driver-kumar"))
	assert.Equal(t, StatusDelivered, o.Status())
	assert.Equal(t, "driver-kumar", o.DeliveredBy())
}

func TestCancelReachableFromNonTerminalStates(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.Cancel("customer asked"))
	assert.Equal(t, StatusCancelled, o.Status())

	err := o.Cancel("again")
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestCanModify(t *testing.T) {
	o := newTestOrder(t)
	assert.True(t, o.CanModify())

	require.NoError(t, o.SetShippingDate(time.Now().AddDate(0, 0, 2)))
	require.NoError(t, o.AssignBiller("biller-meena"))
	require.NoError(t, o.StartBilling())
	require.NoError(t, o.CompleteBilling(time.Now()))
	assert.True(t, o.CanModify())

	require.NoError(t, o.MarkShipped("packer-ravi"))
	assert.False(t, o.CanModify())
}
