package billing

import (
	"testing"
	"time"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/order"
	"github.com/kchelvan55/customer-admin-app-sub000/domain/shared"

	"github.com/stretchr/testify/assert"
)

func TestWithinWindowBoundaries(t *testing.T) {
	invoice := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		today time.Time
		want  bool
	}{
		{"three days before", invoice.AddDate(0, 0, -3), false},
		{"two days before", invoice.AddDate(0, 0, -2), true},
		{"one day before", invoice.AddDate(0, 0, -1), true},
		{"invoice day", invoice, true},
		{"one day after", invoice.AddDate(0, 0, 1), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WithinWindow(tc.today, invoice))
		})
	}
}

func TestWithinWindowIgnoresTimeOfDay(t *testing.T) {
	invoice := time.Date(2026, 3, 10, 0, 30, 0, 0, time.UTC)
	lateToday := time.Date(2026, 3, 8, 23, 59, 0, 0, time.UTC)

	assert.True(t, WithinWindow(lateToday, invoice))
}

func TestOrderWithinWindowFallsBackToOrderDate(t *testing.T) {
	orderDate := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	o := order.RebuildFromDTO(order.ReconstructionDTO{
		ID:         "o-1",
		ShopID:     "shop-a",
		TotalPrice: *shared.NewMoney(100, "SGD"),
		Status:     order.StatusToPickBiller,
		OrderDate:  orderDate,
		// InvoiceDate left zero: the guard must fall back to orderDate.
	})

	assert.True(t, OrderWithinWindow(o, orderDate.AddDate(0, 0, -1)))
	assert.False(t, OrderWithinWindow(o, orderDate.AddDate(0, 0, -3)))
}
