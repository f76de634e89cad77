// Package billing holds the billing-side domain services: the billing
// window guard, the biller mutual-exclusion check and the assignment
// arbiter.
package billing

import (
	"time"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/order"
)

// WindowDays is how many days before the invoice date an order becomes
// assignable/billable.
const WindowDays = 2

// truncateDay strips the time of day; the window is compared in whole
// dates.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WithinWindow reports whether today falls inside
// [invoiceDate − WindowDays, invoiceDate].
func WithinWindow(today, invoiceDate time.Time) bool {
	day := truncateDay(today)
	invoice := truncateDay(invoiceDate)
	earliest := invoice.AddDate(0, 0, -WindowDays)
	return !day.Before(earliest) && !day.After(invoice)
}

// OrderWithinWindow applies the guard to an order's effective invoice
// date (invoice date falling back to order date).
func OrderWithinWindow(o *order.Order, today time.Time) bool {
	return WithinWindow(today, o.EffectiveInvoiceDate())
}
