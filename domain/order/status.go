package order

import (
	"time"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/shared"
)

// Status is the order's position in the fulfillment pipeline. The
// display strings are the persisted enum values exchanged with the
// upstream store.
type Status string

const (
	StatusToSelectDate      Status = "To select date"
	StatusToPickBiller      Status = "To pick person for billing in Insmart"
	StatusDelegated         Status = "Order delegated for billing"
	StatusBillingInProgress Status = "Billing in progress"
	StatusBilledInInsmart   Status = "Billed in Insmart"
	StatusShipped           Status = "Shipped"
	StatusDelivered         Status = "Delivered"
	StatusCancelled         Status = "Cancelled"
)

// IsTerminal reports whether the order can no longer be modified.
func (s Status) IsTerminal() bool {
	return s == StatusShipped || s == StatusDelivered || s == StatusCancelled
}

// IsValid reports whether the string is a known status value.
func (s Status) IsValid() bool {
	switch s {
	case StatusToSelectDate, StatusToPickBiller, StatusDelegated,
		StatusBillingInProgress, StatusBilledInInsmart,
		StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// sameDay compares two timestamps with the time of day stripped.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SetShippingDate picks or updates the shipping date.
// Picking a date on a fresh order advances it to the biller-selection
// queue; re-picking the identical date is a no-op so repeated submits
// cause no status churn.
func (o *Order) SetShippingDate(date time.Time) error {
	if o.shippingDate != nil && sameDay(*o.shippingDate, date) {
		return nil
	}

	switch o.status {
	case StatusToSelectDate:
		d := date
		o.shippingDate = &d
		o.status = StatusToPickBiller
		o.record(NewShippingDateChosenEvent(o.id, date))
	case StatusToPickBiller:
		d := date
		o.shippingDate = &d
		o.record(NewShippingDateChosenEvent(o.id, date))
	default:
		return NewInvalidStatusTransitionError(o.status, "set shipping date")
	}

	o.updatedAt = time.Now()
	return nil
}

// ClearShippingDate removes the shipping date, reverting the order to
// date selection. Only legal while a biller has not been assigned.
func (o *Order) ClearShippingDate() error {
	if o.status != StatusToPickBiller || o.billedInInsmartBy != nil {
		return NewInvalidStatusTransitionError(o.status, "clear shipping date")
	}

	o.shippingDate = nil
	o.status = StatusToSelectDate
	o.updatedAt = time.Now()
	o.record(NewShippingDateClearedEvent(o.id))
	return nil
}

// AssignBiller delegates the order to a biller.
// Window and priority checks are the billing arbiter's responsibility;
// the aggregate only enforces the status machine.
func (o *Order) AssignBiller(biller BillerID) error {
	if biller == "" {
		return shared.NewValidationError("order", "biller", "biller ID is required")
	}
	if o.status != StatusToPickBiller {
		return NewInvalidStatusTransitionError(o.status, "assign biller")
	}

	b := biller
	o.billedInInsmartBy = &b
	o.status = StatusDelegated
	o.updatedAt = time.Now()
	o.record(NewBillerAssignedEvent(o.id, string(biller)))
	return nil
}

// ClearBiller removes the assigned biller, reverting the order to the
// biller-selection queue. Legal while delegated or mid-billing.
func (o *Order) ClearBiller() error {
	if o.status != StatusDelegated && o.status != StatusBillingInProgress {
		return NewInvalidStatusTransitionError(o.status, "clear biller")
	}

	o.billedInInsmartBy = nil
	o.status = StatusToPickBiller
	o.updatedAt = time.Now()
	o.record(NewBillerClearedEvent(o.id))
	return nil
}

// StartBilling moves a delegated order into active billing. The
// one-task-per-biller rule is checked by the billing service against
// current state at action time, not here.
func (o *Order) StartBilling() error {
	if o.status != StatusDelegated {
		return NewInvalidStatusTransitionError(o.status, "start billing")
	}

	o.status = StatusBillingInProgress
	o.updatedAt = time.Now()
	o.record(NewBillingStartedEvent(o.id))
	return nil
}

// CompleteBilling finishes the billing task and stamps the billed date.
func (o *Order) CompleteBilling(now time.Time) error {
	if o.status != StatusBillingInProgress {
		return NewInvalidStatusTransitionError(o.status, "complete billing")
	}

	o.status = StatusBilledInInsmart
	o.billedDate = &now
	o.updatedAt = time.Now()
	o.record(NewBillingCompletedEvent(o.id))
	return nil
}

// CancelBilling abandons the in-progress billing task. The biller
// stays assigned; the order returns to the delegated state.
func (o *Order) CancelBilling() error {
	if o.status != StatusBillingInProgress {
		return NewInvalidStatusTransitionError(o.status, "cancel billing")
	}

	o.status = StatusDelegated
	o.updatedAt = time.Now()
	o.record(NewBillingCancelledEvent(o.id))
	return nil
}

// MarkShipped records the packer and moves the order to Shipped.
func (o *Order) MarkShipped(packedBy string) error {
	if o.status != StatusBilledInInsmart {
		return NewInvalidStatusTransitionError(o.status, "mark shipped")
	}

	o.packedBy = packedBy
	o.status = StatusShipped
	o.updatedAt = time.Now()
	o.record(NewOrderShippedEvent(o.id))
	return nil
}

// MarkDelivered records the deliverer and moves the order to Delivered.
func (o *Order) MarkDelivered(deliveredBy string) error {
	if o.status != StatusShipped {
		return NewInvalidStatusTransitionError(o.status, "mark delivered")
	}

	o.deliveredBy = deliveredBy
	o.status = StatusDelivered
	o.updatedAt = time.Now()
	o.record(NewOrderDeliveredEvent(o.id))
	return nil
}

// Cancel terminates the order from any non-terminal state.
func (o *Order) Cancel(reason string) error {
	if o.status == StatusDelivered || o.status == StatusCancelled {
		return NewInvalidStatusTransitionError(o.status, "cancel")
	}

	o.status = StatusCancelled
	o.updatedAt = time.Now()
	o.record(NewOrderCancelledEvent(o.id, reason))
	return nil
}

// CanModify reports whether modification requests may still be raised.
func (o *Order) CanModify() bool {
	return !o.status.IsTerminal()
}
