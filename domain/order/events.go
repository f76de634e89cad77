package order

import (
	"time"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/shared"
)

type OrderPlacedEvent struct {
	orderID    string
	shopID     string
	totalPrice shared.Money
	occurredOn time.Time
}

func NewOrderPlacedEvent(orderID, shopID string, totalPrice shared.Money) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		orderID:    orderID,
		shopID:     shopID,
		totalPrice: totalPrice,
		occurredOn: time.Now(),
	}
}

func (e *OrderPlacedEvent) EventName() string        { return "order.placed" }
func (e *OrderPlacedEvent) OccurredOn() time.Time    { return e.occurredOn }
func (e *OrderPlacedEvent) GetAggregateID() string   { return e.orderID }
func (e *OrderPlacedEvent) OrderID() string          { return e.orderID }
func (e *OrderPlacedEvent) ShopID() string           { return e.shopID }
func (e *OrderPlacedEvent) TotalPrice() shared.Money { return e.totalPrice }

type ShippingDateChosenEvent struct {
	orderID      string
	shippingDate time.Time
	occurredOn   time.Time
}

func NewShippingDateChosenEvent(orderID string, shippingDate time.Time) *ShippingDateChosenEvent {
	return &ShippingDateChosenEvent{
		orderID:      orderID,
		shippingDate: shippingDate,
		occurredOn:   time.Now(),
	}
}

func (e *ShippingDateChosenEvent) EventName() string        { return "order.shipping_date_chosen" }
func (e *ShippingDateChosenEvent) OccurredOn() time.Time    { return e.occurredOn }
func (e *ShippingDateChosenEvent) GetAggregateID() string   { return e.orderID }
func (e *ShippingDateChosenEvent) OrderID() string          { return e.orderID }
func (e *ShippingDateChosenEvent) ShippingDate() time.Time  { return e.shippingDate }

type ShippingDateClearedEvent struct {
	orderID    string
	occurredOn time.Time
}

func NewShippingDateClearedEvent(orderID string) *ShippingDateClearedEvent {
	return &ShippingDateClearedEvent{orderID: orderID, occurredOn: time.Now()}
}

func (e *ShippingDateClearedEvent) EventName() string      { return "order.shipping_date_cleared" }
func (e *ShippingDateClearedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *ShippingDateClearedEvent) GetAggregateID() string { return e.orderID }
func (e *ShippingDateClearedEvent) OrderID() string        { return e.orderID }

type BillerAssignedEvent struct {
	orderID    string
	biller     string
	occurredOn time.Time
}

func NewBillerAssignedEvent(orderID, biller string) *BillerAssignedEvent {
	return &BillerAssignedEvent{orderID: orderID, biller: biller, occurredOn: time.Now()}
}

func (e *BillerAssignedEvent) EventName() string      { return "order.biller_assigned" }
func (e *BillerAssignedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *BillerAssignedEvent) GetAggregateID() string { return e.orderID }
func (e *BillerAssignedEvent) OrderID() string        { return e.orderID }
func (e *BillerAssignedEvent) Biller() string         { return e.biller }

type BillerClearedEvent struct {
	orderID    string
	occurredOn time.Time
}

func NewBillerClearedEvent(orderID string) *BillerClearedEvent {
	return &BillerClearedEvent{orderID: orderID, occurredOn: time.Now()}
}

func (e *BillerClearedEvent) EventName() string      { return "order.biller_cleared" }
func (e *BillerClearedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *BillerClearedEvent) GetAggregateID() string { return e.orderID }
func (e *BillerClearedEvent) OrderID() string        { return e.orderID }

type BillingStartedEvent struct {
	orderID    string
	occurredOn time.Time
}

func NewBillingStartedEvent(orderID string) *BillingStartedEvent {
	return &BillingStartedEvent{orderID: orderID, occurredOn: time.Now()}
}

func (e *BillingStartedEvent) EventName() string      { return "order.billing_started" }
func (e *BillingStartedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *BillingStartedEvent) GetAggregateID() string { return e.orderID }
func (e *BillingStartedEvent) OrderID() string        { return e.orderID }

type BillingCompletedEvent struct {
	orderID    string
	occurredOn time.Time
}

func NewBillingCompletedEvent(orderID string) *BillingCompletedEvent {
	return &BillingCompletedEvent{orderID: orderID, occurredOn: time.Now()}
}

func (e *BillingCompletedEvent) EventName() string      { return "order.billing_completed" }
func (e *BillingCompletedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *BillingCompletedEvent) GetAggregateID() string { return e.orderID }
func (e *BillingCompletedEvent) OrderID() string        { return e.orderID }

type BillingCancelledEvent struct {
	orderID    string
	occurredOn time.Time
}

func NewBillingCancelledEvent(orderID string) *BillingCancelledEvent {
	return &BillingCancelledEvent{orderID: orderID, occurredOn: time.Now()}
}

func (e *BillingCancelledEvent) EventName() string      { return "order.billing_cancelled" }
func (e *BillingCancelledEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *BillingCancelledEvent) GetAggregateID() string { return e.orderID }
func (e *BillingCancelledEvent) OrderID() string        { return e.orderID }

type OrderShippedEvent struct {
	orderID    string
	occurredOn time.Time
}

func NewOrderShippedEvent(orderID string) *OrderShippedEvent {
	return &OrderShippedEvent{orderID: orderID, occurredOn: time.Now()}
}

func (e *OrderShippedEvent) EventName() string      { return "order.shipped" }
func (e *OrderShippedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *OrderShippedEvent) GetAggregateID() string { return e.orderID }
func (e *OrderShippedEvent) OrderID() string        { return e.orderID }

type OrderDeliveredEvent struct {
	orderID    string
	occurredOn time.Time
}

func NewOrderDeliveredEvent(orderID string) *OrderDeliveredEvent {
	return &OrderDeliveredEvent{orderID: orderID, occurredOn: time.Now()}
}

func (e *OrderDeliveredEvent) EventName() string      { return "order.delivered" }
func (e *OrderDeliveredEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *OrderDeliveredEvent) GetAggregateID() string { return e.orderID }
func (e *OrderDeliveredEvent) OrderID() string        { return e.orderID }

type OrderCancelledEvent struct {
	orderID    string
	reason     string
	occurredOn time.Time
}

func NewOrderCancelledEvent(orderID, reason string) *OrderCancelledEvent {
	return &OrderCancelledEvent{orderID: orderID, reason: reason, occurredOn: time.Now()}
}

func (e *OrderCancelledEvent) EventName() string      { return "order.cancelled" }
func (e *OrderCancelledEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *OrderCancelledEvent) GetAggregateID() string { return e.orderID }
func (e *OrderCancelledEvent) OrderID() string        { return e.orderID }
func (e *OrderCancelledEvent) Reason() string         { return e.reason }

type ModificationRequestedEvent struct {
	orderID    string
	requestID  string
	summary    string
	occurredOn time.Time
}

func NewModificationRequestedEvent(orderID, requestID, summary string) *ModificationRequestedEvent {
	return &ModificationRequestedEvent{
		orderID:    orderID,
		requestID:  requestID,
		summary:    summary,
		occurredOn: time.Now(),
	}
}

func (e *ModificationRequestedEvent) EventName() string      { return "order.modification_requested" }
func (e *ModificationRequestedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *ModificationRequestedEvent) GetAggregateID() string { return e.orderID }
func (e *ModificationRequestedEvent) OrderID() string        { return e.orderID }
func (e *ModificationRequestedEvent) RequestID() string      { return e.requestID }
func (e *ModificationRequestedEvent) Summary() string        { return e.summary }

type ModificationResolvedEvent struct {
	orderID    string
	requestID  string
	status     string
	occurredOn time.Time
}

func NewModificationResolvedEvent(orderID, requestID, status string) *ModificationResolvedEvent {
	return &ModificationResolvedEvent{
		orderID:    orderID,
		requestID:  requestID,
		status:     status,
		occurredOn: time.Now(),
	}
}

func (e *ModificationResolvedEvent) EventName() string      { return "order.modification_resolved" }
func (e *ModificationResolvedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *ModificationResolvedEvent) GetAggregateID() string { return e.orderID }
func (e *ModificationResolvedEvent) OrderID() string        { return e.orderID }
func (e *ModificationResolvedEvent) RequestID() string      { return e.requestID }
func (e *ModificationResolvedEvent) Status() string         { return e.status }
