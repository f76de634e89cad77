/*
Package order - order fulfillment subdomain, core layer.

The Order aggregate root owns the full lifecycle of a customer
submission: the item list, the billing status machine, fulfillment
metadata and the modification requests raised against it. All mutations
go through aggregate methods; fields are private and exposed through
read-only accessors, with reconstruction DTOs reserved for the
repository layer.
*/
package order

import (
	"fmt"
	"time"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/shared"

	"github.com/google/uuid"
)

// ShopID identifies the ordering shop/location. Resolved once at the
// boundary; the core never matches on free-form names.
type ShopID string

// BillerID identifies the staff member who records the order in the
// external Insmart billing system.
type BillerID string

// Order aggregate root - one customer submission.
// Never deleted: only transitioned forward/backward or cancelled.
type Order struct {
	id          string
	shopID      ShopID
	items       []OrderItem
	totalPrice  shared.Money
	status      Status
	orderDate   time.Time
	invoiceDate time.Time

	shippingDate      *time.Time
	billedInInsmartBy *BillerID
	packedBy          string
	deliveredBy       string
	billedDate        *time.Time

	// Legacy whole-order modification markers, kept alongside the
	// request-based mechanism for older report consumers.
	isModified          bool
	originalTotalPrice  *shared.Money
	modificationDate    *time.Time
	modificationSummary string

	modificationRequests          []*ModificationRequest
	processedModificationRequests []*ModificationRequest

	version   int
	createdAt time.Time
	updatedAt time.Time

	events []shared.DomainEvent
}

// OrderItem is an entity inside the aggregate; it has no global
// identity and can only be reached through the Order.
type OrderItem struct {
	productID   string
	productName string
	uom         string
	quantity    int
	unitPrice   shared.Money
}

// ItemRequest is the input for one order line at checkout.
type ItemRequest struct {
	ProductID   string
	ProductName string
	UOM         string
	Quantity    int
	UnitPrice   shared.Money
}

// NewOrder creates a new order at checkout. The invoice date defaults
// to the order date; use NewAdvanceOrder to invoice later.
func NewOrder(shopID ShopID, requests []ItemRequest) (*Order, error) {
	return newOrder(shopID, requests, nil)
}

// NewAdvanceOrder creates an order whose invoice date differs from the
// order date (advance orders are billed closer to delivery).
func NewAdvanceOrder(shopID ShopID, requests []ItemRequest, invoiceDate time.Time) (*Order, error) {
	return newOrder(shopID, requests, &invoiceDate)
}

func newOrder(shopID ShopID, requests []ItemRequest, invoiceDate *time.Time) (*Order, error) {
	if shopID == "" {
		return nil, shared.NewValidationError("order", "shop_id", "shop ID is required")
	}
	if len(requests) == 0 {
		return nil, NewEmptyOrderItemsError()
	}

	items := make([]OrderItem, len(requests))
	for i, req := range requests {
		if req.Quantity <= 0 {
			return nil, NewInvalidQuantityError(req.ProductID, req.Quantity)
		}
		items[i] = OrderItem{
			productID:   req.ProductID,
			productName: req.ProductName,
			uom:         req.UOM,
			quantity:    req.Quantity,
			unitPrice:   req.UnitPrice,
		}
	}

	total, err := sumItems(items)
	if err != nil {
		return nil, err
	}

	orderID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order ID: %w", err)
	}

	now := time.Now()
	orderDate := now
	effectiveInvoice := orderDate
	if invoiceDate != nil {
		effectiveInvoice = *invoiceDate
	}

	o := &Order{
		id:          orderID.String(),
		shopID:      shopID,
		items:       items,
		totalPrice:  *total,
		status:      StatusToSelectDate,
		orderDate:   orderDate,
		invoiceDate: effectiveInvoice,
		version:     0,
		createdAt:   now,
		updatedAt:   now,
		events:      make([]shared.DomainEvent, 0),
	}

	o.record(NewOrderPlacedEvent(o.id, string(shopID), o.totalPrice))
	return o, nil
}

// sumItems recomputes Σ price×quantity over the item list.
// An empty list yields zero in the given fallback currency.
func sumItems(items []OrderItem) (*shared.Money, error) {
	if len(items) == 0 {
		return shared.NewMoney(0, ""), nil
	}

	total := shared.NewMoney(0, items[0].unitPrice.Currency())
	for _, item := range items {
		subtotal, err := item.unitPrice.Multiply(item.quantity)
		if err != nil {
			return nil, err
		}
		total, err = total.Add(*subtotal)
		if err != nil {
			return nil, err
		}
	}
	return total, nil
}

// recomputeTotal re-derives totalPrice from the current items.
// Called after every item mutation; totalPrice is never set directly.
func (o *Order) recomputeTotal() error {
	currency := o.totalPrice.Currency()
	total, err := sumItems(o.items)
	if err != nil {
		return err
	}
	if total.Currency() == "" && currency != "" {
		total = shared.NewMoney(0, currency)
	}
	o.totalPrice = *total
	o.updatedAt = time.Now()
	return nil
}

func (o *Order) record(event shared.DomainEvent) {
	o.events = append(o.events, event)
}

// EffectiveInvoiceDate is the invoice date used by the billing window
// guard; it falls back to the order date when no invoice date was set.
func (o *Order) EffectiveInvoiceDate() time.Time {
	if o.invoiceDate.IsZero() {
		return o.orderDate
	}
	return o.invoiceDate
}

// findItem returns the index of the item with the given product ID, or -1.
func (o *Order) findItem(productID string) int {
	for i, item := range o.items {
		if item.productID == productID {
			return i
		}
	}
	return -1
}

// upsertItem sets the quantity of an existing line or appends a new one.
func (o *Order) upsertItem(productID, productName, uom string, quantity int, unitPrice shared.Money) {
	if i := o.findItem(productID); i >= 0 {
		o.items[i].quantity = quantity
		return
	}
	o.items = append(o.items, OrderItem{
		productID:   productID,
		productName: productName,
		uom:         uom,
		quantity:    quantity,
		unitPrice:   unitPrice,
	})
}

// removeItem drops a line by product ID. Missing lines are a no-op:
// a removal accepted after the line already disappeared must not fail.
func (o *Order) removeItem(productID string) {
	if i := o.findItem(productID); i >= 0 {
		o.items = append(o.items[:i], o.items[i+1:]...)
	}
}

// markModified stamps the legacy whole-order modification markers the
// first time a resolution mutates the item list. The pre-modification
// total is captured exactly once.
func (o *Order) markModified(summary string, now time.Time) {
	if !o.isModified {
		original := o.totalPrice
		o.originalTotalPrice = &original
		o.isModified = true
	}
	o.modificationDate = &now
	o.modificationSummary = summary
}

// Read-only accessors.

func (o *Order) ID() string     { return o.id }
func (o *Order) ShopID() ShopID { return o.shopID }

// Items returns a copy of the order lines.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) TotalPrice() shared.Money { return o.totalPrice }
func (o *Order) Status() Status           { return o.status }
func (o *Order) OrderDate() time.Time     { return o.orderDate }
func (o *Order) InvoiceDate() time.Time   { return o.invoiceDate }

func (o *Order) ShippingDate() *time.Time {
	if o.shippingDate == nil {
		return nil
	}
	d := *o.shippingDate
	return &d
}

func (o *Order) BilledInInsmartBy() *BillerID {
	if o.billedInInsmartBy == nil {
		return nil
	}
	b := *o.billedInInsmartBy
	return &b
}

func (o *Order) PackedBy() string    { return o.packedBy }
func (o *Order) DeliveredBy() string { return o.deliveredBy }

func (o *Order) BilledDate() *time.Time {
	if o.billedDate == nil {
		return nil
	}
	d := *o.billedDate
	return &d
}

func (o *Order) IsModified() bool { return o.isModified }

func (o *Order) OriginalTotalPrice() *shared.Money {
	if o.originalTotalPrice == nil {
		return nil
	}
	m := *o.originalTotalPrice
	return &m
}

func (o *Order) ModificationDate() *time.Time {
	if o.modificationDate == nil {
		return nil
	}
	d := *o.modificationDate
	return &d
}

func (o *Order) ModificationSummary() string { return o.modificationSummary }

// ModificationRequests returns the unresolved requests.
func (o *Order) ModificationRequests() []*ModificationRequest {
	reqs := make([]*ModificationRequest, len(o.modificationRequests))
	copy(reqs, o.modificationRequests)
	return reqs
}

// ProcessedModificationRequests returns the resolved requests.
func (o *Order) ProcessedModificationRequests() []*ModificationRequest {
	reqs := make([]*ModificationRequest, len(o.processedModificationRequests))
	copy(reqs, o.processedModificationRequests)
	return reqs
}

func (o *Order) Version() int         { return o.version }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// IncrementVersionForSave is called by the repository after a
// successful save.
func (o *Order) IncrementVersionForSave() {
	o.version++
	o.updatedAt = time.Now()
}

// PullEvents returns and clears the recorded domain events.
func (o *Order) PullEvents() []shared.DomainEvent {
	events := make([]shared.DomainEvent, len(o.events))
	copy(events, o.events)
	o.events = o.events[:0]
	return events
}

// OrderItem accessors.

func (item OrderItem) ProductID() string            { return item.productID }
func (item OrderItem) ProductName() string          { return item.productName }
func (item OrderItem) UOM() string                  { return item.uom }
func (item OrderItem) Quantity() int                { return item.quantity }
func (item OrderItem) UnitPrice() shared.Money      { return item.unitPrice }
func (item OrderItem) Subtotal() (*shared.Money, error) {
	return item.unitPrice.Multiply(item.quantity)
}

var _ shared.AggregateRoot = (*Order)(nil)
