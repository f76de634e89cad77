package order

import "time"

// CreateOrderRequest is the checkout input. InvoiceDate is optional:
// when set, the order is an advance order invoiced later than it was
// placed.
type CreateOrderRequest struct {
	ShopID      string             `json:"shop_id" binding:"required"`
	Items       []OrderItemRequest `json:"items" binding:"required,min=1"`
	InvoiceDate *time.Time         `json:"invoice_date"`
}

// OrderItemRequest is a single line at checkout.
type OrderItemRequest struct {
	ProductID   string `json:"product_id" binding:"required"`
	ProductName string `json:"product_name" binding:"required"`
	UOM         string `json:"uom"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	UnitPrice   int64  `json:"unit_price" binding:"required,min=0"`
	Currency    string `json:"currency" binding:"required"`
}

// SetShippingDateRequest sets or clears the shipping date; a null date
// clears it.
type SetShippingDateRequest struct {
	Date *time.Time `json:"date"`
}

// AssignBillersRequest is a bulk biller assignment.
type AssignBillersRequest struct {
	OrderIDs []string `json:"order_ids" binding:"required,min=1"`
	Biller   string   `json:"biller" binding:"required"`
	Override bool     `json:"override"`
}

// AssignBillersResponse reports the per-order outcome of a bulk
// assignment. Exactly one of Result and Conflict is set.
type AssignBillersResponse struct {
	Result   *AssignmentResultResponse `json:"result,omitempty"`
	Conflict *PriorityConflictResponse `json:"conflict,omitempty"`
}

type AssignmentResultResponse struct {
	Assigned []string                `json:"assigned"`
	Rejected []RejectedOrderResponse `json:"rejected"`
}

type RejectedOrderResponse struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
}

// PriorityConflictResponse tells the caller a more urgent order exists;
// the original request must be repeated with override to proceed.
type PriorityConflictResponse struct {
	MostUrgentOrder   *OrderResponse `json:"most_urgent_order"`
	RequestedOrderIDs []string       `json:"requested_order_ids"`
	Biller            string         `json:"biller"`
}

// ShipOrderRequest records who packed the shipment.
type ShipOrderRequest struct {
	PackedBy string `json:"packed_by" binding:"required"`
}

// DeliverOrderRequest records who delivered the shipment.
type DeliverOrderRequest struct {
	DeliveredBy string `json:"delivered_by" binding:"required"`
}

// CancelOrderRequest carries the cancellation reason.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// CreateModificationRequest carries the customer's desired final item
// list. The service diffs it against the order.
type CreateModificationRequest struct {
	Items []DesiredItemRequest `json:"items" binding:"required,min=1"`
}

type DesiredItemRequest struct {
	ProductID   string `json:"product_id" binding:"required"`
	ProductName string `json:"product_name"`
	UOM         string `json:"uom"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	UnitPrice   int64  `json:"unit_price" binding:"min=0"`
	Currency    string `json:"currency"`
}

// ResolveModificationRequest resolves a whole request, or a single
// line when ProductID is set.
type ResolveModificationRequest struct {
	Decision    string `json:"decision" binding:"required,oneof=accepted denied"`
	ProductID   string `json:"product_id"`
	ProcessedBy string `json:"processed_by" binding:"required"`
}

// CreditCheckRequest carries the shop's payment terms; the caller
// resolves them, the service only arbitrates.
type CreditCheckRequest struct {
	CreditLimit        int64  `json:"credit_limit" binding:"min=0"`
	OutstandingBalance int64  `json:"outstanding_balance" binding:"min=0"`
	Currency           string `json:"currency" binding:"required"`
	TermDays           int    `json:"term_days"`
}

type CreditCheckResponse struct {
	Allowed  bool   `json:"allowed"`
	Exposure int64  `json:"exposure"`
	Currency string `json:"currency"`
}

// OrderResponse is the full read model of an order.
type OrderResponse struct {
	ID                string              `json:"id"`
	ShopID            string              `json:"shop_id"`
	Items             []OrderItemResponse `json:"items"`
	TotalPrice        MoneyResponse       `json:"total_price"`
	Status            string              `json:"status"`
	OrderDate         time.Time           `json:"order_date"`
	InvoiceDate       time.Time           `json:"invoice_date"`
	ShippingDate      *time.Time          `json:"shipping_date,omitempty"`
	BilledInInsmartBy *string             `json:"billed_in_insmart_by,omitempty"`
	PackedBy          string              `json:"packed_by,omitempty"`
	DeliveredBy       string              `json:"delivered_by,omitempty"`
	BilledDate        *time.Time          `json:"billed_date,omitempty"`

	IsModified          bool           `json:"is_modified"`
	OriginalTotalPrice  *MoneyResponse `json:"original_total_price,omitempty"`
	ModificationDate    *time.Time     `json:"modification_date,omitempty"`
	ModificationSummary string         `json:"modification_summary,omitempty"`

	ModificationRequests          []ModificationRequestResponse `json:"modification_requests"`
	ProcessedModificationRequests []ModificationRequestResponse `json:"processed_modification_requests"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItemResponse struct {
	ProductID   string        `json:"product_id"`
	ProductName string        `json:"product_name"`
	UOM         string        `json:"uom"`
	Quantity    int           `json:"quantity"`
	UnitPrice   MoneyResponse `json:"unit_price"`
	Subtotal    MoneyResponse `json:"subtotal"`
}

type MoneyResponse struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type ModificationRequestResponse struct {
	ID                    string                         `json:"id"`
	RequestDate           time.Time                      `json:"request_date"`
	RequestedTotalPrice   MoneyResponse                  `json:"requested_total_price"`
	RequestSummary        string                         `json:"request_summary"`
	Status                string                         `json:"status"`
	RequestedItems        []RequestedItemResponse        `json:"requested_items"`
	PendingRemovedItems   []RemovedItemResponse          `json:"pending_removed_items"`
	ProcessedRemovedItems []ProcessedRemovedItemResponse `json:"processed_removed_items"`
	ProcessedDate         *time.Time                     `json:"processed_date,omitempty"`
	ProcessedBy           string                         `json:"processed_by,omitempty"`
}

type RequestedItemResponse struct {
	ProductID        string        `json:"product_id"`
	ProductName      string        `json:"product_name"`
	UOM              string        `json:"uom"`
	Quantity         int           `json:"quantity"`
	UnitPrice        MoneyResponse `json:"unit_price"`
	ChangeType       string        `json:"change_type"`
	OriginalQuantity *int          `json:"original_quantity,omitempty"`
	Status           string        `json:"status"`
}

type RemovedItemResponse struct {
	ProductID        string        `json:"product_id"`
	ProductName      string        `json:"product_name"`
	UOM              string        `json:"uom"`
	OriginalQuantity int           `json:"original_quantity"`
	UnitPrice        MoneyResponse `json:"unit_price"`
}

type ProcessedRemovedItemResponse struct {
	Item          RemovedItemResponse `json:"item"`
	Status        string              `json:"status"`
	ProcessedDate time.Time           `json:"processed_date"`
	ProcessedBy   string              `json:"processed_by"`
}
