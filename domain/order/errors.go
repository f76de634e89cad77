package order

import (
	"errors"
	"fmt"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/shared"
)

// Sentinel errors for errors.Is() checks. Constructor functions below
// attach context and capture the stack at the point of creation.
var (
	// ErrOrderNotFound - order does not exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderNotModifiable - modification attempted on a terminal order
	ErrOrderNotModifiable = errors.New("order can no longer be modified")

	// ErrInvalidStatusTransition - the action is illegal in the current status
	ErrInvalidStatusTransition = errors.New("invalid order status transition")

	// ErrBillingConflict - the biller already has an order billing in progress
	ErrBillingConflict = errors.New("complete or cancel current billing task first")

	// ErrRequestNotFound - modification request does not exist on the order
	ErrRequestNotFound = errors.New("modification request not found")

	// ErrRequestAlreadyResolved - the request has already been moved to processed
	ErrRequestAlreadyResolved = errors.New("modification request already resolved")

	// ErrItemNotFound - the referenced item is not pending in the request
	ErrItemNotFound = errors.New("item not found")

	// ErrEmptyOrderItems - an order needs at least one line
	ErrEmptyOrderItems = errors.New("order must have at least one item")

	// ErrInvalidQuantity - quantities must be positive once finalized
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidDecision - resolution decision must be accepted or denied
	ErrInvalidDecision = errors.New("decision must be accepted or denied")
)

// NewOrderNotFoundError creates an order-not-found error (with stack).
// Supports errors.Is(err, ErrOrderNotFound) and shared.Stacker.
func NewOrderNotFoundError(orderID string) error {
	return &orderDomainError{
		sentinel: ErrOrderNotFound,
		entity:   "order",
		message:  "order not found: " + orderID,
		stack:    shared.CaptureStack(3),
	}
}

// NewOrderNotModifiableError is returned when a modification request is
// raised against a shipped, delivered or cancelled order.
func NewOrderNotModifiableError(orderID string, status Status) error {
	return &orderDomainError{
		sentinel: ErrOrderNotModifiable,
		entity:   "order",
		message:  fmt.Sprintf("order %s cannot be modified in status %q", orderID, status),
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidStatusTransitionError names the rejected action and the
// status that rejected it.
func NewInvalidStatusTransitionError(current Status, action string) error {
	return &orderDomainError{
		sentinel: ErrInvalidStatusTransition,
		entity:   "order",
		message:  fmt.Sprintf("cannot %s in status %q", action, current),
		stack:    shared.CaptureStack(3),
	}
}

// NewBillingConflictError is returned when a biller tries to start a
// second billing task while one is still in progress.
func NewBillingConflictError(biller BillerID, inProgressOrderID string) error {
	return &orderDomainError{
		sentinel: ErrBillingConflict,
		entity:   "order",
		message: fmt.Sprintf("biller %s is already billing order %s: complete or cancel current billing task first",
			biller, inProgressOrderID),
		stack: shared.CaptureStack(3),
	}
}

// NewRequestNotFoundError creates a request-not-found error.
func NewRequestNotFoundError(requestID string) error {
	return &orderDomainError{
		sentinel: ErrRequestNotFound,
		entity:   "modification_request",
		message:  "modification request not found: " + requestID,
		stack:    shared.CaptureStack(3),
	}
}

// NewRequestAlreadyResolvedError is returned when resolving a request
// that already sits in the processed list.
func NewRequestAlreadyResolvedError(requestID string) error {
	return &orderDomainError{
		sentinel: ErrRequestAlreadyResolved,
		entity:   "modification_request",
		message:  "modification request already resolved: " + requestID,
		stack:    shared.CaptureStack(3),
	}
}

// NewItemNotFoundError is returned when a per-item resolution names a
// product that is not pending anywhere in the request.
func NewItemNotFoundError(requestID, productID string) error {
	return &orderDomainError{
		sentinel: ErrItemNotFound,
		entity:   "modification_request",
		field:    "product_id",
		message:  fmt.Sprintf("no pending item %s in request %s", productID, requestID),
		stack:    shared.CaptureStack(3),
	}
}

// NewEmptyOrderItemsError creates an empty-items error.
func NewEmptyOrderItemsError() error {
	return &orderDomainError{
		sentinel: ErrEmptyOrderItems,
		entity:   "order",
		field:    "items",
		message:  "order must have at least one item",
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidQuantityError creates an invalid-quantity error for a line.
func NewInvalidQuantityError(productID string, quantity int) error {
	return &orderDomainError{
		sentinel: ErrInvalidQuantity,
		entity:   "order",
		field:    "quantity",
		message:  fmt.Sprintf("quantity for %s must be positive, got %d", productID, quantity),
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidDecisionError is returned for resolution decisions other
// than accepted/denied.
func NewInvalidDecisionError(decision Decision) error {
	return &orderDomainError{
		sentinel: ErrInvalidDecision,
		entity:   "modification_request",
		field:    "decision",
		message:  fmt.Sprintf("decision must be accepted or denied, got %q", decision),
		stack:    shared.CaptureStack(3),
	}
}

// orderDomainError - structured order-domain error (internal).
// Implements error, Unwrap and shared.Stacker.
type orderDomainError struct {
	sentinel error
	entity   string
	field    string
	message  string
	stack    []uintptr
}

func (e *orderDomainError) Error() string {
	return e.message
}

func (e *orderDomainError) Unwrap() error {
	return e.sentinel
}

// Stack implements shared.Stacker.
func (e *orderDomainError) Stack() []string {
	if len(e.stack) == 0 {
		return nil
	}
	return shared.FormatStack(e.stack)
}
