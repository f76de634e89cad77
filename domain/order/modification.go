package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/shared"

	"github.com/google/uuid"
)

// Decision is the terminal (or pending) fate of a request, an item in a
// request, or a removed-item entry.
type Decision string

const (
	DecisionPending  Decision = "pending"
	DecisionAccepted Decision = "accepted"
	DecisionDenied   Decision = "denied"
)

// ChangeType classifies one requested line against the order as it was
// when the request was created.
type ChangeType string

const (
	ChangeAdded           ChangeType = "added"
	ChangeQuantityChanged ChangeType = "quantityChanged"
	ChangeRemoved         ChangeType = "removed"
	// ChangeUnchanged carries desired lines whose quantity matches the
	// order, so every pre-request item stays accounted for.
	ChangeUnchanged ChangeType = "unchanged"
)

// MixedOutcomePolicy is the aggregate status given to a request whose
// items ended with mixed accept/deny outcomes. The observed upstream
// behaviour labels such requests accepted; the policy is a variable so
// the owner can flip it without touching resolution logic.
var MixedOutcomePolicy = DecisionAccepted

// ResolutionScope selects whole-request or single-item resolution.
// The two paths are intentionally distinct: whole-request resolution
// stamps everything at once, single-item resolution applies one effect
// immediately and leaves the rest pending.
type ResolutionScope struct {
	whole     bool
	productID string
}

// WholeRequest resolves every pending line in the request.
func WholeRequest() ResolutionScope {
	return ResolutionScope{whole: true}
}

// SingleItem resolves one pending line (requested or removed) by product ID.
func SingleItem(productID string) ResolutionScope {
	return ResolutionScope{productID: productID}
}

func (s ResolutionScope) IsWhole() bool     { return s.whole }
func (s ResolutionScope) ProductID() string { return s.productID }

// RequestedItem is one line of the customer's desired item list.
type RequestedItem struct {
	productID        string
	productName      string
	uom              string
	quantity         int
	unitPrice        shared.Money
	changeType       ChangeType
	originalQuantity *int // quantity before the request; nil for additions
	status           Decision
}

func (it RequestedItem) ProductID() string       { return it.productID }
func (it RequestedItem) ProductName() string     { return it.productName }
func (it RequestedItem) UOM() string             { return it.uom }
func (it RequestedItem) Quantity() int           { return it.quantity }
func (it RequestedItem) UnitPrice() shared.Money { return it.unitPrice }
func (it RequestedItem) ChangeType() ChangeType  { return it.changeType }
func (it RequestedItem) Status() Decision        { return it.status }

func (it RequestedItem) OriginalQuantity() *int {
	if it.originalQuantity == nil {
		return nil
	}
	q := *it.originalQuantity
	return &q
}

// RemovedItem snapshots an order line the customer wants gone. The
// snapshot carries enough data to resolve later even if the catalog
// changes in the meantime.
type RemovedItem struct {
	productID        string
	productName      string
	uom              string
	originalQuantity int
	unitPrice        shared.Money
}

func (it RemovedItem) ProductID() string       { return it.productID }
func (it RemovedItem) ProductName() string     { return it.productName }
func (it RemovedItem) UOM() string             { return it.uom }
func (it RemovedItem) OriginalQuantity() int   { return it.originalQuantity }
func (it RemovedItem) UnitPrice() shared.Money { return it.unitPrice }

// ProcessedRemovedItem is a removed-item snapshot after resolution.
type ProcessedRemovedItem struct {
	item          RemovedItem
	status        Decision
	processedDate time.Time
	processedBy   string
}

func (it ProcessedRemovedItem) Item() RemovedItem        { return it.item }
func (it ProcessedRemovedItem) Status() Decision         { return it.status }
func (it ProcessedRemovedItem) ProcessedDate() time.Time { return it.processedDate }
func (it ProcessedRemovedItem) ProcessedBy() string      { return it.processedBy }

// ModificationRequest is one customer-submitted edit proposal against
// an order. It lives in the order's unresolved list until every line
// reaches a terminal status, then moves (never copies) to the processed
// list.
type ModificationRequest struct {
	id                  string
	requestDate         time.Time
	requestedTotalPrice shared.Money
	requestSummary      string
	status              Decision

	requestedItems        []RequestedItem
	pendingRemovedItems   []RemovedItem
	processedRemovedItems []ProcessedRemovedItem

	processedDate *time.Time
	processedBy   string
}

func (r *ModificationRequest) ID() string                        { return r.id }
func (r *ModificationRequest) RequestDate() time.Time            { return r.requestDate }
func (r *ModificationRequest) RequestedTotalPrice() shared.Money { return r.requestedTotalPrice }
func (r *ModificationRequest) RequestSummary() string            { return r.requestSummary }
func (r *ModificationRequest) Status() Decision                  { return r.status }
func (r *ModificationRequest) ProcessedBy() string               { return r.processedBy }

func (r *ModificationRequest) RequestedItems() []RequestedItem {
	items := make([]RequestedItem, len(r.requestedItems))
	copy(items, r.requestedItems)
	return items
}

func (r *ModificationRequest) PendingRemovedItems() []RemovedItem {
	items := make([]RemovedItem, len(r.pendingRemovedItems))
	copy(items, r.pendingRemovedItems)
	return items
}

func (r *ModificationRequest) ProcessedRemovedItems() []ProcessedRemovedItem {
	items := make([]ProcessedRemovedItem, len(r.processedRemovedItems))
	copy(items, r.processedRemovedItems)
	return items
}

func (r *ModificationRequest) ProcessedDate() *time.Time {
	if r.processedDate == nil {
		return nil
	}
	d := *r.processedDate
	return &d
}

// allResolved reports whether every requested line and removed-item
// entry has a terminal status.
func (r *ModificationRequest) allResolved() bool {
	if len(r.pendingRemovedItems) > 0 {
		return false
	}
	for _, it := range r.requestedItems {
		if it.status == DecisionPending {
			return false
		}
	}
	return true
}

// aggregateStatus derives the request-level status from the terminal
// per-line statuses. Only meaningful once allResolved() holds.
func (r *ModificationRequest) aggregateStatus() Decision {
	accepted, denied := 0, 0
	for _, it := range r.requestedItems {
		switch it.status {
		case DecisionAccepted:
			accepted++
		case DecisionDenied:
			denied++
		}
	}
	for _, it := range r.processedRemovedItems {
		switch it.status {
		case DecisionAccepted:
			accepted++
		case DecisionDenied:
			denied++
		}
	}

	switch {
	case denied == 0:
		return DecisionAccepted
	case accepted == 0:
		return DecisionDenied
	default:
		return MixedOutcomePolicy
	}
}

// DesiredItem is one line of the customer's desired final item list.
type DesiredItem struct {
	ProductID   string
	ProductName string
	UOM         string
	Quantity    int
	UnitPrice   shared.Money
}

// CreateModificationRequest diffs the desired final item list against
// the current order and records the result as a pending request. The
// order's own items are not touched: requests are proposals, applied
// only on resolution.
func (o *Order) CreateModificationRequest(desired []DesiredItem) (*ModificationRequest, error) {
	if !o.CanModify() {
		return nil, NewOrderNotModifiableError(o.id, o.status)
	}

	seen := make(map[string]bool, len(desired))
	for _, d := range desired {
		if d.Quantity <= 0 {
			return nil, NewInvalidQuantityError(d.ProductID, d.Quantity)
		}
		if seen[d.ProductID] {
			return nil, shared.NewValidationError("modification_request", "items",
				"duplicate product in desired items: "+d.ProductID)
		}
		seen[d.ProductID] = true
	}

	requested := make([]RequestedItem, 0, len(desired))
	for _, d := range desired {
		item := RequestedItem{
			productID:   d.ProductID,
			productName: d.ProductName,
			uom:         d.UOM,
			quantity:    d.Quantity,
			unitPrice:   d.UnitPrice,
			status:      DecisionPending,
		}
		if i := o.findItem(d.ProductID); i >= 0 {
			orig := o.items[i].quantity
			item.originalQuantity = &orig
			if orig == d.Quantity {
				item.changeType = ChangeUnchanged
			} else {
				item.changeType = ChangeQuantityChanged
			}
			// Keep the snapshot's name/uom/price authoritative from the
			// order line, not the (possibly stale) client payload.
			item.productName = o.items[i].productName
			item.uom = o.items[i].uom
			item.unitPrice = o.items[i].unitPrice
		} else {
			item.changeType = ChangeAdded
		}
		requested = append(requested, item)
	}

	var removed []RemovedItem
	for _, item := range o.items {
		if !seen[item.productID] {
			removed = append(removed, RemovedItem{
				productID:        item.productID,
				productName:      item.productName,
				uom:              item.uom,
				originalQuantity: item.quantity,
				unitPrice:        item.unitPrice,
			})
		}
	}

	total := shared.NewMoney(0, o.totalPrice.Currency())
	for _, it := range requested {
		subtotal, err := it.unitPrice.Multiply(it.quantity)
		if err != nil {
			return nil, err
		}
		total, err = total.Add(*subtotal)
		if err != nil {
			return nil, err
		}
	}

	requestID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate request ID: %w", err)
	}

	req := &ModificationRequest{
		id:                  requestID.String(),
		requestDate:         time.Now(),
		requestedTotalPrice: *total,
		requestSummary:      buildRequestSummary(requested, removed),
		status:              DecisionPending,
		requestedItems:      requested,
		pendingRemovedItems: removed,
	}

	o.modificationRequests = append(o.modificationRequests, req)
	o.updatedAt = time.Now()
	o.record(NewModificationRequestedEvent(o.id, req.id, req.requestSummary))
	return req, nil
}

// buildRequestSummary renders a human-readable diff description, e.g.
// "Apple: 2 → 3; added Cherry ×1; removed Banana ×1".
func buildRequestSummary(requested []RequestedItem, removed []RemovedItem) string {
	var parts []string
	for _, it := range requested {
		switch it.changeType {
		case ChangeQuantityChanged:
			parts = append(parts, fmt.Sprintf("%s: %d → %d", it.productName, *it.originalQuantity, it.quantity))
		case ChangeAdded:
			parts = append(parts, fmt.Sprintf("added %s ×%d", it.productName, it.quantity))
		}
	}
	for _, it := range removed {
		parts = append(parts, fmt.Sprintf("removed %s ×%d", it.productName, it.originalQuantity))
	}
	if len(parts) == 0 {
		return "no changes requested"
	}
	return strings.Join(parts, "; ")
}

// ResolveModificationRequest resolves a request in whole or one line at
// a time. Accepted effects are applied to the live order immediately,
// so a partially-resolved request is partially applied and observable.
// Once every line is terminal the request moves to the processed list.
func (o *Order) ResolveModificationRequest(requestID string, scope ResolutionScope, decision Decision, processedBy string) error {
	if decision != DecisionAccepted && decision != DecisionDenied {
		return NewInvalidDecisionError(decision)
	}

	req := o.findPendingRequest(requestID)
	if req == nil {
		for _, p := range o.processedModificationRequests {
			if p.id == requestID {
				return NewRequestAlreadyResolvedError(requestID)
			}
		}
		return NewRequestNotFoundError(requestID)
	}

	now := time.Now()
	mutated := false

	if scope.IsWhole() {
		for i := range req.requestedItems {
			if req.requestedItems[i].status != DecisionPending {
				continue
			}
			req.requestedItems[i].status = decision
			if decision == DecisionAccepted && o.applyRequestedItem(req.requestedItems[i]) {
				mutated = true
			}
		}
		for _, rem := range req.pendingRemovedItems {
			req.processedRemovedItems = append(req.processedRemovedItems, ProcessedRemovedItem{
				item:          rem,
				status:        decision,
				processedDate: now,
				processedBy:   processedBy,
			})
			if decision == DecisionAccepted {
				o.removeItem(rem.productID)
				mutated = true
			}
		}
		req.pendingRemovedItems = nil
	} else {
		productID := scope.ProductID()
		resolved := false

		for i := range req.requestedItems {
			if req.requestedItems[i].productID != productID || req.requestedItems[i].status != DecisionPending {
				continue
			}
			req.requestedItems[i].status = decision
			if decision == DecisionAccepted && o.applyRequestedItem(req.requestedItems[i]) {
				mutated = true
			}
			resolved = true
			break
		}

		if !resolved {
			for i, rem := range req.pendingRemovedItems {
				if rem.productID != productID {
					continue
				}
				req.processedRemovedItems = append(req.processedRemovedItems, ProcessedRemovedItem{
					item:          rem,
					status:        decision,
					processedDate: now,
					processedBy:   processedBy,
				})
				req.pendingRemovedItems = append(req.pendingRemovedItems[:i], req.pendingRemovedItems[i+1:]...)
				if decision == DecisionAccepted {
					o.removeItem(rem.productID)
					mutated = true
				}
				resolved = true
				break
			}
		}

		if !resolved {
			return NewItemNotFoundError(requestID, productID)
		}
	}

	if mutated {
		if err := o.recomputeTotal(); err != nil {
			return err
		}
		o.markModified(req.requestSummary, now)
	}

	if req.allResolved() {
		o.finalizeRequest(req, now, processedBy)
	}

	o.updatedAt = time.Now()
	return nil
}

// applyRequestedItem applies one accepted line to the live item list.
// Returns whether the order actually changed.
func (o *Order) applyRequestedItem(it RequestedItem) bool {
	switch it.changeType {
	case ChangeAdded, ChangeQuantityChanged:
		o.upsertItem(it.productID, it.productName, it.uom, it.quantity, it.unitPrice)
		return true
	default:
		// unchanged lines are bookkeeping only
		return false
	}
}

// finalizeRequest computes the aggregate status, stamps processing
// metadata and moves the request from the unresolved to the processed
// list. A request is moved, never duplicated or dropped.
func (o *Order) finalizeRequest(req *ModificationRequest, now time.Time, processedBy string) {
	req.status = req.aggregateStatus()
	req.processedDate = &now
	req.processedBy = processedBy

	for i, r := range o.modificationRequests {
		if r.id == req.id {
			o.modificationRequests = append(o.modificationRequests[:i], o.modificationRequests[i+1:]...)
			break
		}
	}
	o.processedModificationRequests = append(o.processedModificationRequests, req)
	o.record(NewModificationResolvedEvent(o.id, req.id, string(req.status)))
}

func (o *Order) findPendingRequest(requestID string) *ModificationRequest {
	for _, r := range o.modificationRequests {
		if r.id == requestID {
			return r
		}
	}
	return nil
}
