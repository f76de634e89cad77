// Package memory provides an in-memory order repository for local
// development and tests. Orders are deep-copied on every read and
// write, so callers can never mutate stored state without Save.
package memory

import (
	"context"
	"sync"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/order"

	"github.com/google/uuid"
)

type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]order.ReconstructionDTO
	ids    []string // insertion order, for stable listings
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]order.ReconstructionDTO)}
}

func (r *OrderRepository) NextIdentity() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Save persists the aggregate, last write wins.
func (r *OrderRepository) Save(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID()]; !ok {
		r.ids = append(r.ids, o.ID())
	}
	r.orders[o.ID()] = snapshotOrder(o)
	o.IncrementVersionForSave()
	return nil
}

func (r *OrderRepository) FindByID(_ context.Context, id string) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dto, ok := r.orders[id]
	if !ok {
		return nil, order.NewOrderNotFoundError(id)
	}
	return rebuild(dto), nil
}

func (r *OrderRepository) FindByShopID(_ context.Context, shopID order.ShopID) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*order.Order
	for _, id := range r.ids {
		if dto := r.orders[id]; dto.ShopID == shopID {
			result = append(result, rebuild(dto))
		}
	}
	return result, nil
}

// FindAssignable returns orders waiting for a biller: shipping date
// chosen, no biller assigned.
func (r *OrderRepository) FindAssignable(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*order.Order
	for _, id := range r.ids {
		dto := r.orders[id]
		if dto.Status == order.StatusToPickBiller && dto.BilledInInsmartBy == nil {
			result = append(result, rebuild(dto))
		}
	}
	return result, nil
}

func (r *OrderRepository) FindBillingInProgressByBiller(_ context.Context, biller order.BillerID) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.ids {
		dto := r.orders[id]
		if dto.Status == order.StatusBillingInProgress &&
			dto.BilledInInsmartBy != nil && *dto.BilledInInsmartBy == biller {
			return rebuild(dto), nil
		}
	}
	return nil, nil
}

// rebuild materializes a fresh aggregate from a stored snapshot. The
// snapshot's nested slices are copied so the returned aggregate shares
// nothing with the store.
func rebuild(dto order.ReconstructionDTO) *order.Order {
	out := dto

	out.Items = make([]order.OrderItem, len(dto.Items))
	copy(out.Items, dto.Items)

	out.ModificationRequests = copyRequests(dto.ModificationRequests)
	out.ProcessedModificationRequests = copyRequests(dto.ProcessedModificationRequests)

	if dto.ShippingDate != nil {
		d := *dto.ShippingDate
		out.ShippingDate = &d
	}
	if dto.BilledInInsmartBy != nil {
		b := *dto.BilledInInsmartBy
		out.BilledInInsmartBy = &b
	}
	if dto.BilledDate != nil {
		d := *dto.BilledDate
		out.BilledDate = &d
	}
	if dto.OriginalTotalPrice != nil {
		m := *dto.OriginalTotalPrice
		out.OriginalTotalPrice = &m
	}
	if dto.ModificationDate != nil {
		d := *dto.ModificationDate
		out.ModificationDate = &d
	}

	return order.RebuildFromDTO(out)
}

func copyRequests(requests []*order.ModificationRequest) []*order.ModificationRequest {
	if requests == nil {
		return nil
	}
	out := make([]*order.ModificationRequest, len(requests))
	for i, req := range requests {
		out[i] = order.RebuildRequestFromDTO(snapshotRequest(req))
	}
	return out
}

// snapshotOrder captures the aggregate state through its accessors.
func snapshotOrder(o *order.Order) order.ReconstructionDTO {
	return order.ReconstructionDTO{
		ID:          o.ID(),
		ShopID:      o.ShopID(),
		Items:       o.Items(),
		TotalPrice:  o.TotalPrice(),
		Status:      o.Status(),
		OrderDate:   o.OrderDate(),
		InvoiceDate: o.InvoiceDate(),

		ShippingDate:      o.ShippingDate(),
		BilledInInsmartBy: o.BilledInInsmartBy(),
		PackedBy:          o.PackedBy(),
		DeliveredBy:       o.DeliveredBy(),
		BilledDate:        o.BilledDate(),

		IsModified:          o.IsModified(),
		OriginalTotalPrice:  o.OriginalTotalPrice(),
		ModificationDate:    o.ModificationDate(),
		ModificationSummary: o.ModificationSummary(),

		ModificationRequests:          copyRequests(o.ModificationRequests()),
		ProcessedModificationRequests: copyRequests(o.ProcessedModificationRequests()),

		Version:   o.Version(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func snapshotRequest(r *order.ModificationRequest) order.RequestReconstructionDTO {
	dto := order.RequestReconstructionDTO{
		ID:                  r.ID(),
		RequestDate:         r.RequestDate(),
		RequestedTotalPrice: r.RequestedTotalPrice(),
		RequestSummary:      r.RequestSummary(),
		Status:              r.Status(),
		ProcessedDate:       r.ProcessedDate(),
		ProcessedBy:         r.ProcessedBy(),
	}

	for _, it := range r.RequestedItems() {
		dto.RequestedItems = append(dto.RequestedItems, order.RequestedItemReconstructionDTO{
			ProductID:        it.ProductID(),
			ProductName:      it.ProductName(),
			UOM:              it.UOM(),
			Quantity:         it.Quantity(),
			UnitPrice:        it.UnitPrice(),
			ChangeType:       it.ChangeType(),
			OriginalQuantity: it.OriginalQuantity(),
			Status:           it.Status(),
		})
	}
	for _, it := range r.PendingRemovedItems() {
		dto.PendingRemovedItems = append(dto.PendingRemovedItems, removedItemDTO(it))
	}
	for _, it := range r.ProcessedRemovedItems() {
		dto.ProcessedRemovedItems = append(dto.ProcessedRemovedItems, order.ProcessedRemovedItemReconstructionDTO{
			RemovedItemReconstructionDTO: removedItemDTO(it.Item()),
			Status:                       it.Status(),
			ProcessedDate:                it.ProcessedDate(),
			ProcessedBy:                  it.ProcessedBy(),
		})
	}
	return dto
}

func removedItemDTO(it order.RemovedItem) order.RemovedItemReconstructionDTO {
	return order.RemovedItemReconstructionDTO{
		ProductID:        it.ProductID(),
		ProductName:      it.ProductName(),
		UOM:              it.UOM(),
		OriginalQuantity: it.OriginalQuantity(),
		UnitPrice:        it.UnitPrice(),
	}
}

var _ order.Repository = (*OrderRepository)(nil)
