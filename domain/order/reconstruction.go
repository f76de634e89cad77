package order

import (
	"time"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/shared"
)

// Reconstruction DTOs - for repository layer use only.
//
// Fields of the aggregate are private, so the repository rebuilds it
// through these DTOs instead of setters or reflection. Application code
// must never call the Rebuild functions.

// ReconstructionDTO carries a full persisted order record.
type ReconstructionDTO struct {
	ID          string
	ShopID      ShopID
	Items       []OrderItem
	TotalPrice  shared.Money
	Status      Status
	OrderDate   time.Time
	InvoiceDate time.Time

	ShippingDate      *time.Time
	BilledInInsmartBy *BillerID
	PackedBy          string
	DeliveredBy       string
	BilledDate        *time.Time

	IsModified          bool
	OriginalTotalPrice  *shared.Money
	ModificationDate    *time.Time
	ModificationSummary string

	ModificationRequests          []*ModificationRequest
	ProcessedModificationRequests []*ModificationRequest

	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RebuildFromDTO reconstructs an Order aggregate root from storage.
func RebuildFromDTO(dto ReconstructionDTO) *Order {
	return &Order{
		id:          dto.ID,
		shopID:      dto.ShopID,
		items:       dto.Items,
		totalPrice:  dto.TotalPrice,
		status:      dto.Status,
		orderDate:   dto.OrderDate,
		invoiceDate: dto.InvoiceDate,

		shippingDate:      dto.ShippingDate,
		billedInInsmartBy: dto.BilledInInsmartBy,
		packedBy:          dto.PackedBy,
		deliveredBy:       dto.DeliveredBy,
		billedDate:        dto.BilledDate,

		isModified:          dto.IsModified,
		originalTotalPrice:  dto.OriginalTotalPrice,
		modificationDate:    dto.ModificationDate,
		modificationSummary: dto.ModificationSummary,

		modificationRequests:          dto.ModificationRequests,
		processedModificationRequests: dto.ProcessedModificationRequests,

		version:   dto.Version,
		createdAt: dto.CreatedAt,
		updatedAt: dto.UpdatedAt,
	}
}

// ItemReconstructionDTO carries one persisted order line.
type ItemReconstructionDTO struct {
	ProductID   string
	ProductName string
	UOM         string
	Quantity    int
	UnitPrice   shared.Money
}

// RebuildItemFromDTO reconstructs an OrderItem from storage.
func RebuildItemFromDTO(dto ItemReconstructionDTO) OrderItem {
	return OrderItem{
		productID:   dto.ProductID,
		productName: dto.ProductName,
		uom:         dto.UOM,
		quantity:    dto.Quantity,
		unitPrice:   dto.UnitPrice,
	}
}

// RequestReconstructionDTO carries one persisted modification request.
type RequestReconstructionDTO struct {
	ID                  string
	RequestDate         time.Time
	RequestedTotalPrice shared.Money
	RequestSummary      string
	Status              Decision

	RequestedItems        []RequestedItemReconstructionDTO
	PendingRemovedItems   []RemovedItemReconstructionDTO
	ProcessedRemovedItems []ProcessedRemovedItemReconstructionDTO

	ProcessedDate *time.Time
	ProcessedBy   string
}

// RequestedItemReconstructionDTO carries one persisted requested line.
type RequestedItemReconstructionDTO struct {
	ProductID        string
	ProductName      string
	UOM              string
	Quantity         int
	UnitPrice        shared.Money
	ChangeType       ChangeType
	OriginalQuantity *int
	Status           Decision
}

// RemovedItemReconstructionDTO carries one persisted removal snapshot.
type RemovedItemReconstructionDTO struct {
	ProductID        string
	ProductName      string
	UOM              string
	OriginalQuantity int
	UnitPrice        shared.Money
}

// ProcessedRemovedItemReconstructionDTO carries one resolved removal.
type ProcessedRemovedItemReconstructionDTO struct {
	RemovedItemReconstructionDTO
	Status        Decision
	ProcessedDate time.Time
	ProcessedBy   string
}

// RebuildRequestFromDTO reconstructs a ModificationRequest from storage.
func RebuildRequestFromDTO(dto RequestReconstructionDTO) *ModificationRequest {
	requested := make([]RequestedItem, len(dto.RequestedItems))
	for i, it := range dto.RequestedItems {
		requested[i] = RequestedItem{
			productID:        it.ProductID,
			productName:      it.ProductName,
			uom:              it.UOM,
			quantity:         it.Quantity,
			unitPrice:        it.UnitPrice,
			changeType:       it.ChangeType,
			originalQuantity: it.OriginalQuantity,
			status:           it.Status,
		}
	}

	pending := make([]RemovedItem, len(dto.PendingRemovedItems))
	for i, it := range dto.PendingRemovedItems {
		pending[i] = rebuildRemovedItem(it)
	}

	processed := make([]ProcessedRemovedItem, len(dto.ProcessedRemovedItems))
	for i, it := range dto.ProcessedRemovedItems {
		processed[i] = ProcessedRemovedItem{
			item:          rebuildRemovedItem(it.RemovedItemReconstructionDTO),
			status:        it.Status,
			processedDate: it.ProcessedDate,
			processedBy:   it.ProcessedBy,
		}
	}

	return &ModificationRequest{
		id:                    dto.ID,
		requestDate:           dto.RequestDate,
		requestedTotalPrice:   dto.RequestedTotalPrice,
		requestSummary:        dto.RequestSummary,
		status:                dto.Status,
		requestedItems:        requested,
		pendingRemovedItems:   pending,
		processedRemovedItems: processed,
		processedDate:         dto.ProcessedDate,
		processedBy:           dto.ProcessedBy,
	}
}

func rebuildRemovedItem(dto RemovedItemReconstructionDTO) RemovedItem {
	return RemovedItem{
		productID:        dto.ProductID,
		productName:      dto.ProductName,
		uom:              dto.UOM,
		originalQuantity: dto.OriginalQuantity,
		unitPrice:        dto.UnitPrice,
	}
}
