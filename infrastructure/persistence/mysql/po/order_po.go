// Package po holds GORM persistence objects. POs carry no business
// logic and define no GORM associations; the repository manages child
// rows by hand to keep the aggregate boundary explicit.
package po

import (
	"time"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/order"
	"github.com/kchelvan55/customer-admin-app-sub000/domain/shared"
)

// OrderPO is the persisted order row.
type OrderPO struct {
	ID            string    `gorm:"primaryKey;size:64"`
	ShopID        string    `gorm:"size:64;index;not null"`
	Status        string    `gorm:"size:64;not null;index"`
	TotalAmount   int64     `gorm:"not null"`
	TotalCurrency string    `gorm:"size:3;not null"`
	OrderDate     time.Time `gorm:"not null"`
	InvoiceDate   time.Time `gorm:"not null"`

	ShippingDate      *time.Time `gorm:"index"`
	BilledInInsmartBy *string    `gorm:"size:64;index"`
	PackedBy          string     `gorm:"size:64"`
	DeliveredBy       string     `gorm:"size:64"`
	BilledDate        *time.Time

	IsModified            bool
	OriginalTotalAmount   *int64
	OriginalTotalCurrency *string `gorm:"size:3"`
	ModificationDate      *time.Time
	ModificationSummary   string `gorm:"size:1024"`

	Version   int       `gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (OrderPO) TableName() string {
	return "orders"
}

// OrderItemPO is one persisted order line.
type OrderItemPO struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	OrderID      string `gorm:"size:64;index;not null"`
	ProductID    string `gorm:"size:64;not null"`
	ProductName  string `gorm:"size:255;not null"`
	UOM          string `gorm:"size:32"`
	Quantity     int    `gorm:"not null"`
	UnitPrice    int64  `gorm:"not null"`
	UnitCurrency string `gorm:"size:3;not null"`
}

func (OrderItemPO) TableName() string {
	return "order_items"
}

// ModificationRequestPO is one persisted modification request.
// Resolved is true once the request has moved to the processed list.
type ModificationRequestPO struct {
	ID                string    `gorm:"primaryKey;size:64"`
	OrderID           string    `gorm:"size:64;index;not null"`
	RequestDate       time.Time `gorm:"not null"`
	RequestedAmount   int64     `gorm:"not null"`
	RequestedCurrency string    `gorm:"size:3;not null"`
	RequestSummary    string    `gorm:"size:1024"`
	Status            string    `gorm:"size:16;not null"`
	Resolved          bool      `gorm:"index"`
	ProcessedDate     *time.Time
	ProcessedBy       string `gorm:"size:64"`
}

func (ModificationRequestPO) TableName() string {
	return "order_modification_requests"
}

// RequestedItemPO is one persisted requested line of a request.
type RequestedItemPO struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	RequestID        string `gorm:"size:64;index;not null"`
	ProductID        string `gorm:"size:64;not null"`
	ProductName      string `gorm:"size:255;not null"`
	UOM              string `gorm:"size:32"`
	Quantity         int    `gorm:"not null"`
	UnitPrice        int64  `gorm:"not null"`
	UnitCurrency     string `gorm:"size:3;not null"`
	ChangeType       string `gorm:"size:24;not null"`
	OriginalQuantity *int
	Status           string `gorm:"size:16;not null"`
}

func (RequestedItemPO) TableName() string {
	return "order_request_items"
}

// RemovedItemPO is one persisted removal snapshot. Status "pending"
// marks an unresolved removal; any other status carries the processing
// stamps.
type RemovedItemPO struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	RequestID        string `gorm:"size:64;index;not null"`
	ProductID        string `gorm:"size:64;not null"`
	ProductName      string `gorm:"size:255;not null"`
	UOM              string `gorm:"size:32"`
	OriginalQuantity int    `gorm:"not null"`
	UnitPrice        int64  `gorm:"not null"`
	UnitCurrency     string `gorm:"size:3;not null"`
	Status           string `gorm:"size:16;not null"`
	ProcessedDate    *time.Time
	ProcessedBy      string `gorm:"size:64"`
}

func (RemovedItemPO) TableName() string {
	return "order_removed_items"
}

// OrderRecord bundles the order row with all its child rows.
type OrderRecord struct {
	Order          OrderPO
	Items          []OrderItemPO
	Requests       []ModificationRequestPO
	RequestedItems []RequestedItemPO
	RemovedItems   []RemovedItemPO
}

// FromOrderDomain flattens the aggregate into persistence rows.
func FromOrderDomain(o *order.Order) *OrderRecord {
	rec := &OrderRecord{
		Order: OrderPO{
			ID:            o.ID(),
			ShopID:        string(o.ShopID()),
			Status:        string(o.Status()),
			TotalAmount:   o.TotalPrice().Amount(),
			TotalCurrency: o.TotalPrice().Currency(),
			OrderDate:     o.OrderDate(),
			InvoiceDate:   o.InvoiceDate(),

			ShippingDate: o.ShippingDate(),
			PackedBy:     o.PackedBy(),
			DeliveredBy:  o.DeliveredBy(),
			BilledDate:   o.BilledDate(),

			IsModified:          o.IsModified(),
			ModificationDate:    o.ModificationDate(),
			ModificationSummary: o.ModificationSummary(),

			Version:   o.Version(),
			CreatedAt: o.CreatedAt(),
			UpdatedAt: o.UpdatedAt(),
		},
	}

	if biller := o.BilledInInsmartBy(); biller != nil {
		b := string(*biller)
		rec.Order.BilledInInsmartBy = &b
	}
	if original := o.OriginalTotalPrice(); original != nil {
		amount := original.Amount()
		currency := original.Currency()
		rec.Order.OriginalTotalAmount = &amount
		rec.Order.OriginalTotalCurrency = &currency
	}

	for _, item := range o.Items() {
		rec.Items = append(rec.Items, OrderItemPO{
			OrderID:      o.ID(),
			ProductID:    item.ProductID(),
			ProductName:  item.ProductName(),
			UOM:          item.UOM(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice().Amount(),
			UnitCurrency: item.UnitPrice().Currency(),
		})
	}

	for _, req := range o.ModificationRequests() {
		rec.appendRequest(req, false)
	}
	for _, req := range o.ProcessedModificationRequests() {
		rec.appendRequest(req, true)
	}

	return rec
}

func (rec *OrderRecord) appendRequest(req *order.ModificationRequest, resolved bool) {
	rec.Requests = append(rec.Requests, ModificationRequestPO{
		ID:                req.ID(),
		OrderID:           rec.Order.ID,
		RequestDate:       req.RequestDate(),
		RequestedAmount:   req.RequestedTotalPrice().Amount(),
		RequestedCurrency: req.RequestedTotalPrice().Currency(),
		RequestSummary:    req.RequestSummary(),
		Status:            string(req.Status()),
		Resolved:          resolved,
		ProcessedDate:     req.ProcessedDate(),
		ProcessedBy:       req.ProcessedBy(),
	})

	for _, it := range req.RequestedItems() {
		rec.RequestedItems = append(rec.RequestedItems, RequestedItemPO{
			RequestID:        req.ID(),
			ProductID:        it.ProductID(),
			ProductName:      it.ProductName(),
			UOM:              it.UOM(),
			Quantity:         it.Quantity(),
			UnitPrice:        it.UnitPrice().Amount(),
			UnitCurrency:     it.UnitPrice().Currency(),
			ChangeType:       string(it.ChangeType()),
			OriginalQuantity: it.OriginalQuantity(),
			Status:           string(it.Status()),
		})
	}
	for _, it := range req.PendingRemovedItems() {
		rec.RemovedItems = append(rec.RemovedItems, RemovedItemPO{
			RequestID:        req.ID(),
			ProductID:        it.ProductID(),
			ProductName:      it.ProductName(),
			UOM:              it.UOM(),
			OriginalQuantity: it.OriginalQuantity(),
			UnitPrice:        it.UnitPrice().Amount(),
			UnitCurrency:     it.UnitPrice().Currency(),
			Status:           string(order.DecisionPending),
		})
	}
	for _, it := range req.ProcessedRemovedItems() {
		date := it.ProcessedDate()
		rec.RemovedItems = append(rec.RemovedItems, RemovedItemPO{
			RequestID:        req.ID(),
			ProductID:        it.Item().ProductID(),
			ProductName:      it.Item().ProductName(),
			UOM:              it.Item().UOM(),
			OriginalQuantity: it.Item().OriginalQuantity(),
			UnitPrice:        it.Item().UnitPrice().Amount(),
			UnitCurrency:     it.Item().UnitPrice().Currency(),
			Status:           string(it.Status()),
			ProcessedDate:    &date,
			ProcessedBy:      it.ProcessedBy(),
		})
	}
}

// ToDomain rebuilds the aggregate from persistence rows.
func (rec *OrderRecord) ToDomain() *order.Order {
	items := make([]order.OrderItem, len(rec.Items))
	for i, itemPO := range rec.Items {
		items[i] = order.RebuildItemFromDTO(order.ItemReconstructionDTO{
			ProductID:   itemPO.ProductID,
			ProductName: itemPO.ProductName,
			UOM:         itemPO.UOM,
			Quantity:    itemPO.Quantity,
			UnitPrice:   *shared.NewMoney(itemPO.UnitPrice, itemPO.UnitCurrency),
		})
	}

	requestedByID := make(map[string][]order.RequestedItemReconstructionDTO)
	for _, it := range rec.RequestedItems {
		requestedByID[it.RequestID] = append(requestedByID[it.RequestID], order.RequestedItemReconstructionDTO{
			ProductID:        it.ProductID,
			ProductName:      it.ProductName,
			UOM:              it.UOM,
			Quantity:         it.Quantity,
			UnitPrice:        *shared.NewMoney(it.UnitPrice, it.UnitCurrency),
			ChangeType:       order.ChangeType(it.ChangeType),
			OriginalQuantity: it.OriginalQuantity,
			Status:           order.Decision(it.Status),
		})
	}

	pendingByID := make(map[string][]order.RemovedItemReconstructionDTO)
	processedByID := make(map[string][]order.ProcessedRemovedItemReconstructionDTO)
	for _, it := range rec.RemovedItems {
		base := order.RemovedItemReconstructionDTO{
			ProductID:        it.ProductID,
			ProductName:      it.ProductName,
			UOM:              it.UOM,
			OriginalQuantity: it.OriginalQuantity,
			UnitPrice:        *shared.NewMoney(it.UnitPrice, it.UnitCurrency),
		}
		if order.Decision(it.Status) == order.DecisionPending {
			pendingByID[it.RequestID] = append(pendingByID[it.RequestID], base)
			continue
		}
		var processedDate time.Time
		if it.ProcessedDate != nil {
			processedDate = *it.ProcessedDate
		}
		processedByID[it.RequestID] = append(processedByID[it.RequestID], order.ProcessedRemovedItemReconstructionDTO{
			RemovedItemReconstructionDTO: base,
			Status:                       order.Decision(it.Status),
			ProcessedDate:                processedDate,
			ProcessedBy:                  it.ProcessedBy,
		})
	}

	var pending, processed []*order.ModificationRequest
	for _, reqPO := range rec.Requests {
		req := order.RebuildRequestFromDTO(order.RequestReconstructionDTO{
			ID:                    reqPO.ID,
			RequestDate:           reqPO.RequestDate,
			RequestedTotalPrice:   *shared.NewMoney(reqPO.RequestedAmount, reqPO.RequestedCurrency),
			RequestSummary:        reqPO.RequestSummary,
			Status:                order.Decision(reqPO.Status),
			RequestedItems:        requestedByID[reqPO.ID],
			PendingRemovedItems:   pendingByID[reqPO.ID],
			ProcessedRemovedItems: processedByID[reqPO.ID],
			ProcessedDate:         reqPO.ProcessedDate,
			ProcessedBy:           reqPO.ProcessedBy,
		})
		if reqPO.Resolved {
			processed = append(processed, req)
		} else {
			pending = append(pending, req)
		}
	}

	dto := order.ReconstructionDTO{
		ID:          rec.Order.ID,
		ShopID:      order.ShopID(rec.Order.ShopID),
		Items:       items,
		TotalPrice:  *shared.NewMoney(rec.Order.TotalAmount, rec.Order.TotalCurrency),
		Status:      order.Status(rec.Order.Status),
		OrderDate:   rec.Order.OrderDate,
		InvoiceDate: rec.Order.InvoiceDate,

		ShippingDate: rec.Order.ShippingDate,
		PackedBy:     rec.Order.PackedBy,
		DeliveredBy:  rec.Order.DeliveredBy,
		BilledDate:   rec.Order.BilledDate,

		IsModified:          rec.Order.IsModified,
		ModificationDate:    rec.Order.ModificationDate,
		ModificationSummary: rec.Order.ModificationSummary,

		ModificationRequests:          pending,
		ProcessedModificationRequests: processed,

		Version:   rec.Order.Version,
		CreatedAt: rec.Order.CreatedAt,
		UpdatedAt: rec.Order.UpdatedAt,
	}

	if rec.Order.BilledInInsmartBy != nil {
		b := order.BillerID(*rec.Order.BilledInInsmartBy)
		dto.BilledInInsmartBy = &b
	}
	if rec.Order.OriginalTotalAmount != nil && rec.Order.OriginalTotalCurrency != nil {
		m := shared.NewMoney(*rec.Order.OriginalTotalAmount, *rec.Order.OriginalTotalCurrency)
		dto.OriginalTotalPrice = m
	}

	return order.RebuildFromDTO(dto)
}
