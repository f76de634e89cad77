package order

import (
	"github.com/kchelvan55/customer-admin-app-sub000/domain/order"
	"github.com/kchelvan55/customer-admin-app-sub000/domain/shared"
)

func toMoneyResponse(m shared.Money) MoneyResponse {
	return MoneyResponse{Amount: m.Amount(), Currency: m.Currency()}
}

func toItemResponse(item order.OrderItem) OrderItemResponse {
	resp := OrderItemResponse{
		ProductID:   item.ProductID(),
		ProductName: item.ProductName(),
		UOM:         item.UOM(),
		Quantity:    item.Quantity(),
		UnitPrice:   toMoneyResponse(item.UnitPrice()),
	}
	if subtotal, err := item.Subtotal(); err == nil {
		resp.Subtotal = toMoneyResponse(*subtotal)
	}
	return resp
}

func toRemovedItemResponse(it order.RemovedItem) RemovedItemResponse {
	return RemovedItemResponse{
		ProductID:        it.ProductID(),
		ProductName:      it.ProductName(),
		UOM:              it.UOM(),
		OriginalQuantity: it.OriginalQuantity(),
		UnitPrice:        toMoneyResponse(it.UnitPrice()),
	}
}

func toRequestResponse(req *order.ModificationRequest) ModificationRequestResponse {
	resp := ModificationRequestResponse{
		ID:                  req.ID(),
		RequestDate:         req.RequestDate(),
		RequestedTotalPrice: toMoneyResponse(req.RequestedTotalPrice()),
		RequestSummary:      req.RequestSummary(),
		Status:              string(req.Status()),
		ProcessedDate:       req.ProcessedDate(),
		ProcessedBy:         req.ProcessedBy(),
	}

	for _, it := range req.RequestedItems() {
		resp.RequestedItems = append(resp.RequestedItems, RequestedItemResponse{
			ProductID:        it.ProductID(),
			ProductName:      it.ProductName(),
			UOM:              it.UOM(),
			Quantity:         it.Quantity(),
			UnitPrice:        toMoneyResponse(it.UnitPrice()),
			ChangeType:       string(it.ChangeType()),
			OriginalQuantity: it.OriginalQuantity(),
			Status:           string(it.Status()),
		})
	}
	for _, it := range req.PendingRemovedItems() {
		resp.PendingRemovedItems = append(resp.PendingRemovedItems, toRemovedItemResponse(it))
	}
	for _, it := range req.ProcessedRemovedItems() {
		resp.ProcessedRemovedItems = append(resp.ProcessedRemovedItems, ProcessedRemovedItemResponse{
			Item:          toRemovedItemResponse(it.Item()),
			Status:        string(it.Status()),
			ProcessedDate: it.ProcessedDate(),
			ProcessedBy:   it.ProcessedBy(),
		})
	}
	return resp
}

// ToOrderResponse converts the aggregate to its full read model.
func ToOrderResponse(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, toItemResponse(item))
	}

	resp := &OrderResponse{
		ID:                  o.ID(),
		ShopID:              string(o.ShopID()),
		Items:               items,
		TotalPrice:          toMoneyResponse(o.TotalPrice()),
		Status:              string(o.Status()),
		OrderDate:           o.OrderDate(),
		InvoiceDate:         o.InvoiceDate(),
		ShippingDate:        o.ShippingDate(),
		PackedBy:            o.PackedBy(),
		DeliveredBy:         o.DeliveredBy(),
		BilledDate:          o.BilledDate(),
		IsModified:          o.IsModified(),
		ModificationDate:    o.ModificationDate(),
		ModificationSummary: o.ModificationSummary(),
		Version:             o.Version(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
	}

	if biller := o.BilledInInsmartBy(); biller != nil {
		b := string(*biller)
		resp.BilledInInsmartBy = &b
	}
	if original := o.OriginalTotalPrice(); original != nil {
		m := toMoneyResponse(*original)
		resp.OriginalTotalPrice = &m
	}

	resp.ModificationRequests = make([]ModificationRequestResponse, 0, len(o.ModificationRequests()))
	for _, req := range o.ModificationRequests() {
		resp.ModificationRequests = append(resp.ModificationRequests, toRequestResponse(req))
	}
	resp.ProcessedModificationRequests = make([]ModificationRequestResponse, 0, len(o.ProcessedModificationRequests()))
	for _, req := range o.ProcessedModificationRequests() {
		resp.ProcessedModificationRequests = append(resp.ProcessedModificationRequests, toRequestResponse(req))
	}
	return resp
}

// ToOrderResponses converts a slice of aggregates.
func ToOrderResponses(orders []*order.Order) []*OrderResponse {
	responses := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = ToOrderResponse(o)
	}
	return responses
}
