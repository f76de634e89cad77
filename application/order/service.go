/*
Package order orchestrates the order lifecycle use cases: checkout,
shipping-date selection, biller assignment, the billing task loop,
fulfillment and modification-request processing.

The application layer validates nothing business-level itself: domain
rules live in the aggregate and the billing services, this layer wires
them to the repository and reports outcomes.
*/
package order

import (
	"context"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/billing"
	"github.com/kchelvan55/customer-admin-app-sub000/domain/order"
	"github.com/kchelvan55/customer-admin-app-sub000/domain/shared"
	"github.com/kchelvan55/customer-admin-app-sub000/pkg/logger"

	"go.uber.org/zap"
)

// QueueCache caches the sorted billing queue read model. Implementations
// must be safe for concurrent use; a nil cache disables caching.
type QueueCache interface {
	GetQueue(ctx context.Context) ([]*OrderResponse, bool)
	SetQueue(ctx context.Context, queue []*OrderResponse)
	Invalidate(ctx context.Context)
}

// ApplicationService coordinates order use cases over the repository,
// the assignment arbiter and the billing domain service.
type ApplicationService struct {
	repo       order.Repository
	arbiter    *billing.Arbiter
	billingSvc *billing.Service
	queueCache QueueCache
}

// NewApplicationService creates the order application service.
// queueCache may be nil.
func NewApplicationService(
	repo order.Repository,
	arbiter *billing.Arbiter,
	billingSvc *billing.Service,
	queueCache QueueCache,
) *ApplicationService {
	return &ApplicationService{
		repo:       repo,
		arbiter:    arbiter,
		billingSvc: billingSvc,
		queueCache: queueCache,
	}
}

// CreateOrder handles checkout. An invoice date in the request makes
// this an advance order.
func (s *ApplicationService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	requests := make([]order.ItemRequest, len(req.Items))
	for i, item := range req.Items {
		requests[i] = order.ItemRequest{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UOM:         item.UOM,
			Quantity:    item.Quantity,
			UnitPrice:   *shared.NewMoney(item.UnitPrice, item.Currency),
		}
	}

	var o *order.Order
	var err error
	if req.InvoiceDate != nil {
		o, err = order.NewAdvanceOrder(order.ShopID(req.ShopID), requests, *req.InvoiceDate)
	} else {
		o, err = order.NewOrder(order.ShopID(req.ShopID), requests)
	}
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, o); err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// GetOrder returns one order by id.
func (s *ApplicationService) GetOrder(ctx context.Context, orderID string) (*OrderResponse, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// GetShopOrders returns all orders of a shop.
func (s *ApplicationService) GetShopOrders(ctx context.Context, shopID string) ([]*OrderResponse, error) {
	orders, err := s.repo.FindByShopID(ctx, order.ShopID(shopID))
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// GetBillingQueue returns the assignable queue in working order,
// served from the cache when warm.
func (s *ApplicationService) GetBillingQueue(ctx context.Context) ([]*OrderResponse, error) {
	if s.queueCache != nil {
		if queue, ok := s.queueCache.GetQueue(ctx); ok {
			return queue, nil
		}
	}

	queue, err := s.arbiter.SortedQueue(ctx)
	if err != nil {
		return nil, err
	}
	responses := ToOrderResponses(queue)

	if s.queueCache != nil {
		s.queueCache.SetQueue(ctx, responses)
	}
	return responses, nil
}

// SetShippingDate sets the shipping date, or clears it when the request
// carries a null date.
func (s *ApplicationService) SetShippingDate(ctx context.Context, orderID string, req SetShippingDateRequest) (*OrderResponse, error) {
	return s.mutate(ctx, orderID, func(o *order.Order) error {
		if req.Date == nil {
			return o.ClearShippingDate()
		}
		return o.SetShippingDate(*req.Date)
	})
}

// AssignBillers runs the two-phase bulk assignment through the arbiter.
func (s *ApplicationService) AssignBillers(ctx context.Context, req AssignBillersRequest) (*AssignBillersResponse, error) {
	result, conflict, err := s.arbiter.Assign(ctx, req.OrderIDs, order.BillerID(req.Biller), req.Override)
	if err != nil {
		return nil, err
	}
	s.invalidateQueue(ctx)

	if conflict != nil {
		return &AssignBillersResponse{
			Conflict: &PriorityConflictResponse{
				MostUrgentOrder:   ToOrderResponse(conflict.MostUrgentOrder),
				RequestedOrderIDs: conflict.RequestedOrderIDs,
				Biller:            string(conflict.Biller),
			},
		}, nil
	}

	resp := &AssignmentResultResponse{
		Assigned: result.Assigned,
		Rejected: make([]RejectedOrderResponse, 0, len(result.Rejected)),
	}
	for _, r := range result.Rejected {
		resp.Rejected = append(resp.Rejected, RejectedOrderResponse{OrderID: r.OrderID, Reason: r.Reason})
	}
	logger.Info("billers assigned",
		zap.String("biller", req.Biller),
		zap.Int("assigned", len(resp.Assigned)),
		zap.Int("rejected", len(resp.Rejected)))
	return &AssignBillersResponse{Result: resp}, nil
}

// ClearBiller sends the order back to the biller-selection queue.
func (s *ApplicationService) ClearBiller(ctx context.Context, orderID string) (*OrderResponse, error) {
	return s.mutate(ctx, orderID, func(o *order.Order) error {
		return o.ClearBiller()
	})
}

// StartBilling begins the billing task after checking the biller's
// slot is free.
func (s *ApplicationService) StartBilling(ctx context.Context, orderID string) (*OrderResponse, error) {
	return s.mutate(ctx, orderID, func(o *order.Order) error {
		if err := s.billingSvc.CheckBillingSlot(ctx, o); err != nil {
			return err
		}
		return o.StartBilling()
	})
}

// CompleteBilling finishes the billing task.
func (s *ApplicationService) CompleteBilling(ctx context.Context, orderID string) (*OrderResponse, error) {
	return s.mutate(ctx, orderID, func(o *order.Order) error {
		return o.CompleteBilling(s.arbiter.Now())
	})
}

// CancelBilling abandons the in-progress billing task.
func (s *ApplicationService) CancelBilling(ctx context.Context, orderID string) (*OrderResponse, error) {
	return s.mutate(ctx, orderID, func(o *order.Order) error {
		return o.CancelBilling()
	})
}

// ShipOrder marks the order shipped.
func (s *ApplicationService) ShipOrder(ctx context.Context, orderID string, req ShipOrderRequest) (*OrderResponse, error) {
	return s.mutate(ctx, orderID, func(o *order.Order) error {
		return o.MarkShipped(req.PackedBy)
	})
}

// DeliverOrder marks the order delivered.
func (s *ApplicationService) DeliverOrder(ctx context.Context, orderID string, req DeliverOrderRequest) (*OrderResponse, error) {
	return s.mutate(ctx, orderID, func(o *order.Order) error {
		return o.MarkDelivered(req.DeliveredBy)
	})
}

// CancelOrder cancels the order.
func (s *ApplicationService) CancelOrder(ctx context.Context, orderID string, req CancelOrderRequest) (*OrderResponse, error) {
	return s.mutate(ctx, orderID, func(o *order.Order) error {
		return o.Cancel(req.Reason)
	})
}

// CreateModificationRequest diffs the desired item list against the
// order and records the result as a pending request.
func (s *ApplicationService) CreateModificationRequest(ctx context.Context, orderID string, req CreateModificationRequest) (*OrderResponse, error) {
	desired := make([]order.DesiredItem, len(req.Items))
	for i, item := range req.Items {
		desired[i] = order.DesiredItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UOM:         item.UOM,
			Quantity:    item.Quantity,
			UnitPrice:   *shared.NewMoney(item.UnitPrice, item.Currency),
		}
	}

	return s.mutate(ctx, orderID, func(o *order.Order) error {
		_, err := o.CreateModificationRequest(desired)
		return err
	})
}

// ResolveModificationRequest resolves a request in whole, or one line
// when the request names a product.
func (s *ApplicationService) ResolveModificationRequest(ctx context.Context, orderID, requestID string, req ResolveModificationRequest) (*OrderResponse, error) {
	scope := order.WholeRequest()
	if req.ProductID != "" {
		scope = order.SingleItem(req.ProductID)
	}

	return s.mutate(ctx, orderID, func(o *order.Order) error {
		return o.ResolveModificationRequest(requestID, scope, order.Decision(req.Decision), req.ProcessedBy)
	})
}

// CheckCredit reports whether the order fits within the shop's credit
// limit.
func (s *ApplicationService) CheckCredit(ctx context.Context, orderID string, req CreditCheckRequest) (*CreditCheckResponse, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	terms := order.PaymentTerms{
		CreditLimit:        *shared.NewMoney(req.CreditLimit, req.Currency),
		OutstandingBalance: *shared.NewMoney(req.OutstandingBalance, req.Currency),
		TermDays:           req.TermDays,
	}
	exceeded, err := order.ExceedsCreditLimit(o, terms)
	if err != nil {
		return nil, err
	}

	exposure, err := terms.OutstandingBalance.Add(o.TotalPrice())
	if err != nil {
		return nil, err
	}
	return &CreditCheckResponse{
		Allowed:  !exceeded,
		Exposure: exposure.Amount(),
		Currency: exposure.Currency(),
	}, nil
}

// mutate loads an order, applies fn and saves on success.
func (s *ApplicationService) mutate(ctx context.Context, orderID string, fn func(o *order.Order) error) (*OrderResponse, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := fn(o); err != nil {
		return nil, err
	}
	if err := s.save(ctx, o); err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// save persists the aggregate, drains its events into the log and
// drops the stale queue cache.
func (s *ApplicationService) save(ctx context.Context, o *order.Order) error {
	if err := s.repo.Save(ctx, o); err != nil {
		return err
	}
	for _, event := range o.PullEvents() {
		logger.Info("domain event",
			zap.String("event", event.EventName()),
			zap.String("aggregate_id", event.GetAggregateID()),
			zap.Time("occurred_on", event.OccurredOn()))
	}
	s.invalidateQueue(ctx)
	return nil
}

func (s *ApplicationService) invalidateQueue(ctx context.Context) {
	if s.queueCache != nil {
		s.queueCache.Invalidate(ctx)
	}
}
