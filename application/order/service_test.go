package order

import (
	"context"
	"testing"
	"time"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/billing"
	"github.com/kchelvan55/customer-admin-app-sub000/domain/order"
	"github.com/kchelvan55/customer-admin-app-sub000/domain/schedule"
	"github.com/kchelvan55/customer-admin-app-sub000/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *ApplicationService {
	repo := memory.NewOrderRepository()
	resolver := schedule.NewResolver(map[string]int{"shop-a": 1, "shop-c": 3})
	return NewApplicationService(repo, billing.NewArbiter(repo, resolver), billing.NewService(repo), nil)
}

func createOrderReq(shop string) CreateOrderRequest {
	return CreateOrderRequest{
		ShopID: shop,
		Items: []OrderItemRequest{
			{ProductID: "p-1", ProductName: "Rice", UOM: "bag", Quantity: 2, UnitPrice: 2500, Currency: "SGD"},
			{ProductID: "p-2", ProductName: "Oil", UOM: "btl", Quantity: 1, UnitPrice: 800, Currency: "SGD"},
		},
	}
}

func TestCreateOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	resp, err := svc.CreateOrder(ctx, createOrderReq("shop-a"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "shop-a", resp.ShopID)
	assert.Equal(t, string(order.StatusToSelectDate), resp.Status)
	assert.Equal(t, int64(5800), resp.TotalPrice.Amount)
	assert.Equal(t, "SGD", resp.TotalPrice.Currency)

	fetched, err := svc.GetOrder(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, fetched.ID)
	assert.Len(t, fetched.Items, 2)
}

func TestCreateAdvanceOrder(t *testing.T) {
	svc := newTestService()
	invoice := time.Now().AddDate(0, 0, 7)

	req := createOrderReq("shop-a")
	req.InvoiceDate = &invoice
	resp, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.InvoiceDate.Equal(invoice))
}

func TestCreateOrderValidation(t *testing.T) {
	svc := newTestService()

	req := createOrderReq("shop-a")
	req.Items[0].Quantity = 0
	_, err := svc.CreateOrder(context.Background(), req)
	assert.ErrorIs(t, err, order.ErrInvalidQuantity)
}

func TestOrderLifecycleThroughService(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateOrder(ctx, createOrderReq("shop-a"))
	require.NoError(t, err)

	ship := time.Now().AddDate(0, 0, 1)
	resp, err := svc.SetShippingDate(ctx, created.ID, SetShippingDateRequest{Date: &ship})
	require.NoError(t, err)
	assert.Equal(t, string(order.StatusToPickBiller), resp.Status)

	assignResp, err := svc.AssignBillers(ctx, AssignBillersRequest{
		OrderIDs: []string{created.ID},
		Biller:   "biller-meena",
	})
	require.NoError(t, err)
	require.Nil(t, assignResp.Conflict)
	assert.Equal(t, []string{created.ID}, assignResp.Result.Assigned)

	resp, err = svc.StartBilling(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(order.StatusBillingInProgress), resp.Status)

	resp, err = svc.CompleteBilling(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(order.StatusBilledInInsmart), resp.Status)
	assert.NotNil(t, resp.BilledDate)

	resp, err = svc.ShipOrder(ctx, created.ID, ShipOrderRequest{PackedBy: "packer-1"})
	require.NoError(t, err)
	assert.Equal(t, string(order.StatusShipped), resp.Status)
	assert.Equal(t, "packer-1", resp.PackedBy)

	resp, err = svc.DeliverOrder(ctx, created.ID, DeliverOrderRequest{DeliveredBy: "driver-1"})
	require.NoError(t, err)
	assert.Equal(t, string(order.StatusDelivered), resp.Status)
	assert.Equal(t, "driver-1", resp.DeliveredBy)
}

func TestSetShippingDateNullClears(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateOrder(ctx, createOrderReq("shop-a"))
	require.NoError(t, err)

	ship := time.Now().AddDate(0, 0, 1)
	_, err = svc.SetShippingDate(ctx, created.ID, SetShippingDateRequest{Date: &ship})
	require.NoError(t, err)

	resp, err := svc.SetShippingDate(ctx, created.ID, SetShippingDateRequest{Date: nil})
	require.NoError(t, err)
	assert.Equal(t, string(order.StatusToSelectDate), resp.Status)
	assert.Nil(t, resp.ShippingDate)
}

func TestAssignBillersSurfacesConflict(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	ship := time.Now().AddDate(0, 0, 1)

	urgent, err := svc.CreateOrder(ctx, createOrderReq("shop-a"))
	require.NoError(t, err)
	_, err = svc.SetShippingDate(ctx, urgent.ID, SetShippingDateRequest{Date: &ship})
	require.NoError(t, err)

	lowPriority, err := svc.CreateOrder(ctx, createOrderReq("shop-c"))
	require.NoError(t, err)
	_, err = svc.SetShippingDate(ctx, lowPriority.ID, SetShippingDateRequest{Date: &ship})
	require.NoError(t, err)

	resp, err := svc.AssignBillers(ctx, AssignBillersRequest{
		OrderIDs: []string{lowPriority.ID},
		Biller:   "biller-meena",
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Result)
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, urgent.ID, resp.Conflict.MostUrgentOrder.ID)

	// Repeating with override proceeds.
	resp, err = svc.AssignBillers(ctx, AssignBillersRequest{
		OrderIDs: []string{lowPriority.ID},
		Biller:   "biller-meena",
		Override: true,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Result)
	assert.Equal(t, []string{lowPriority.ID}, resp.Result.Assigned)
}

func TestBillingQueueOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	ship := time.Now().AddDate(0, 0, 1)

	low, err := svc.CreateOrder(ctx, createOrderReq("shop-c"))
	require.NoError(t, err)
	_, err = svc.SetShippingDate(ctx, low.ID, SetShippingDateRequest{Date: &ship})
	require.NoError(t, err)

	high, err := svc.CreateOrder(ctx, createOrderReq("shop-a"))
	require.NoError(t, err)
	_, err = svc.SetShippingDate(ctx, high.ID, SetShippingDateRequest{Date: &ship})
	require.NoError(t, err)

	queue, err := svc.GetBillingQueue(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 2)
	assert.Equal(t, high.ID, queue[0].ID)
	assert.Equal(t, low.ID, queue[1].ID)
}

func TestModificationRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateOrder(ctx, createOrderReq("shop-a"))
	require.NoError(t, err)

	// Desired: Rice 2→3, Oil removed, Sugar added.
	resp, err := svc.CreateModificationRequest(ctx, created.ID, CreateModificationRequest{
		Items: []DesiredItemRequest{
			{ProductID: "p-1", ProductName: "Rice", UOM: "bag", Quantity: 3, UnitPrice: 2500, Currency: "SGD"},
			{ProductID: "p-3", ProductName: "Sugar", UOM: "kg", Quantity: 2, UnitPrice: 300, Currency: "SGD"},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.ModificationRequests, 1)
	req := resp.ModificationRequests[0]
	assert.Equal(t, string(order.DecisionPending), req.Status)
	assert.Equal(t, int64(8100), req.RequestedTotalPrice.Amount)
	require.Len(t, req.PendingRemovedItems, 1)
	assert.Equal(t, "p-2", req.PendingRemovedItems[0].ProductID)

	resolved, err := svc.ResolveModificationRequest(ctx, created.ID, req.ID, ResolveModificationRequest{
		Decision:    "accepted",
		ProcessedBy: "admin-1",
	})
	require.NoError(t, err)

	assert.Empty(t, resolved.ModificationRequests)
	require.Len(t, resolved.ProcessedModificationRequests, 1)
	assert.Equal(t, string(order.DecisionAccepted), resolved.ProcessedModificationRequests[0].Status)
	assert.Equal(t, int64(8100), resolved.TotalPrice.Amount)
	assert.True(t, resolved.IsModified)
	require.NotNil(t, resolved.OriginalTotalPrice)
	assert.Equal(t, int64(5800), resolved.OriginalTotalPrice.Amount)
}

func TestResolveSingleItem(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateOrder(ctx, createOrderReq("shop-a"))
	require.NoError(t, err)

	resp, err := svc.CreateModificationRequest(ctx, created.ID, CreateModificationRequest{
		Items: []DesiredItemRequest{
			{ProductID: "p-1", ProductName: "Rice", UOM: "bag", Quantity: 3, UnitPrice: 2500, Currency: "SGD"},
			{ProductID: "p-2", ProductName: "Oil", UOM: "btl", Quantity: 1, UnitPrice: 800, Currency: "SGD"},
		},
	})
	require.NoError(t, err)
	reqID := resp.ModificationRequests[0].ID

	// Accepting just the Rice line applies it immediately; the request
	// itself stays pending until the unchanged line is also resolved.
	resolved, err := svc.ResolveModificationRequest(ctx, created.ID, reqID, ResolveModificationRequest{
		Decision:    "accepted",
		ProductID:   "p-1",
		ProcessedBy: "admin-1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8300), resolved.TotalPrice.Amount)
	require.Len(t, resolved.ModificationRequests, 1)
}

func TestCheckCredit(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateOrder(ctx, createOrderReq("shop-a")) // total 5800
	require.NoError(t, err)

	resp, err := svc.CheckCredit(ctx, created.ID, CreditCheckRequest{
		CreditLimit:        10000,
		OutstandingBalance: 5000,
		Currency:           "SGD",
	})
	require.NoError(t, err)
	assert.False(t, resp.Allowed)
	assert.Equal(t, int64(10800), resp.Exposure)

	resp, err = svc.CheckCredit(ctx, created.ID, CreditCheckRequest{
		CreditLimit:        10000,
		OutstandingBalance: 1000,
		Currency:           "SGD",
	})
	require.NoError(t, err)
	assert.True(t, resp.Allowed)
}

func TestStartBillingBlockedByBusyBiller(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	ship := time.Now().AddDate(0, 0, 1)

	var ids []string
	for i := 0; i < 2; i++ {
		created, err := svc.CreateOrder(ctx, createOrderReq("shop-a"))
		require.NoError(t, err)
		_, err = svc.SetShippingDate(ctx, created.ID, SetShippingDateRequest{Date: &ship})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	assignResp, err := svc.AssignBillers(ctx, AssignBillersRequest{OrderIDs: ids, Biller: "biller-meena"})
	require.NoError(t, err)
	require.NotNil(t, assignResp.Result)
	require.Len(t, assignResp.Result.Assigned, 2)

	_, err = svc.StartBilling(ctx, ids[0])
	require.NoError(t, err)

	_, err = svc.StartBilling(ctx, ids[1])
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrBillingConflict)

	// Completing the first task frees the slot.
	_, err = svc.CompleteBilling(ctx, ids[0])
	require.NoError(t, err)
	_, err = svc.StartBilling(ctx, ids[1])
	require.NoError(t, err)
}
