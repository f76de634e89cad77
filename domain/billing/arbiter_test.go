package billing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/order"
	"github.com/kchelvan55/customer-admin-app-sub000/domain/schedule"
	"github.com/kchelvan55/customer-admin-app-sub000/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is a minimal order.Repository for arbiter and service tests.
type fakeRepo struct {
	ids    []string
	orders map[string]*order.Order
	serial int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{orders: make(map[string]*order.Order)}
}

func (r *fakeRepo) NextIdentity() string {
	r.serial++
	return fmt.Sprintf("o-%d", r.serial)
}

func (r *fakeRepo) Save(_ context.Context, o *order.Order) error {
	if _, ok := r.orders[o.ID()]; !ok {
		r.ids = append(r.ids, o.ID())
	}
	r.orders[o.ID()] = o
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*order.Order, error) {
	if o, ok := r.orders[id]; ok {
		return o, nil
	}
	return nil, order.NewOrderNotFoundError(id)
}

func (r *fakeRepo) FindByShopID(_ context.Context, shopID order.ShopID) ([]*order.Order, error) {
	var out []*order.Order
	for _, id := range r.ids {
		if r.orders[id].ShopID() == shopID {
			out = append(out, r.orders[id])
		}
	}
	return out, nil
}

func (r *fakeRepo) FindAssignable(_ context.Context) ([]*order.Order, error) {
	var out []*order.Order
	for _, id := range r.ids {
		o := r.orders[id]
		if o.Status() == order.StatusToPickBiller && o.BilledInInsmartBy() == nil {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeRepo) FindBillingInProgressByBiller(_ context.Context, biller order.BillerID) (*order.Order, error) {
	for _, id := range r.ids {
		o := r.orders[id]
		if o.Status() == order.StatusBillingInProgress &&
			o.BilledInInsmartBy() != nil && *o.BilledInInsmartBy() == biller {
			return o, nil
		}
	}
	return nil, nil
}

var today = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

// queueOrder builds an unassigned order sitting in the billing queue
// with its invoice date inside the billing window.
func queueOrder(id string, shop order.ShopID, shipInDays int, orderedAt time.Time) *order.Order {
	ship := today.AddDate(0, 0, shipInDays)
	return order.RebuildFromDTO(order.ReconstructionDTO{
		ID:     id,
		ShopID: shop,
		Items: []order.OrderItem{
			order.RebuildItemFromDTO(order.ItemReconstructionDTO{
				ProductID: "p-1", ProductName: "Rice", UOM: "bag",
				Quantity: 1, UnitPrice: *shared.NewMoney(2500, "SGD"),
			}),
		},
		TotalPrice:   *shared.NewMoney(2500, "SGD"),
		Status:       order.StatusToPickBiller,
		OrderDate:    orderedAt,
		InvoiceDate:  today,
		ShippingDate: &ship,
		CreatedAt:    orderedAt,
		UpdatedAt:    orderedAt,
	})
}

func testArbiter(repo *fakeRepo) *Arbiter {
	arb := NewArbiter(repo, schedule.NewResolver(map[string]int{
		"shop-a": 1,
		"shop-b": 2,
		"shop-c": 3,
	}))
	arb.now = func() time.Time { return today }
	return arb
}

func TestAssignSurfacesPriorityConflict(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, queueOrder("o-1", "shop-a", 0, today.AddDate(0, 0, -2))))
	require.NoError(t, repo.Save(ctx, queueOrder("o-2", "shop-c", 0, today.AddDate(0, 0, -1))))
	arb := testArbiter(repo)

	result, conflict, err := arb.Assign(ctx, []string{"o-2"}, "biller-meena", false)
	require.NoError(t, err)
	assert.Nil(t, result)

	require.NotNil(t, conflict)
	assert.Equal(t, "o-1", conflict.MostUrgentOrder.ID())
	assert.Equal(t, []string{"o-2"}, conflict.RequestedOrderIDs)
	assert.Equal(t, order.BillerID("biller-meena"), conflict.Biller)

	// Nothing assigned until the caller picks a branch.
	o2, _ := repo.FindByID(ctx, "o-2")
	assert.Equal(t, order.StatusToPickBiller, o2.Status())
	assert.Nil(t, o2.BilledInInsmartBy())
}

func TestAssignTargetIncludingMostUrgentProceeds(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, queueOrder("o-1", "shop-a", 0, today.AddDate(0, 0, -2))))
	require.NoError(t, repo.Save(ctx, queueOrder("o-2", "shop-c", 0, today.AddDate(0, 0, -1))))
	arb := testArbiter(repo)

	result, conflict, err := arb.Assign(ctx, []string{"o-1", "o-2"}, "biller-meena", false)
	require.NoError(t, err)
	assert.Nil(t, conflict)

	require.NotNil(t, result)
	assert.ElementsMatch(t, []string{"o-1", "o-2"}, result.Assigned)
	assert.Empty(t, result.Rejected)

	for _, id := range []string{"o-1", "o-2"} {
		o, _ := repo.FindByID(ctx, id)
		assert.Equal(t, order.StatusDelegated, o.Status())
		require.NotNil(t, o.BilledInInsmartBy())
		assert.Equal(t, order.BillerID("biller-meena"), *o.BilledInInsmartBy())
	}
}

func TestAssignOverrideSkipsConflictCheck(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, queueOrder("o-1", "shop-a", 0, today.AddDate(0, 0, -2))))
	require.NoError(t, repo.Save(ctx, queueOrder("o-2", "shop-c", 0, today.AddDate(0, 0, -1))))
	arb := testArbiter(repo)

	result, conflict, err := arb.Assign(ctx, []string{"o-2"}, "biller-meena", true)
	require.NoError(t, err)
	assert.Nil(t, conflict)
	require.NotNil(t, result)
	assert.Equal(t, []string{"o-2"}, result.Assigned)

	// The skipped urgent order stays in the queue, visibly unassigned.
	o1, _ := repo.FindByID(ctx, "o-1")
	assert.Equal(t, order.StatusToPickBiller, o1.Status())
}

func TestAssignWithNoOtherCandidatesIsImmediate(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, queueOrder("o-1", "shop-c", 0, today.AddDate(0, 0, -1))))
	arb := testArbiter(repo)

	result, conflict, err := arb.Assign(ctx, []string{"o-1"}, "biller-meena", false)
	require.NoError(t, err)
	assert.Nil(t, conflict)
	assert.Equal(t, []string{"o-1"}, result.Assigned)
}

func TestAssignPartitionsByBillingWindow(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()

	inWindow := queueOrder("o-in", "shop-a", 0, today.AddDate(0, 0, -1))
	require.NoError(t, repo.Save(ctx, inWindow))

	// Invoice date five days out: assignable queue, but outside the window.
	farShip := today.AddDate(0, 0, 5)
	outOfWindow := order.RebuildFromDTO(order.ReconstructionDTO{
		ID:           "o-out",
		ShopID:       "shop-a",
		TotalPrice:   *shared.NewMoney(1000, "SGD"),
		Status:       order.StatusToPickBiller,
		OrderDate:    today.AddDate(0, 0, -1),
		InvoiceDate:  today.AddDate(0, 0, 5),
		ShippingDate: &farShip,
	})
	require.NoError(t, repo.Save(ctx, outOfWindow))
	arb := testArbiter(repo)

	result, conflict, err := arb.Assign(ctx, []string{"o-in", "o-out"}, "biller-meena", false)
	require.NoError(t, err)
	assert.Nil(t, conflict)

	assert.Equal(t, []string{"o-in"}, result.Assigned)
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, "o-out", result.Rejected[0].OrderID)
	assert.Equal(t, "outside billing window", result.Rejected[0].Reason)

	// Rejected order untouched, not crashed.
	oOut, _ := repo.FindByID(ctx, "o-out")
	assert.Equal(t, order.StatusToPickBiller, oOut.Status())
}

func TestAssignReportsUnknownOrders(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	arb := testArbiter(repo)

	result, conflict, err := arb.Assign(ctx, []string{"o-missing"}, "biller-meena", false)
	require.NoError(t, err)
	assert.Nil(t, conflict)
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, "o-missing", result.Rejected[0].OrderID)
}

func TestSortedQueueIsDeterministic(t *testing.T) {
	ctx := context.Background()

	build := func(insertion []string) []string {
		repo := newFakeRepo()
		orders := map[string]*order.Order{
			"o-1": queueOrder("o-1", "shop-b", 1, today.AddDate(0, 0, -3)),
			"o-2": queueOrder("o-2", "shop-a", 2, today.AddDate(0, 0, -2)),
			"o-3": queueOrder("o-3", "shop-a", 1, today.AddDate(0, 0, -1)),
			"o-4": queueOrder("o-4", "shop-b", 1, today.AddDate(0, 0, -4)),
		}
		for _, id := range insertion {
			require.NoError(t, repo.Save(ctx, orders[id]))
		}

		queue, err := testArbiter(repo).SortedQueue(ctx)
		require.NoError(t, err)

		ids := make([]string, len(queue))
		for i, o := range queue {
			ids[i] = o.ID()
		}
		return ids
	}

	want := []string{"o-3", "o-2", "o-4", "o-1"}
	assert.Equal(t, want, build([]string{"o-1", "o-2", "o-3", "o-4"}))
	assert.Equal(t, want, build([]string{"o-4", "o-3", "o-2", "o-1"}))
	// Repeated calls over unchanged input keep the same ordering.
	assert.Equal(t, want, build([]string{"o-1", "o-2", "o-3", "o-4"}))
}
