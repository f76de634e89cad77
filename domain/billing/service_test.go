package billing

import (
	"context"
	"testing"
	"time"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func delegatedOrder(t *testing.T, repo *fakeRepo, id string, biller order.BillerID) *order.Order {
	t.Helper()
	o := queueOrder(id, "shop-a", 0, today.AddDate(0, 0, -1))
	require.NoError(t, o.AssignBiller(biller))
	require.NoError(t, repo.Save(context.Background(), o))
	return o
}

func TestCheckBillingSlotFreeBiller(t *testing.T) {
	repo := newFakeRepo()
	o := delegatedOrder(t, repo, "o-1", "biller-meena")

	assert.NoError(t, NewService(repo).CheckBillingSlot(context.Background(), o))
}

func TestCheckBillingSlotOneTaskPerBiller(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	first := delegatedOrder(t, repo, "o-1", "biller-meena")
	second := delegatedOrder(t, repo, "o-2", "biller-meena")

	svc := NewService(repo)
	require.NoError(t, svc.CheckBillingSlot(ctx, first))
	require.NoError(t, first.StartBilling())
	require.NoError(t, repo.Save(ctx, first))

	err := svc.CheckBillingSlot(ctx, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrBillingConflict)
	assert.Contains(t, err.Error(), "o-1")

	// The blocked order keeps its place in line, nothing mutated.
	assert.Equal(t, order.StatusDelegated, second.Status())
}

func TestCheckBillingSlotOtherBillerUnaffected(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	first := delegatedOrder(t, repo, "o-1", "biller-meena")
	other := delegatedOrder(t, repo, "o-2", "biller-raj")

	svc := NewService(repo)
	require.NoError(t, first.StartBilling())
	require.NoError(t, repo.Save(ctx, first))

	assert.NoError(t, svc.CheckBillingSlot(ctx, other))
}

func TestCheckBillingSlotSameOrderRecheck(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	o := delegatedOrder(t, repo, "o-1", "biller-meena")
	require.NoError(t, o.StartBilling())
	require.NoError(t, repo.Save(ctx, o))

	// Re-checking the in-progress order itself is not a conflict.
	assert.NoError(t, NewService(repo).CheckBillingSlot(ctx, o))
}

func TestCheckBillingSlotRequiresBiller(t *testing.T) {
	repo := newFakeRepo()
	o := queueOrder("o-1", "shop-a", 0, today.AddDate(0, 0, -1))

	err := NewService(repo).CheckBillingSlot(context.Background(), o)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
}

func TestBillingSlotFreesAfterCompletion(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	first := delegatedOrder(t, repo, "o-1", "biller-meena")
	second := delegatedOrder(t, repo, "o-2", "biller-meena")

	svc := NewService(repo)
	require.NoError(t, first.StartBilling())
	require.NoError(t, repo.Save(ctx, first))
	require.Error(t, svc.CheckBillingSlot(ctx, second))

	require.NoError(t, first.CompleteBilling(time.Now()))
	require.NoError(t, repo.Save(ctx, first))

	assert.NoError(t, svc.CheckBillingSlot(ctx, second))
}
