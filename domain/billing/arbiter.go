package billing

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/order"
	"github.com/kchelvan55/customer-admin-app-sub000/domain/schedule"
)

// RejectedOrder names one order excluded from a bulk assignment and why.
// Rejections are reported, never silently dropped.
type RejectedOrder struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
}

// AssignmentResult is the per-order split of a bulk biller assignment.
type AssignmentResult struct {
	Assigned []string        `json:"assigned"`
	Rejected []RejectedOrder `json:"rejected"`
}

// PriorityConflict is a required-decision signal, not an error: a more
// urgent unassigned order exists and must be handled first. The caller
// either assigns the urgent order instead or repeats the original
// request with override set. There is no third path.
type PriorityConflict struct {
	MostUrgentOrder   *order.Order
	RequestedOrderIDs []string
	Biller            order.BillerID
}

// Arbiter decides whether a biller-assignment action may proceed and,
// once cleared, performs it.
type Arbiter struct {
	repo     order.Repository
	schedule *schedule.Resolver
	now      func() time.Time
}

// NewArbiter creates the assignment arbiter.
func NewArbiter(repo order.Repository, resolver *schedule.Resolver) *Arbiter {
	return &Arbiter{
		repo:     repo,
		schedule: resolver,
		now:      time.Now,
	}
}

// Now returns the arbiter's clock, injectable for tests.
func (a *Arbiter) Now() time.Time {
	return a.now()
}

// Assign runs the two-phase assignment:
//
//  1. Scan the assignable queue for ungrouped orders outside the target
//     set. If the most urgent of them outranks every targeted order,
//     surface a PriorityConflict and assign nothing.
//  2. Otherwise assign each targeted order, rejecting per-order those
//     outside the billing window or in a status that refuses a biller.
//
// A same-day higher-priority shipment silently losing its billing slot
// to a bulk action is the costliest failure mode here, so the conflict
// costs one extra confirmation instead.
func (a *Arbiter) Assign(ctx context.Context, orderIDs []string, biller order.BillerID, override bool) (*AssignmentResult, *PriorityConflict, error) {
	candidates, err := a.repo.FindAssignable(ctx)
	if err != nil {
		return nil, nil, err
	}

	if !override {
		if conflict := a.findConflict(candidates, orderIDs, biller); conflict != nil {
			return nil, conflict, nil
		}
	}

	today := a.now()
	result := &AssignmentResult{}
	for _, id := range orderIDs {
		o, err := a.repo.FindByID(ctx, id)
		if err != nil {
			result.Rejected = append(result.Rejected, RejectedOrder{OrderID: id, Reason: err.Error()})
			continue
		}
		if !OrderWithinWindow(o, today) {
			result.Rejected = append(result.Rejected, RejectedOrder{OrderID: id, Reason: "outside billing window"})
			continue
		}
		if err := o.AssignBiller(biller); err != nil {
			result.Rejected = append(result.Rejected, RejectedOrder{OrderID: id, Reason: err.Error()})
			continue
		}
		if err := a.repo.Save(ctx, o); err != nil {
			return nil, nil, err
		}
		result.Assigned = append(result.Assigned, id)
	}

	return result, nil, nil
}

// findConflict returns the priority conflict for the requested set, or
// nil when the set may be assigned as-is.
func (a *Arbiter) findConflict(candidates []*order.Order, orderIDs []string, biller order.BillerID) *PriorityConflict {
	targeted := make(map[string]bool, len(orderIDs))
	for _, id := range orderIDs {
		targeted[id] = true
	}

	var others []*order.Order
	minRankOfTargets := math.MaxInt
	for _, c := range candidates {
		if targeted[c.ID()] {
			if rank := a.schedule.Rank(c.ShopID()); rank < minRankOfTargets {
				minRankOfTargets = rank
			}
		} else {
			others = append(others, c)
		}
	}

	if len(others) == 0 {
		return nil
	}

	a.sortQueue(others)
	mostUrgent := others[0]
	if a.schedule.Rank(mostUrgent.ShopID()) < minRankOfTargets {
		return &PriorityConflict{
			MostUrgentOrder:   mostUrgent,
			RequestedOrderIDs: orderIDs,
			Biller:            biller,
		}
	}
	return nil
}

// SortedQueue returns the assignable queue in working order: schedule
// rank, then shipping date, then effective invoice date, older orders
// first. The sort is stable and fully tie-broken, so repeated calls
// over an unchanged set produce identical ordering.
func (a *Arbiter) SortedQueue(ctx context.Context) ([]*order.Order, error) {
	queue, err := a.repo.FindAssignable(ctx)
	if err != nil {
		return nil, err
	}
	a.sortQueue(queue)
	return queue, nil
}

func (a *Arbiter) sortQueue(orders []*order.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		oi, oj := orders[i], orders[j]

		ri, rj := a.schedule.Rank(oi.ShopID()), a.schedule.Rank(oj.ShopID())
		if ri != rj {
			return ri < rj
		}

		si, sj := oi.ShippingDate(), oj.ShippingDate()
		if si != nil && sj != nil && !si.Equal(*sj) {
			return si.Before(*sj)
		}

		if ii, ij := oi.EffectiveInvoiceDate(), oj.EffectiveInvoiceDate(); !ii.Equal(ij) {
			return ii.Before(ij)
		}

		if di, dj := oi.OrderDate(), oj.OrderDate(); !di.Equal(dj) {
			return di.Before(dj)
		}

		return oi.ID() < oj.ID()
	})
}
