package billing

import (
	"context"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/order"
)

// Service validates billing-side business rules that span more than
// one order. It only validates; state changes and persistence stay in
// the application layer.
type Service struct {
	repo order.Repository
}

// NewService creates the billing domain service.
func NewService(repo order.Repository) *Service {
	return &Service{repo: repo}
}

// CheckBillingSlot enforces the one-task-per-biller rule: a biller may
// have at most one order billing in progress. The rule is checked
// against current state at the moment of the start action; there is no
// lock.
func (s *Service) CheckBillingSlot(ctx context.Context, o *order.Order) error {
	biller := o.BilledInInsmartBy()
	if biller == nil {
		return order.NewInvalidStatusTransitionError(o.Status(), "start billing without a biller")
	}

	current, err := s.repo.FindBillingInProgressByBiller(ctx, *biller)
	if err != nil {
		return err
	}
	if current != nil && current.ID() != o.ID() {
		return order.NewBillingConflictError(*biller, current.ID())
	}
	return nil
}
