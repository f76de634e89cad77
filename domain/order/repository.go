package order

import "context"

// Repository is the persistence abstraction for the Order aggregate.
// The core never reaches into ambient state; every component that needs
// orders gets this interface injected.
type Repository interface {
	// NextIdentity generates a new order ID.
	NextIdentity() string

	// Save persists the aggregate root. Last-write-wins at the
	// granularity of a single order record; the caller re-reads before
	// mutating.
	Save(ctx context.Context, o *Order) error

	// FindByID loads one order aggregate root.
	FindByID(ctx context.Context, id string) (*Order, error)

	// FindByShopID loads a shop's orders, newest first.
	FindByShopID(ctx context.Context, shopID ShopID) ([]*Order, error)

	// FindAssignable loads the billing work queue: orders awaiting
	// biller selection (shipping date chosen, no biller assigned).
	FindAssignable(ctx context.Context) ([]*Order, error)

	// FindBillingInProgressByBiller returns the order the biller is
	// currently billing, or (nil, nil) when there is none.
	FindBillingInProgressByBiller(ctx context.Context, biller BillerID) (*Order, error)
}
