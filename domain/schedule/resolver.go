// Package schedule maps shop/location identity to a shipment priority
// rank. Ranks order billing work only; they never affect the
// correctness of a status transition.
package schedule

import "github.com/kchelvan55/customer-admin-app-sub000/domain/order"

// DefaultRank is assigned to shops with no schedule entry (lowest
// priority; lower numbers are more urgent).
const DefaultRank = 99

// Resolver resolves a shop to its shipment-schedule rank. The table is
// static for the lifetime of the process; entries come from
// configuration.
type Resolver struct {
	ranks map[order.ShopID]int
}

// NewResolver builds a resolver from a shop → rank table.
func NewResolver(ranks map[string]int) *Resolver {
	table := make(map[order.ShopID]int, len(ranks))
	for shop, rank := range ranks {
		table[order.ShopID(shop)] = rank
	}
	return &Resolver{ranks: table}
}

// Rank returns the shop's priority rank, or DefaultRank when the shop
// is not on the schedule.
func (r *Resolver) Rank(shopID order.ShopID) int {
	if rank, ok := r.ranks[shopID]; ok {
		return rank
	}
	return DefaultRank
}
