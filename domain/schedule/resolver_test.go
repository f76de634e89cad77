package schedule

import (
	"testing"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/order"

	"github.com/stretchr/testify/assert"
)

func TestRankKnownShop(t *testing.T) {
	r := NewResolver(map[string]int{"shop-a": 1, "shop-b": 2})

	assert.Equal(t, 1, r.Rank(order.ShopID("shop-a")))
	assert.Equal(t, 2, r.Rank(order.ShopID("shop-b")))
}

func TestRankUnknownShopGetsDefault(t *testing.T) {
	r := NewResolver(map[string]int{"shop-a": 1})

	assert.Equal(t, DefaultRank, r.Rank(order.ShopID("shop-z")))
}

func TestRankEmptyTable(t *testing.T) {
	r := NewResolver(nil)

	assert.Equal(t, DefaultRank, r.Rank(order.ShopID("shop-a")))
}
