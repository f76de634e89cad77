// Package mysql implements the order repository over GORM. GORM
// association features are not used: child rows are managed by hand so
// the aggregate boundary stays visible in the repository code.
package mysql

import (
	"context"
	"errors"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/order"
	"github.com/kchelvan55/customer-admin-app-sub000/infrastructure/persistence"
	"github.com/kchelvan55/customer-admin-app-sub000/infrastructure/persistence/mysql/po"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// getDB returns the transaction from context when present, otherwise
// the default connection.
func (r *OrderRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *OrderRepository) NextIdentity() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Save persists the whole aggregate, last write wins. Child rows use a
// delete-then-insert strategy; versions are not compared on write.
func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	rec := po.FromOrderDomain(o)

	save := func(tx *gorm.DB) error {
		return r.saveWithTx(tx, rec)
	}

	var err error
	if tx := persistence.TxFromContext(ctx); tx != nil {
		err = save(tx)
	} else {
		err = r.db.WithContext(ctx).Transaction(save)
	}
	if err != nil {
		return err
	}
	o.IncrementVersionForSave()
	return nil
}

func (r *OrderRepository) saveWithTx(tx *gorm.DB, rec *po.OrderRecord) error {
	if err := tx.Save(&rec.Order).Error; err != nil {
		return err
	}

	if err := tx.Where("order_id = ?", rec.Order.ID).Delete(&po.OrderItemPO{}).Error; err != nil {
		return err
	}
	if len(rec.Items) > 0 {
		if err := tx.Create(&rec.Items).Error; err != nil {
			return err
		}
	}

	requestIDs := make([]string, len(rec.Requests))
	for i, req := range rec.Requests {
		requestIDs[i] = req.ID
	}
	if err := tx.Where("order_id = ?", rec.Order.ID).Delete(&po.ModificationRequestPO{}).Error; err != nil {
		return err
	}
	if len(requestIDs) > 0 {
		if err := tx.Where("request_id IN ?", requestIDs).Delete(&po.RequestedItemPO{}).Error; err != nil {
			return err
		}
		if err := tx.Where("request_id IN ?", requestIDs).Delete(&po.RemovedItemPO{}).Error; err != nil {
			return err
		}
	}
	if len(rec.Requests) > 0 {
		if err := tx.Create(&rec.Requests).Error; err != nil {
			return err
		}
	}
	if len(rec.RequestedItems) > 0 {
		if err := tx.Create(&rec.RequestedItems).Error; err != nil {
			return err
		}
	}
	if len(rec.RemovedItems) > 0 {
		if err := tx.Create(&rec.RemovedItems).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	db := r.getDB(ctx)

	var orderPO po.OrderPO
	result := db.First(&orderPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, order.NewOrderNotFoundError(id)
		}
		return nil, result.Error
	}

	rec, err := r.loadChildren(db, orderPO)
	if err != nil {
		return nil, err
	}
	return rec.ToDomain(), nil
}

func (r *OrderRepository) FindByShopID(ctx context.Context, shopID order.ShopID) ([]*order.Order, error) {
	return r.findWhere(ctx, "shop_id = ?", string(shopID))
}

// FindAssignable returns the biller-selection queue: orders with a
// shipping date chosen and no biller assigned yet.
func (r *OrderRepository) FindAssignable(ctx context.Context) ([]*order.Order, error) {
	return r.findWhere(ctx, "status = ? AND billed_in_insmart_by IS NULL", string(order.StatusToPickBiller))
}

func (r *OrderRepository) FindBillingInProgressByBiller(ctx context.Context, biller order.BillerID) (*order.Order, error) {
	db := r.getDB(ctx)

	var orderPO po.OrderPO
	result := db.First(&orderPO, "status = ? AND billed_in_insmart_by = ?",
		string(order.StatusBillingInProgress), string(biller))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	rec, err := r.loadChildren(db, orderPO)
	if err != nil {
		return nil, err
	}
	return rec.ToDomain(), nil
}

func (r *OrderRepository) findWhere(ctx context.Context, query string, args ...interface{}) ([]*order.Order, error) {
	db := r.getDB(ctx)

	var orderPOs []po.OrderPO
	if err := db.Where(query, args...).Order("created_at ASC").Find(&orderPOs).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, len(orderPOs))
	for i, orderPO := range orderPOs {
		rec, err := r.loadChildren(db, orderPO)
		if err != nil {
			return nil, err
		}
		orders[i] = rec.ToDomain()
	}
	return orders, nil
}

// loadChildren fetches all child rows of one order. Preload is not
// used: each query is explicit.
func (r *OrderRepository) loadChildren(db *gorm.DB, orderPO po.OrderPO) (*po.OrderRecord, error) {
	rec := &po.OrderRecord{Order: orderPO}

	if err := db.Where("order_id = ?", orderPO.ID).Find(&rec.Items).Error; err != nil {
		return nil, err
	}
	if err := db.Where("order_id = ?", orderPO.ID).Order("request_date ASC").Find(&rec.Requests).Error; err != nil {
		return nil, err
	}
	if len(rec.Requests) == 0 {
		return rec, nil
	}

	requestIDs := make([]string, len(rec.Requests))
	for i, req := range rec.Requests {
		requestIDs[i] = req.ID
	}
	if err := db.Where("request_id IN ?", requestIDs).Find(&rec.RequestedItems).Error; err != nil {
		return nil, err
	}
	if err := db.Where("request_id IN ?", requestIDs).Find(&rec.RemovedItems).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

var _ order.Repository = (*OrderRepository)(nil)
