package repository

import (
	"context"

	"warehouse/internal/model"

	"gorm.io/gorm"
)

// OrderItemRepository adds the per-order listing to the generic contract.
type OrderItemRepository interface {
	Repository[model.OrderItem]
	ListByOrder(ctx context.Context, orderID uint, offset, limit int) ([]model.OrderItem, int64, error)
}

type orderItemRepo struct {
	*gormRepository[model.OrderItem]
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepo{newGormRepository[model.OrderItem](db)}
}

func (r *orderItemRepo) ListByOrder(ctx context.Context, orderID uint, offset, limit int) ([]model.OrderItem, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.OrderItem{}).Where("order_id = ?", orderID)
	return r.list(ctx, q, offset, limit)
}

// WarehouseItemRepository adds the per-warehouse listing to the generic contract.
type WarehouseItemRepository interface {
	Repository[model.WarehouseItem]
	ListByWarehouse(ctx context.Context, warehouseID uint, offset, limit int) ([]model.WarehouseItem, int64, error)
}

type warehouseItemRepo struct {
	*gormRepository[model.WarehouseItem]
}

func NewWarehouseItemRepository(db *gorm.DB) WarehouseItemRepository {
	return &warehouseItemRepo{newGormRepository[model.WarehouseItem](db)}
}

func (r *warehouseItemRepo) ListByWarehouse(ctx context.Context, warehouseID uint, offset, limit int) ([]model.WarehouseItem, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.WarehouseItem{}).Where("warehouse_id = ?", warehouseID)
	return r.list(ctx, q, offset, limit)
}
