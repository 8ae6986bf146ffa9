package repository

import (
	"warehouse/internal/model"

	"gorm.io/gorm"
)

func NewSupplierRepository(db *gorm.DB) Repository[model.Supplier] {
	return newGormRepository[model.Supplier](db)
}

func NewCategoryRepository(db *gorm.DB) Repository[model.Category] {
	return newGormRepository[model.Category](db)
}

func NewProductRepository(db *gorm.DB) Repository[model.Product] {
	return newGormRepository[model.Product](db)
}

func NewProductQuantityRepository(db *gorm.DB) Repository[model.ProductQuantity] {
	return newGormRepository[model.ProductQuantity](db)
}

func NewOrderRepository(db *gorm.DB) Repository[model.Order] {
	return newGormRepository[model.Order](db)
}

func NewWarehouseRepository(db *gorm.DB) Repository[model.Warehouse] {
	return newGormRepository[model.Warehouse](db)
}
