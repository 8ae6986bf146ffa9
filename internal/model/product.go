package model

import "github.com/shopspring/decimal"

// Product is a catalog entry. Category and Supplier are optional and are
// nulled out when the referenced row is deleted.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	CategoryID  *uint           `gorm:"index"`
	Name        string          `gorm:"type:varchar(50);not null"`
	Description *string         `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SupplierID  *uint           `gorm:"index"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (Product) TableName() string { return "products" }

// ProductQuantity is an amount of one product; it is what orders and
// warehouses hold.
type ProductQuantity struct {
	ID        uint `gorm:"primaryKey"`
	ProductID uint `gorm:"not null;index"`
	Quantity  int  `gorm:"type:integer;not null"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (ProductQuantity) TableName() string { return "product_quantities" }
