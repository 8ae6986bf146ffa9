package model

type Warehouse struct {
	ID      uint    `gorm:"primaryKey"`
	Name    string  `gorm:"type:varchar(50);not null"`
	Address *string `gorm:"type:text"`
	Phone   *string `gorm:"type:varchar(15)"`
}

func (Warehouse) TableName() string { return "warehouses" }

// WarehouseItem records that a ProductQuantity is stored in a Warehouse.
type WarehouseItem struct {
	ID                uint `gorm:"primaryKey"`
	ProductQuantityID uint `gorm:"not null;index"`
	WarehouseID       uint `gorm:"not null;index"`

	ProductQuantity *ProductQuantity `gorm:"foreignKey:ProductQuantityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Warehouse       *Warehouse       `gorm:"foreignKey:WarehouseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (WarehouseItem) TableName() string { return "warehouse_items" }
