package model

// Supplier is a vendor that provides products.
type Supplier struct {
	ID      uint    `gorm:"primaryKey"`
	Name    string  `gorm:"type:varchar(50);not null"`
	Email   *string `gorm:"type:varchar(254)"`
	Phone   *string `gorm:"type:varchar(15)"`
	Address *string `gorm:"type:text"`
}

func (Supplier) TableName() string { return "suppliers" }
