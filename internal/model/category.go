package model

// Category groups products.
type Category struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(50);not null"`
	Description *string `gorm:"type:text"`
}

func (Category) TableName() string { return "categories" }
