package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stage is the lifecycle state of an Order. Trash is advisory only: nothing
// purges trashed orders.
type Stage string

const (
	StageDraft     Stage = "Draft"
	StageConfirmed Stage = "Confirmed"
	StagePaid      Stage = "Paid"
	StageDelivered Stage = "Delivered"
	StageCancelled Stage = "Cancelled"
	StageTrash     Stage = "Trash"
)

// Stages lists every valid stage in declaration order.
var Stages = []Stage{StageDraft, StageConfirmed, StagePaid, StageDelivered, StageCancelled, StageTrash}

// Order timestamps are maintained by GORM: CreatedAt on insert, UpdatedAt on
// every write.
type Order struct {
	ID          uint             `gorm:"primaryKey"`
	CreatedAt   time.Time        `gorm:"autoCreateTime;not null"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime;not null"`
	Stage       Stage            `gorm:"type:varchar(50);not null;default:'Draft'"`
	Description *string          `gorm:"type:text"`
	Total       *decimal.Decimal `gorm:"type:decimal(10,2)"`
}

func (Order) TableName() string { return "orders" }

// OrderItem attaches a ProductQuantity to an Order.
type OrderItem struct {
	ID                uint `gorm:"primaryKey"`
	OrderID           uint `gorm:"not null;index"`
	ProductQuantityID uint `gorm:"not null;index"`

	Order           *Order           `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ProductQuantity *ProductQuantity `gorm:"foreignKey:ProductQuantityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (OrderItem) TableName() string { return "order_items" }
