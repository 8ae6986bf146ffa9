package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Orders ──────────────────────────────────────────────────────────────────

type OrderRequest struct {
	Stage       *string          `json:"stage"       validate:"omitnil,oneof=Draft Confirmed Paid Delivered Cancelled Trash"`
	Description *string          `json:"description"`
	Total       *decimal.Decimal `json:"total"       validate:"omitempty,maxdigits=10,maxplaces=2,maxwhole=8"`
}

type OrderResponse struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	OrderRequest
}

func (r OrderResponse) Writable() OrderRequest { return r.OrderRequest }

// ─── Order items ─────────────────────────────────────────────────────────────

type OrderItemRequest struct {
	Order           *uint `json:"order"            validate:"required"`
	ProductQuantity *uint `json:"product_quantity" validate:"required"`
}

type OrderItemResponse struct {
	ID uint `json:"id"`
	OrderItemRequest
}

func (r OrderItemResponse) Writable() OrderItemRequest { return r.OrderItemRequest }

// ─── Warehouse items ─────────────────────────────────────────────────────────

type WarehouseItemRequest struct {
	ProductQuantity *uint `json:"product_quantity" validate:"required"`
	Warehouse       *uint `json:"warehouse"        validate:"required"`
}

type WarehouseItemResponse struct {
	ID uint `json:"id"`
	WarehouseItemRequest
}

func (r WarehouseItemResponse) Writable() WarehouseItemRequest { return r.WarehouseItemRequest }
