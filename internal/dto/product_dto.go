package dto

import "github.com/shopspring/decimal"

// ─── Products ────────────────────────────────────────────────────────────────

type ProductRequest struct {
	Category    *uint            `json:"category"`
	Name        *string          `json:"name"        validate:"required,min=1,max=50"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"       validate:"required,maxdigits=10,maxplaces=2,maxwhole=8"`
	Supplier    *uint            `json:"supplier"`
}

type ProductResponse struct {
	ID uint `json:"id"`
	ProductRequest
}

func (r ProductResponse) Writable() ProductRequest { return r.ProductRequest }

// ─── Product quantities ──────────────────────────────────────────────────────

type ProductQuantityRequest struct {
	Product  *uint `json:"product"  validate:"required"`
	Quantity *int  `json:"quantity" validate:"required,min=0,max=2147483647"`
}

type ProductQuantityResponse struct {
	ID uint `json:"id"`
	ProductQuantityRequest
}

func (r ProductQuantityResponse) Writable() ProductQuantityRequest { return r.ProductQuantityRequest }
