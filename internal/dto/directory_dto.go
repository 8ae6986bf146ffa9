package dto

// ─── Suppliers ───────────────────────────────────────────────────────────────

type SupplierRequest struct {
	Name    *string `json:"name"    validate:"required,min=1,max=50"`
	Email   *string `json:"email"   validate:"omitempty,email,max=254"`
	Phone   *string `json:"phone"   validate:"omitempty,max=15"`
	Address *string `json:"address"`
}

type SupplierResponse struct {
	ID uint `json:"id"`
	SupplierRequest
}

func (r SupplierResponse) Writable() SupplierRequest { return r.SupplierRequest }

// ─── Categories ──────────────────────────────────────────────────────────────

type CategoryRequest struct {
	Name        *string `json:"name"        validate:"required,min=1,max=50"`
	Description *string `json:"description"`
}

type CategoryResponse struct {
	ID uint `json:"id"`
	CategoryRequest
}

func (r CategoryResponse) Writable() CategoryRequest { return r.CategoryRequest }

// ─── Warehouses ──────────────────────────────────────────────────────────────

type WarehouseRequest struct {
	Name    *string `json:"name"    validate:"required,min=1,max=50"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"   validate:"omitempty,max=15"`
}

type WarehouseResponse struct {
	ID uint `json:"id"`
	WarehouseRequest
}

func (r WarehouseResponse) Writable() WarehouseRequest { return r.WarehouseRequest }
