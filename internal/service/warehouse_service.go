package service

import (
	"context"

	"warehouse/internal/dto"
	"warehouse/internal/model"
	"warehouse/internal/repository"
)

type WarehouseService = CRUDService[dto.WarehouseRequest, dto.WarehouseResponse]

func NewWarehouseService(repo repository.Repository[model.Warehouse], tx repository.Transactor) WarehouseService {
	return newCRUDService(repo, tx, binding[model.Warehouse, dto.WarehouseRequest, dto.WarehouseResponse]{
		name: "warehouse",
		apply: func(req dto.WarehouseRequest, w *model.Warehouse) {
			w.Name = value(req.Name)
			w.Address = req.Address
			w.Phone = req.Phone
		},
		respond: func(w *model.Warehouse) dto.WarehouseResponse {
			return dto.WarehouseResponse{
				ID: w.ID,
				WarehouseRequest: dto.WarehouseRequest{
					Name:    ptr(w.Name),
					Address: w.Address,
					Phone:   w.Phone,
				},
			}
		},
	})
}

// WarehouseItemService adds the per-warehouse listing to the CRUD set.
type WarehouseItemService interface {
	CRUDService[dto.WarehouseItemRequest, dto.WarehouseItemResponse]
	// ListByWarehouse pages the items of one warehouse. An unknown warehouse
	// yields an empty first page, not ErrNotFound.
	ListByWarehouse(ctx context.Context, warehouseID uint, page int) (*dto.PageResult[dto.WarehouseItemResponse], error)
}

type warehouseItemService struct {
	*crudService[model.WarehouseItem, dto.WarehouseItemRequest, dto.WarehouseItemResponse]
	items repository.WarehouseItemRepository
}

func NewWarehouseItemService(
	items repository.WarehouseItemRepository,
	warehouses repository.Repository[model.Warehouse],
	quantities repository.Repository[model.ProductQuantity],
	tx repository.Transactor,
) WarehouseItemService {
	b := binding[model.WarehouseItem, dto.WarehouseItemRequest, dto.WarehouseItemResponse]{
		name: "warehouse item",
		apply: func(req dto.WarehouseItemRequest, i *model.WarehouseItem) {
			i.ProductQuantityID = value(req.ProductQuantity)
			i.WarehouseID = value(req.Warehouse)
		},
		respond: mapWarehouseItem,
		refs: func(req dto.WarehouseItemRequest) []reference {
			return []reference{
				ref("product_quantity", req.ProductQuantity, quantities),
				ref("warehouse", req.Warehouse, warehouses),
			}
		},
	}
	return &warehouseItemService{crudService: newCRUDService[model.WarehouseItem](items, tx, b), items: items}
}

func (s *warehouseItemService) ListByWarehouse(ctx context.Context, warehouseID uint, page int) (*dto.PageResult[dto.WarehouseItemResponse], error) {
	fetch := func(ctx context.Context, offset, limit int) ([]model.WarehouseItem, int64, error) {
		return s.items.ListByWarehouse(ctx, warehouseID, offset, limit)
	}
	res, err := paginate(ctx, page, fetch, mapWarehouseItem)
	if err != nil {
		return nil, s.wrap("list", err)
	}
	return res, nil
}

func mapWarehouseItem(i *model.WarehouseItem) dto.WarehouseItemResponse {
	return dto.WarehouseItemResponse{
		ID: i.ID,
		WarehouseItemRequest: dto.WarehouseItemRequest{
			ProductQuantity: ptr(i.ProductQuantityID),
			Warehouse:       ptr(i.WarehouseID),
		},
	}
}
