package service

import (
	"context"

	"warehouse/internal/dto"
	"warehouse/internal/model"
	"warehouse/internal/repository"
)

type OrderService = CRUDService[dto.OrderRequest, dto.OrderResponse]

func NewOrderService(repo repository.Repository[model.Order], tx repository.Transactor) OrderService {
	return newCRUDService(repo, tx, binding[model.Order, dto.OrderRequest, dto.OrderResponse]{
		name:    "order",
		apply:   applyOrder,
		respond: mapOrder,
	})
}

// applyOrder leaves the stage untouched when req carries none; new orders
// start as Draft. Timestamps belong to the store.
func applyOrder(req dto.OrderRequest, o *model.Order) {
	switch {
	case req.Stage != nil:
		o.Stage = model.Stage(*req.Stage)
	case o.Stage == "":
		o.Stage = model.StageDraft
	}
	o.Description = req.Description
	o.Total = req.Total
}

func mapOrder(o *model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:        o.ID,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
		OrderRequest: dto.OrderRequest{
			Stage:       ptr(string(o.Stage)),
			Description: o.Description,
			Total:       o.Total,
		},
	}
}

// OrderItemService adds the per-order listing to the CRUD set.
type OrderItemService interface {
	CRUDService[dto.OrderItemRequest, dto.OrderItemResponse]
	// ListByOrder pages the items of one order. An unknown order yields an
	// empty first page, not ErrNotFound.
	ListByOrder(ctx context.Context, orderID uint, page int) (*dto.PageResult[dto.OrderItemResponse], error)
}

type orderItemService struct {
	*crudService[model.OrderItem, dto.OrderItemRequest, dto.OrderItemResponse]
	items repository.OrderItemRepository
}

func NewOrderItemService(
	items repository.OrderItemRepository,
	orders repository.Repository[model.Order],
	quantities repository.Repository[model.ProductQuantity],
	tx repository.Transactor,
) OrderItemService {
	b := binding[model.OrderItem, dto.OrderItemRequest, dto.OrderItemResponse]{
		name: "order item",
		apply: func(req dto.OrderItemRequest, i *model.OrderItem) {
			i.OrderID = value(req.Order)
			i.ProductQuantityID = value(req.ProductQuantity)
		},
		respond: mapOrderItem,
		refs: func(req dto.OrderItemRequest) []reference {
			return []reference{
				ref("order", req.Order, orders),
				ref("product_quantity", req.ProductQuantity, quantities),
			}
		},
	}
	return &orderItemService{crudService: newCRUDService[model.OrderItem](items, tx, b), items: items}
}

func (s *orderItemService) ListByOrder(ctx context.Context, orderID uint, page int) (*dto.PageResult[dto.OrderItemResponse], error) {
	fetch := func(ctx context.Context, offset, limit int) ([]model.OrderItem, int64, error) {
		return s.items.ListByOrder(ctx, orderID, offset, limit)
	}
	res, err := paginate(ctx, page, fetch, mapOrderItem)
	if err != nil {
		return nil, s.wrap("list", err)
	}
	return res, nil
}

func mapOrderItem(i *model.OrderItem) dto.OrderItemResponse {
	return dto.OrderItemResponse{
		ID: i.ID,
		OrderItemRequest: dto.OrderItemRequest{
			Order:           ptr(i.OrderID),
			ProductQuantity: ptr(i.ProductQuantityID),
		},
	}
}
