package service

import (
	"warehouse/internal/dto"
	"warehouse/internal/model"
	"warehouse/internal/repository"
)

type ProductService = CRUDService[dto.ProductRequest, dto.ProductResponse]

func NewProductService(
	products repository.Repository[model.Product],
	categories repository.Repository[model.Category],
	suppliers repository.Repository[model.Supplier],
	tx repository.Transactor,
) ProductService {
	return newCRUDService(products, tx, binding[model.Product, dto.ProductRequest, dto.ProductResponse]{
		name:    "product",
		apply:   applyProduct,
		respond: mapProduct,
		refs: func(req dto.ProductRequest) []reference {
			return []reference{
				ref("category", req.Category, categories),
				ref("supplier", req.Supplier, suppliers),
			}
		},
	})
}

func applyProduct(req dto.ProductRequest, p *model.Product) {
	p.CategoryID = req.Category
	p.Name = value(req.Name)
	p.Description = req.Description
	if req.Price != nil {
		p.Price = *req.Price
	}
	p.SupplierID = req.Supplier
}

func mapProduct(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID: p.ID,
		ProductRequest: dto.ProductRequest{
			Category:    p.CategoryID,
			Name:        ptr(p.Name),
			Description: p.Description,
			Price:       ptr(p.Price),
			Supplier:    p.SupplierID,
		},
	}
}

type ProductQuantityService = CRUDService[dto.ProductQuantityRequest, dto.ProductQuantityResponse]

func NewProductQuantityService(
	quantities repository.Repository[model.ProductQuantity],
	products repository.Repository[model.Product],
	tx repository.Transactor,
) ProductQuantityService {
	return newCRUDService(quantities, tx, binding[model.ProductQuantity, dto.ProductQuantityRequest, dto.ProductQuantityResponse]{
		name: "product quantity",
		apply: func(req dto.ProductQuantityRequest, q *model.ProductQuantity) {
			q.ProductID = value(req.Product)
			q.Quantity = value(req.Quantity)
		},
		respond: func(q *model.ProductQuantity) dto.ProductQuantityResponse {
			return dto.ProductQuantityResponse{
				ID: q.ID,
				ProductQuantityRequest: dto.ProductQuantityRequest{
					Product:  ptr(q.ProductID),
					Quantity: ptr(q.Quantity),
				},
			}
		},
		refs: func(req dto.ProductQuantityRequest) []reference {
			return []reference{ref("product", req.Product, products)}
		},
	})
}
