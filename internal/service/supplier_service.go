package service

import (
	"warehouse/internal/dto"
	"warehouse/internal/model"
	"warehouse/internal/repository"
)

type SupplierService = CRUDService[dto.SupplierRequest, dto.SupplierResponse]

func NewSupplierService(repo repository.Repository[model.Supplier], tx repository.Transactor) SupplierService {
	return newCRUDService(repo, tx, binding[model.Supplier, dto.SupplierRequest, dto.SupplierResponse]{
		name:    "supplier",
		apply:   applySupplier,
		respond: mapSupplier,
	})
}

func applySupplier(req dto.SupplierRequest, s *model.Supplier) {
	s.Name = value(req.Name)
	s.Email = req.Email
	s.Phone = req.Phone
	s.Address = req.Address
}

func mapSupplier(s *model.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID: s.ID,
		SupplierRequest: dto.SupplierRequest{
			Name:    ptr(s.Name),
			Email:   s.Email,
			Phone:   s.Phone,
			Address: s.Address,
		},
	}
}
