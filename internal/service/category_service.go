package service

import (
	"warehouse/internal/dto"
	"warehouse/internal/model"
	"warehouse/internal/repository"
)

type CategoryService = CRUDService[dto.CategoryRequest, dto.CategoryResponse]

func NewCategoryService(repo repository.Repository[model.Category], tx repository.Transactor) CategoryService {
	return newCRUDService(repo, tx, binding[model.Category, dto.CategoryRequest, dto.CategoryResponse]{
		name: "category",
		apply: func(req dto.CategoryRequest, c *model.Category) {
			c.Name = value(req.Name)
			c.Description = req.Description
		},
		respond: func(c *model.Category) dto.CategoryResponse {
			return dto.CategoryResponse{
				ID: c.ID,
				CategoryRequest: dto.CategoryRequest{
					Name:        ptr(c.Name),
					Description: c.Description,
				},
			}
		},
	})
}
