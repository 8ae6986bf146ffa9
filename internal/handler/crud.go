package handler

import (
	"net/http"

	"warehouse/internal/service"

	"github.com/gin-gonic/gin"
)

// writable is implemented by every response DTO: it returns the request form
// of a stored entity, which PUT and PATCH overlay with the body.
type writable[Req any] interface {
	Writable() Req
}

// ResourceHandler serves the list/create/retrieve/update/destroy routes of
// one entity.
type ResourceHandler[Req any, Resp writable[Req]] struct {
	svc service.CRUDService[Req, Resp]
}

func NewResourceHandler[Req any, Resp writable[Req]](svc service.CRUDService[Req, Resp]) *ResourceHandler[Req, Resp] {
	return &ResourceHandler[Req, Resp]{svc: svc}
}

// List GET /api/v1/<resource>/
func (h *ResourceHandler[Req, Resp]) List(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}
	res, err := h.svc.List(c.Request.Context(), page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse(c, res))
}

// Create POST /api/v1/<resource>/
func (h *ResourceHandler[Req, Resp]) Create(c *gin.Context) {
	var req Req
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Retrieve GET /api/v1/<resource>/:id/
func (h *ResourceHandler[Req, Resp]) Retrieve(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PUT /api/v1/<resource>/:id/
// Required fields must all be present; omitted optional fields keep their
// stored value.
func (h *ResourceHandler[Req, Resp]) Update(c *gin.Context) {
	h.update(c, true)
}

// PartialUpdate PATCH /api/v1/<resource>/:id/
func (h *ResourceHandler[Req, Resp]) PartialUpdate(c *gin.Context) {
	h.update(c, false)
}

func (h *ResourceHandler[Req, Resp]) update(c *gin.Context, full bool) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if full {
		var fresh Req
		if !bindAndValidate(c, &fresh) {
			return
		}
	}

	existing, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	req := (*existing).Writable()
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Destroy DELETE /api/v1/<resource>/:id/
func (h *ResourceHandler[Req, Resp]) Destroy(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Register mounts the five resource routes under g.
func (h *ResourceHandler[Req, Resp]) Register(g *gin.RouterGroup) {
	g.GET("/", h.List)
	g.POST("/", h.Create)
	g.GET("/:id/", h.Retrieve)
	g.PUT("/:id/", h.Update)
	g.PATCH("/:id/", h.PartialUpdate)
	g.DELETE("/:id/", h.Destroy)
}
