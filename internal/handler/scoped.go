package handler

import (
	"net/http"
	"sort"

	"warehouse/internal/service"

	"github.com/gin-gonic/gin"
)

// ScopedHandler serves the per-parent item listings.
type ScopedHandler struct {
	warehouseItems service.WarehouseItemService
	orderItems     service.OrderItemService
}

func NewScopedHandler(warehouseItems service.WarehouseItemService, orderItems service.OrderItemService) *ScopedHandler {
	return &ScopedHandler{warehouseItems: warehouseItems, orderItems: orderItems}
}

// WarehouseItems GET /api/v1/items/:warehouse_id/
func (h *ScopedHandler) WarehouseItems(c *gin.Context) {
	id, ok := parseID(c, "warehouse_id")
	if !ok {
		return
	}
	page, ok := parsePage(c)
	if !ok {
		return
	}
	res, err := h.warehouseItems.ListByWarehouse(c.Request.Context(), id, page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse(c, res))
}

// OrderItems GET /api/v1/order/:order_id/
func (h *ScopedHandler) OrderItems(c *gin.Context) {
	id, ok := parseID(c, "order_id")
	if !ok {
		return
	}
	page, ok := parsePage(c)
	if !ok {
		return
	}
	res, err := h.orderItems.ListByOrder(c.Request.Context(), id, page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse(c, res))
}

// APIRoot GET /api/v1/ lists the absolute URL of every resource collection.
func APIRoot(prefix string, resources []string) gin.HandlerFunc {
	sorted := append([]string(nil), resources...)
	sort.Strings(sorted)
	return func(c *gin.Context) {
		out := make(map[string]string, len(sorted))
		for _, name := range sorted {
			out[name] = absoluteURL(c, prefix+"/"+name+"/").String()
		}
		c.JSON(http.StatusOK, out)
	}
}
