package handler

import (
	"github.com/gin-gonic/gin"

	productapp "github.com/shopsync/backend/internal/application/product"
)

// InventoryHandler handles local stock adjustment endpoints
type InventoryHandler struct {
	BaseHandler
	inventoryService *productapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *productapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/inventory", h.UpdateInventory)
}

// UpdateInventoryRequest represents a stock adjustment request
type UpdateInventoryRequest struct {
	Sku      string `json:"sku" binding:"required,sku"`
	Quantity *int   `json:"quantity" binding:"required,gte=0"`
	Reason   string `json:"reason" binding:"max=255"`
}

// UpdateInventory sets the stock quantity of a product
func (h *InventoryHandler) UpdateInventory(c *gin.Context) {
	var req UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.inventoryService.Execute(c.Request.Context(), req.Sku, *req.Quantity, req.Reason); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"sku":      req.Sku,
		"quantity": *req.Quantity,
	})
}
