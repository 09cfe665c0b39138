package handler

import (
	"github.com/gin-gonic/gin"

	productapp "github.com/shopsync/backend/internal/application/product"
)

// SyncHandler handles Shopify import endpoints
type SyncHandler struct {
	BaseHandler
	syncService *productapp.SyncService
	bulkService *productapp.BulkImportService
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(syncService *productapp.SyncService, bulkService *productapp.BulkImportService) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
		bulkService: bulkService,
	}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *SyncHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sync := rg.Group("/sync")
	{
		sync.POST("/product", h.SyncProduct)
		sync.POST("/bulk", h.BulkImport)
	}
}

// SyncProductRequest represents a request to import one product
type SyncProductRequest struct {
	ShopifyID   string `json:"shopify_id" binding:"required"`
	ForceUpdate bool   `json:"force_update"`
}

// BulkImportRequest represents a request to import a batch of products
type BulkImportRequest struct {
	ShopifyIDs     []string `json:"shopify_ids" binding:"required,min=1,max=250,dive,required"`
	SkipDuplicates bool     `json:"skip_duplicates"`
}

// SyncProduct imports a single product from Shopify
func (h *SyncHandler) SyncProduct(c *gin.Context) {
	var req SyncProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	synced, err := h.syncService.Execute(c.Request.Context(), req.ShopifyID, req.ForceUpdate)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, productapp.ToProductDTO(*synced))
}

// BulkImport imports a batch of products from Shopify. The run itself
// always succeeds; per-item failures are reported in the result body.
func (h *SyncHandler) BulkImport(c *gin.Context) {
	var req BulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result := h.bulkService.Execute(c.Request.Context(), req.ShopifyIDs, req.SkipDuplicates)
	h.Success(c, result)
}
