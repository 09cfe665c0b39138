package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	productapp "github.com/shopsync/backend/internal/application/product"
)

// ProductHandler handles product read and delete endpoints
type ProductHandler struct {
	BaseHandler
	queryService *productapp.QueryService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(queryService *productapp.QueryService) *ProductHandler {
	return &ProductHandler{
		queryService: queryService,
	}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/:sku", h.GetBySku)
		products.DELETE("/:sku", h.Delete)
	}
}

// List returns one page of the local product catalog
func (h *ProductHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	list, err := h.queryService.List(c.Request.Context(), page, perPage)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, list.Data, list.Total, list.Page, list.PerPage)
}

// GetBySku returns a single product by its SKU
func (h *ProductHandler) GetBySku(c *gin.Context) {
	dto, err := h.queryService.GetBySku(c.Request.Context(), c.Param("sku"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto)
}

// Delete removes a product by its SKU
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.queryService.Delete(c.Request.Context(), c.Param("sku")); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
