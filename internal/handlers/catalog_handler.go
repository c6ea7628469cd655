package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"order_kiosk/internal/services"
)

type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts handles GET /api/businesses/:business_id/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	businessID, ok := uintParam(c, "business_id")
	if !ok {
		return
	}

	products, err := h.catalogService.ListProducts(businessID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct handles GET /api/businesses/:business_id/products/:product_id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	businessID, ok := uintParam(c, "business_id")
	if !ok {
		return
	}
	productID, ok := uintParam(c, "product_id")
	if !ok {
		return
	}

	product, err := h.catalogService.GetProduct(businessID, productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}
