package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petmart/petmart_web/internal/service"
)

// ShopHandler serves the storefront pages and the raw product list.
type ShopHandler struct {
	catalogService *service.CatalogService
	cartService    *service.CartService
}

// NewShopHandler constructs a ShopHandler.
func NewShopHandler(catalogService *service.CatalogService, cartService *service.CartService) *ShopHandler {
	return &ShopHandler{catalogService: catalogService, cartService: cartService}
}

// ListProductsJSON handles GET /jsonproducts. It returns the bare product
// array, not the envelope; consumers expect a plain list.
func (h *ShopHandler) ListProductsJSON(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.All())
}

// Home handles GET /. The optional search query filters the catalog by name,
// description or category.
func (h *ShopHandler) Home(c *gin.Context) {
	query := c.Query("search")
	c.HTML(http.StatusOK, "customer.html", gin.H{
		"Products":    h.catalogService.Search(query),
		"CartCount":   h.cartService.Count(),
		"SearchQuery": query,
	})
}
