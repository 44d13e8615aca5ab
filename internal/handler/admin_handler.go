package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/petmart/petmart_web/internal/models"
	"github.com/petmart/petmart_web/internal/service"
	"github.com/petmart/petmart_web/internal/utils"
)

// AdminHandler serves the product management dashboard and its CRUD
// endpoints, plus the raw data viewer.
type AdminHandler struct {
	catalogService *service.CatalogService
	cartService    *service.CartService
	profileService *service.ProfileService
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(catalogService *service.CatalogService, cartService *service.CartService, profileService *service.ProfileService) *AdminHandler {
	return &AdminHandler{
		catalogService: catalogService,
		cartService:    cartService,
		profileService: profileService,
	}
}

// Manage handles GET /admin/manage: the full catalog plus the Food subset
// for the stock section.
func (h *AdminHandler) Manage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin-management.html", gin.H{
		"AllProducts": h.catalogService.All(),
		"FoodStock":   h.catalogService.ByCategory(models.CategoryFood),
	})
}

// AddProduct handles POST /admin/add-product. Malformed or negative numeric
// fields are rejected before any state changes.
func (h *AdminHandler) AddProduct(c *gin.Context) {
	price, ok := parsePrice(c, c.PostForm("price"))
	if !ok {
		return
	}
	stock, ok := parseQuantity(c, c.PostForm("stock"), "INVALID_STOCK", "stock must be an integer")
	if !ok {
		return
	}
	reorder, ok := parseQuantity(c, c.PostForm("reorderThreshold"), "INVALID_THRESHOLD", "reorderThreshold must be an integer")
	if !ok {
		return
	}

	req := &service.CreateProductRequest{
		Name:             c.PostForm("name"),
		Category:         models.Category(c.PostForm("category")),
		Price:            price,
		Stock:            stock,
		ReorderThreshold: reorder,
		Description:      c.PostForm("description"),
		ImageURL:         c.PostForm("imageUrl"),
	}
	if _, err := h.catalogService.Create(req); err != nil {
		writeCatalogError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/manage")
}

// UpdateProduct handles POST /admin/update-product. Only fields present in
// the form overwrite, so an explicit price or stock of 0 is honored.
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id := c.PostForm("id")
	if id == "" {
		utils.Error(c, http.StatusBadRequest, "MISSING_FIELD", "product id is required")
		return
	}

	patch := &service.UpdateProductPatch{}
	if v, present := c.GetPostForm("name"); present {
		patch.Name = &v
	}
	if v, present := c.GetPostForm("category"); present {
		cat := models.Category(v)
		patch.Category = &cat
	}
	if v, present := c.GetPostForm("price"); present {
		price, ok := parsePrice(c, v)
		if !ok {
			return
		}
		patch.Price = &price
	}
	if v, present := c.GetPostForm("stock"); present {
		stock, ok := parseQuantity(c, v, "INVALID_STOCK", "stock must be an integer")
		if !ok {
			return
		}
		patch.Stock = &stock
	}
	if v, present := c.GetPostForm("reorderThreshold"); present {
		reorder, ok := parseQuantity(c, v, "INVALID_THRESHOLD", "reorderThreshold must be an integer")
		if !ok {
			return
		}
		patch.ReorderThreshold = &reorder
	}
	if v, present := c.GetPostForm("description"); present {
		patch.Description = &v
	}
	if v, present := c.GetPostForm("imageUrl"); present {
		patch.ImageURL = &v
	}

	if _, err := h.catalogService.Update(id, patch); err != nil {
		writeCatalogError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/manage")
}

// DeleteProduct handles POST /admin/delete-product. Cart lines referencing
// the product are left behind as orphans by design.
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id := c.PostForm("id")
	if id == "" {
		utils.Error(c, http.StatusBadRequest, "MISSING_FIELD", "product id is required")
		return
	}

	if err := h.catalogService.Delete(id); err != nil {
		writeCatalogError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/manage")
}

// UpdateStock handles POST /admin/update-stock for the Food stock section.
func (h *AdminHandler) UpdateStock(c *gin.Context) {
	id := c.PostForm("foodId")
	if id == "" {
		utils.Error(c, http.StatusBadRequest, "MISSING_FIELD", "foodId is required")
		return
	}
	quantity, ok := parseQuantity(c, c.PostForm("newQuantity"), "INVALID_STOCK", "newQuantity must be an integer")
	if !ok {
		return
	}

	if err := h.catalogService.SetStock(id, quantity); err != nil {
		writeCatalogError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/manage#stock")
}

// DataView handles GET /admin/data: a raw dump of the three stores.
func (h *AdminHandler) DataView(c *gin.Context) {
	view := h.cartService.Materialize()
	c.HTML(http.StatusOK, "admin-data-view.html", gin.H{
		"Products":  h.catalogService.All(),
		"CartItems": view.Items,
		"Profile":   h.profileService.Get(),
	})
}

// parsePrice parses a decimal form value, writing the error response itself
// when the value does not parse.
func parsePrice(c *gin.Context, raw string) (decimal.Decimal, bool) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_PRICE", "price must be a decimal number")
		return decimal.Decimal{}, false
	}
	return price, true
}

// parseQuantity parses an integer form value, writing the error response
// itself when the value does not parse.
func parseQuantity(c *gin.Context, raw, errCode, message string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, errCode, message)
		return 0, false
	}
	return n, true
}

// writeCatalogError maps service errors to envelope responses.
func writeCatalogError(c *gin.Context, err error) {
	switch err {
	case utils.ErrProductNotFound:
		utils.Error(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found")
	case utils.ErrInvalidPrice:
		utils.Error(c, http.StatusBadRequest, "INVALID_PRICE", "price must be a non-negative decimal")
	case utils.ErrInvalidStock:
		utils.Error(c, http.StatusBadRequest, "INVALID_STOCK", "stock must be a non-negative integer")
	case utils.ErrInvalidThreshold:
		utils.Error(c, http.StatusBadRequest, "INVALID_THRESHOLD", "reorder threshold must be a non-negative integer")
	case utils.ErrMissingField:
		utils.Error(c, http.StatusBadRequest, "MISSING_FIELD", "name and category are required and cannot be empty")
	default:
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "unexpected error")
	}
}
