package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petmart/petmart_web/internal/service"
	"github.com/petmart/petmart_web/internal/utils"
)

// CartHandler serves the cart page and its mutation endpoints.
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler constructs a CartHandler.
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// ViewCart handles GET /cart.
func (h *CartHandler) ViewCart(c *gin.Context) {
	view := h.cartService.Materialize()
	c.HTML(http.StatusOK, "cart.html", gin.H{
		"Items":     view.Items,
		"Subtotal":  view.Subtotal,
		"CartCount": view.CartCount,
	})
}

// AddToCart handles POST /cart/add. An unknown product id is a silent no-op;
// the browser is redirected home either way.
func (h *CartHandler) AddToCart(c *gin.Context) {
	if productID := c.PostForm("productId"); productID != "" {
		h.cartService.Add(productID)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// UpdateCart handles POST /cart/update with action increment, decrement or
// remove.
func (h *CartHandler) UpdateCart(c *gin.Context) {
	productID := c.PostForm("productId")
	action := c.PostForm("action")

	if productID != "" {
		switch action {
		case "increment":
			h.cartService.ChangeQuantity(productID, 1)
		case "decrement":
			h.cartService.ChangeQuantity(productID, -1)
		case "remove":
			h.cartService.Remove(productID)
		default:
			utils.Error(c, http.StatusBadRequest, "INVALID_ACTION", "action must be increment, decrement or remove")
			return
		}
	}

	c.Redirect(http.StatusSeeOther, "/cart")
}

// ClearCart handles POST /cart/clear.
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cartService.Clear()
	c.Redirect(http.StatusSeeOther, "/cart")
}
