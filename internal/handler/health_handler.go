package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/petmart/petmart_web/internal/service"
	"github.com/petmart/petmart_web/internal/utils"
)

// HealthHandler reports process liveness and basic store figures.
type HealthHandler struct {
	catalogService *service.CatalogService
	cartService    *service.CartService
	startedAt      time.Time
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(catalogService *service.CatalogService, cartService *service.CartService) *HealthHandler {
	return &HealthHandler{
		catalogService: catalogService,
		cartService:    cartService,
		startedAt:      time.Now(),
	}
}

// GetHealth handles GET /healthz.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	utils.Success(c, http.StatusOK, "ok", gin.H{
		"uptime":    time.Since(h.startedAt).String(),
		"products":  len(h.catalogService.All()),
		"cartLines": h.cartService.Count(),
	})
}
