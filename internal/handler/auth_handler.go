package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petmart/petmart_web/internal/middleware"
	"github.com/petmart/petmart_web/internal/service"
	"github.com/petmart/petmart_web/internal/utils"
)

// AuthHandler serves the login page and the mock login endpoint.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// ShowLogin handles GET /auth.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "auth.html", nil)
}

// Login handles POST /auth/login. The login is mock: the password is ignored
// and the browser gets a session cookie naming the email, then lands on the
// catalog page.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	if email == "" {
		utils.Error(c, http.StatusBadRequest, "MISSING_FIELD", "email is required")
		return
	}

	token, err := h.authService.Login(email, c.PostForm("password"))
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to create session")
		return
	}

	// Session-scoped cookie; the token carries its own expiry.
	c.SetCookie(middleware.SessionCookie, token, 0, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}
