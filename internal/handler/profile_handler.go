package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petmart/petmart_web/internal/models"
	"github.com/petmart/petmart_web/internal/service"
	"github.com/petmart/petmart_web/internal/utils"
)

// ProfileHandler serves the profile page and its update endpoint.
type ProfileHandler struct {
	profileService *service.ProfileService
	cartService    *service.CartService
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(profileService *service.ProfileService, cartService *service.CartService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, cartService: cartService}
}

// ShowProfile handles GET /profile.
func (h *ProfileHandler) ShowProfile(c *gin.Context) {
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"User":      h.profileService.Get(),
		"CartCount": h.cartService.Count(),
	})
}

// UpdateProfile handles POST /profile/update. The update is a full overwrite,
// so all five fields must be present in the form; their values may be empty.
// A missing key is rejected instead of silently wiping part of the record.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	profile := models.UserProfile{}
	fields := map[string]*string{
		"name":    &profile.Name,
		"phone":   &profile.Phone,
		"address": &profile.Address,
		"email":   &profile.Email,
		"pincode": &profile.Pincode,
	}
	for key, dst := range fields {
		v, ok := c.GetPostForm(key)
		if !ok {
			utils.Error(c, http.StatusBadRequest, "MISSING_FIELD", "profile update requires "+key)
			return
		}
		*dst = v
	}

	h.profileService.Replace(profile)
	c.Redirect(http.StatusSeeOther, "/profile")
}
