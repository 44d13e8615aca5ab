package service

import (
	"github.com/rs/zerolog/log"

	"github.com/petmart/petmart_web/internal/models"
	"github.com/petmart/petmart_web/internal/store"
)

// ProfileService reads and replaces the singleton user profile.
type ProfileService struct {
	store *store.Store
}

// NewProfileService constructs a ProfileService.
func NewProfileService(st *store.Store) *ProfileService {
	return &ProfileService{store: st}
}

// Get returns the current profile.
func (s *ProfileService) Get() models.UserProfile {
	return s.store.Profile()
}

// Replace overwrites the whole profile. There is no partial update and no
// format validation of phone, email or pincode.
func (s *ProfileService) Replace(profile models.UserProfile) {
	s.store.SetProfile(profile)
	log.Info().Str("email", profile.Email).Msg("profile replaced")
}
