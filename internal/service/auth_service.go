package service

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/petmart/petmart_web/internal/utils"
)

// AuthService implements the demo login. There is no account database and no
// credential check: the submitted password is ignored and every attempt
// succeeds with a session token carrying the email. The token exists to tag
// request logs, never to gate access.
type AuthService struct {
	secret string
	ttl    time.Duration
}

// NewAuthService constructs an AuthService.
func NewAuthService(secret string, ttl time.Duration) *AuthService {
	return &AuthService{secret: secret, ttl: ttl}
}

// Login records the attempt and issues a session token for the email.
func (s *AuthService) Login(email, password string) (string, error) {
	log.Info().Str("email", email).Msg("login attempt")
	return utils.GenerateSessionToken(email, s.secret, s.ttl)
}
