package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/petmart/petmart_web/internal/utils"
)

// SessionCookie is the cookie the login endpoint sets.
const SessionCookie = "petmart_session"

// SessionMiddleware decodes the demo session cookie when present and exposes
// the email to request logging. It never aborts a request: the token is an
// identity tag, not an access gate.
type SessionMiddleware struct {
	secret string
}

// NewSessionMiddleware constructs a SessionMiddleware.
func NewSessionMiddleware(secret string) *SessionMiddleware {
	return &SessionMiddleware{secret: secret}
}

func (m *SessionMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
			if claims, err := utils.ParseSessionToken(token, m.secret); err == nil {
				c.Set("session_email", claims.Email)
			}
		}
		c.Next()
	}
}
