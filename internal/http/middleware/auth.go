package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// AuthMW wraps the token guard for middleware
type AuthMW struct {
	guard domain.TokenGuard
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(guard domain.TokenGuard) *AuthMW {
	return &AuthMW{guard: guard}
}

// WithJWT returns the JWT middleware function
func (mw *AuthMW) WithJWT() gin.HandlerFunc {
	return AuthMiddleware(mw.guard)
}
