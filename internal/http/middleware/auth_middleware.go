package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// AuthMiddleware authenticates requests with a bearer access token. The
// guard re-checks the token version against the user row on every
// request, so a password change or reset cuts off in-flight sessions
// immediately.
func AuthMiddleware(guard domain.TokenGuard) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		validation, err := guard.Validate(c.Request.Context(), tokenParts[1])
		if err != nil {
			switch {
			case err == domain.ErrTokenExpired:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			c.Abort()
			return
		}

		c.Set("username", validation.Username)
		c.Set("user_role", validation.Role)

		c.Next()
	})
}
