package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/flizwph/clothing-brand-sub001/internal/http/handlers"
	"github.com/flizwph/clothing-brand-sub001/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, ih *handlers.IdentityHandlers, ph *handlers.PolicyHandlers, jwtmw *middleware.AuthMW, cb *middleware.CasbinMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/refresh", ah.Refresh)
	auth.POST("/verify", ah.VerifyAccount)
	auth.POST("/validate", ah.Validate)
	auth.POST("/password/reset/initiate", ah.InitiateReset)
	auth.POST("/password/reset/complete", ah.CompleteReset)

	v := r.Group("/").Use(jwtmw.WithJWT(), cb.Enforce())
	v.POST("/auth/logout", ah.Logout)
	v.POST("/auth/password/change", ah.ChangePassword)
	v.POST("/auth/identity/link", ih.Link)
	v.POST("/auth/identity/unlink", ih.Unlink)

	adm := r.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/policies", ph.List)
	adm.POST("/policies", ph.Add)
	adm.DELETE("/policies", ph.Remove)

	return r
}
