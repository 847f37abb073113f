package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flizwph/clothing-brand-sub001/internal/config"
	httpx "github.com/flizwph/clothing-brand-sub001/internal/http"
	"github.com/flizwph/clothing-brand-sub001/internal/http/handlers"
	"github.com/flizwph/clothing-brand-sub001/internal/http/middleware"
	"github.com/flizwph/clothing-brand-sub001/internal/infrastructure/auth"
	"github.com/flizwph/clothing-brand-sub001/internal/infrastructure/database"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(context.Background()); err != nil {
		return err
	}

	c, err := NewContainer(cfg, gdb, rdb.Client, cas)
	if err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(c.Registry)
	identH := handlers.NewIdentityHandlers(c.IdentitySvc)
	polH := handlers.NewPolicyHandlers(c.PolicySvc)

	jwtMW := middleware.NewAuthMW(c.Guard)
	casbinMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(authH, identH, polH, jwtMW, casbinMW)

	seeded, err := c.PolicySvc.SeedDefaults()
	if err != nil {
		return err
	}
	if seeded {
		log.Println("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
