package auth

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

// CasbinService owns the RBAC enforcer. Grants persist through the
// GORM adapter in the same database as the user store, so a restart
// picks up whatever the policy admin routes last saved.
type CasbinService struct {
	E *casbin.Enforcer
}

// NewCasbinService builds an enforcer from the model file and loads
// the persisted policies.
func NewCasbinService(db *gorm.DB, modelPath string) (*CasbinService, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(modelPath, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load casbin policies: %w", err)
	}

	return &CasbinService{E: enforcer}, nil
}
