package mocks

import "github.com/flizwph/clothing-brand-sub001/domain"

// MockCasbinEnforcer implements domain.CasbinEnforcer for testing
type MockCasbinEnforcer struct {
	AddPolicyFunc    func(params ...interface{}) (bool, error)
	RemovePolicyFunc func(params ...interface{}) (bool, error)
	EnforceFunc      func(rvals ...interface{}) (bool, error)
	GetPolicyFunc    func() ([][]string, error)
	SavePolicyFunc   func() error
}

// NewMockCasbinEnforcer creates a new MockCasbinEnforcer with default behaviors
func NewMockCasbinEnforcer() *MockCasbinEnforcer {
	return &MockCasbinEnforcer{}
}

// AddPolicy adds a policy rule
func (m *MockCasbinEnforcer) AddPolicy(params ...interface{}) (bool, error) {
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(params...)
	}
	// Default behavior: rule accepted
	return true, nil
}

// RemovePolicy removes a policy rule
func (m *MockCasbinEnforcer) RemovePolicy(params ...interface{}) (bool, error) {
	if m.RemovePolicyFunc != nil {
		return m.RemovePolicyFunc(params...)
	}
	// Default behavior: rule existed and was removed
	return true, nil
}

// Enforce checks whether a request should be allowed
func (m *MockCasbinEnforcer) Enforce(rvals ...interface{}) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(rvals...)
	}
	// Default behavior: mirror the seeded grants, admins everywhere and
	// customers on their own session routes
	if len(rvals) < 3 {
		return false, nil
	}
	role, _ := rvals[0].(string)
	resource, _ := rvals[1].(string)
	if role == "admin" {
		return true, nil
	}
	if role == "customer" {
		switch resource {
		case "/auth/logout", "/auth/password/change":
			return true, nil
		}
	}
	return false, nil
}

// GetPolicy returns all policy rules
func (m *MockCasbinEnforcer) GetPolicy() ([][]string, error) {
	if m.GetPolicyFunc != nil {
		return m.GetPolicyFunc()
	}
	// Default behavior: the baseline grants
	return [][]string{
		{"admin", "/admin/*", "(GET|POST|PUT|DELETE)"},
		{"admin", "/auth/logout", "POST"},
		{"customer", "/auth/logout", "POST"},
		{"customer", "/auth/password/change", "POST"},
	}, nil
}

// SavePolicy persists the policy rules
func (m *MockCasbinEnforcer) SavePolicy() error {
	if m.SavePolicyFunc != nil {
		return m.SavePolicyFunc()
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.CasbinEnforcer = (*MockCasbinEnforcer)(nil)
