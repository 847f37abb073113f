package mocks

import (
	"fmt"
	"time"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateAccessTokenFunc func(username string, tokenVersion int) (string, error)
	ValidateAccessTokenFunc func(token string) (*domain.TokenClaims, error)
	AccessTokenTTLFunc      func() time.Duration
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateAccessToken generates an access token
func (m *MockTokenService) GenerateAccessToken(username string, tokenVersion int) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(username, tokenVersion)
	}
	// Default behavior: deterministic token encoding subject and version
	return fmt.Sprintf("access_%s_v%d", username, tokenVersion), nil
}

// ValidateAccessToken validates an access token
func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// AccessTokenTTL returns the configured access token lifetime
func (m *MockTokenService) AccessTokenTTL() time.Duration {
	if m.AccessTokenTTLFunc != nil {
		return m.AccessTokenTTLFunc()
	}
	// Default behavior: 15 minutes
	return 15 * time.Minute
}
