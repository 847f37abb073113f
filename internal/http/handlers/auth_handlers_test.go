package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flizwph/clothing-brand-sub001/domain"
	"github.com/flizwph/clothing-brand-sub001/internal/dispatch"
	"github.com/flizwph/clothing-brand-sub001/internal/mocks"
)

type handlerMocks struct {
	authSvc  *mocks.MockAuthService
	guard    *mocks.MockTokenGuard
	resetSvc *mocks.MockPasswordResetService
}

func createAuthHandlersForTest(t *testing.T) (*AuthHandlers, *handlerMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := &handlerMocks{
		authSvc:  mocks.NewMockAuthService(),
		guard:    mocks.NewMockTokenGuard(),
		resetSvc: mocks.NewMockPasswordResetService(),
	}

	registry, err := dispatch.NewAuthRegistry(m.authSvc, m.guard, m.resetSvc)
	require.NoError(t, err)

	return NewAuthHandlers(registry), m
}

func performJSON(t *testing.T, handler gin.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestAuthHandlers_Login_Success(t *testing.T) {
	h, _ := createAuthHandlersForTest(t)

	w := performJSON(t, h.Login, LoginRequest{Username: "alice", Password: "pw"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
			TokenType    string `json:"token_type"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp.Data.TokenType)
	assert.NotEmpty(t, resp.Data.AccessToken)
	assert.NotEmpty(t, resp.Data.RefreshToken)
}

func TestAuthHandlers_Login_Locked(t *testing.T) {
	h, m := createAuthHandlersForTest(t)

	m.authSvc.LoginFunc = func(ctx context.Context, username, password string) (*domain.AuthResult, error) {
		return nil, &domain.AccountLockedError{RetryAfter: 90 * time.Second}
	}

	w := performJSON(t, h.Login, LoginRequest{Username: "alice", Password: "pw"})

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var resp struct {
		RetryAfterSeconds int64 `json:"retry_after_seconds"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(90), resp.RetryAfterSeconds)
}

func TestAuthHandlers_Login_InvalidCredentials(t *testing.T) {
	h, m := createAuthHandlersForTest(t)

	m.authSvc.LoginFunc = func(ctx context.Context, username, password string) (*domain.AuthResult, error) {
		return nil, &domain.InvalidCredentialsError{RemainingAttempts: 2}
	}

	w := performJSON(t, h.Login, LoginRequest{Username: "alice", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp struct {
		AttemptsLeft int `json:"attempts_left"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.AttemptsLeft)
}

func TestAuthHandlers_Login_UnknownUserSameShapeAsWrongPassword(t *testing.T) {
	h, m := createAuthHandlersForTest(t)

	m.authSvc.LoginFunc = func(ctx context.Context, username, password string) (*domain.AuthResult, error) {
		return nil, domain.ErrInvalidCredentials
	}

	w := performJSON(t, h.Login, LoginRequest{Username: "ghost", Password: "pw"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestAuthHandlers_Login_NotVerified(t *testing.T) {
	h, m := createAuthHandlersForTest(t)

	m.authSvc.LoginFunc = func(ctx context.Context, username, password string) (*domain.AuthResult, error) {
		return nil, &domain.NotVerifiedError{Username: username, VerificationCode: "483920"}
	}

	w := performJSON(t, h.Login, LoginRequest{Username: "dave", Password: "pw"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	// The verification code never leaks into the HTTP response.
	assert.NotContains(t, w.Body.String(), "483920")
}

func TestAuthHandlers_Register_WeakPassword(t *testing.T) {
	h, m := createAuthHandlersForTest(t)

	m.authSvc.RegisterFunc = func(ctx context.Context, username, password string) (*domain.User, error) {
		return nil, &domain.WeakPasswordError{MinLength: 8}
	}

	w := performJSON(t, h.Register, RegisterRequest{Username: "bob", Password: "short"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		MinLength int `json:"min_length"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 8, resp.MinLength)
}

func TestAuthHandlers_Refresh_Invalid(t *testing.T) {
	h, _ := createAuthHandlersForTest(t)

	// The mock's default refresh behavior rejects unknown tokens.
	w := performJSON(t, h.Refresh, RefreshRequest{RefreshToken: "never-issued"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandlers_InitiateReset_ActiveResetExists(t *testing.T) {
	h, m := createAuthHandlersForTest(t)

	m.resetSvc.InitiateFunc = func(ctx context.Context, username string) error {
		return domain.ErrActiveResetExists
	}

	w := performJSON(t, h.InitiateReset, InitiateResetRequest{Username: "alice"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandlers_InitiateReset_UnknownUserLooksLikeSuccess(t *testing.T) {
	h, m := createAuthHandlersForTest(t)

	m.resetSvc.InitiateFunc = func(ctx context.Context, username string) error {
		return domain.ErrUserNotFound
	}
	wUnknown := performJSON(t, h.InitiateReset, InitiateResetRequest{Username: "ghost"})

	m.resetSvc.InitiateFunc = nil
	wKnown := performJSON(t, h.InitiateReset, InitiateResetRequest{Username: "alice"})

	assert.Equal(t, wKnown.Code, wUnknown.Code)
	assert.JSONEq(t, wKnown.Body.String(), wUnknown.Body.String())
}

func TestAuthHandlers_CompleteReset_InvalidCode(t *testing.T) {
	h, m := createAuthHandlersForTest(t)

	m.resetSvc.CompleteFunc = func(ctx context.Context, username, code, newPassword string) error {
		return domain.ErrInvalidResetCode
	}

	w := performJSON(t, h.CompleteReset, CompleteResetRequest{
		Username:    "alice",
		Code:        "expired",
		NewPassword: "brand-new-password",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired reset code")
}

func TestAuthHandlers_Validate(t *testing.T) {
	h, m := createAuthHandlersForTest(t)

	m.guard.ValidateFunc = func(ctx context.Context, accessToken string) (*domain.TokenValidation, error) {
		return &domain.TokenValidation{Valid: true, Username: "alice", Role: "customer"}, nil
	}

	w := performJSON(t, h.Validate, ValidateRequest{AccessToken: "token"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Valid    bool   `json:"valid"`
			Username string `json:"username"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Valid)
	assert.Equal(t, "alice", resp.Data.Username)
}

func TestAuthHandlers_Validate_StaleVersion(t *testing.T) {
	h, m := createAuthHandlersForTest(t)

	m.guard.ValidateFunc = func(ctx context.Context, accessToken string) (*domain.TokenValidation, error) {
		return nil, domain.ErrTokenInvalid
	}

	w := performJSON(t, h.Validate, ValidateRequest{AccessToken: "stale"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":false`)
}
