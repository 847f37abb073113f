package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flizwph/clothing-brand-sub001/domain"
	"github.com/flizwph/clothing-brand-sub001/internal/dispatch"
)

// AuthHandlers exposes the auth operations over HTTP. Every request is
// routed through the dispatch registry so the HTTP layer carries no
// business logic of its own.
type AuthHandlers struct {
	registry *dispatch.Registry
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(registry *dispatch.Registry) *AuthHandlers {
	return &AuthHandlers{registry: registry}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest represents password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// InitiateResetRequest represents the start of the reset flow
type InitiateResetRequest struct {
	Username string `json:"username" binding:"required"`
}

// CompleteResetRequest represents the end of the reset flow
type CompleteResetRequest struct {
	Username    string `json:"username" binding:"required"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// VerifyAccountRequest represents account verification request
type VerifyAccountRequest struct {
	Username string `json:"username" binding:"required"`
	Code     string `json:"code" binding:"required"`
}

// ValidateRequest represents token validation request
type ValidateRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.registry.Dispatch(c.Request.Context(), dispatch.RegisterRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		var weak *domain.WeakPasswordError
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		case errors.As(err, &weak):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      "Password too weak",
				"min_length": weak.MinLength,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	user := result.(*domain.User)
	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message": "User registered successfully. Please verify your account.",
			"user_id": user.ID,
		},
	})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.registry.Dispatch(c.Request.Context(), dispatch.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		var locked *domain.AccountLockedError
		var invalid *domain.InvalidCredentialsError
		var notVerified *domain.NotVerifiedError
		switch {
		case errors.As(err, &locked):
			c.Header("Retry-After", locked.RetryAfter.String())
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":               "Account temporarily locked",
				"retry_after_seconds": int64(locked.RetryAfter.Seconds()),
			})
		case errors.As(err, &invalid):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":         "Invalid credentials",
				"attempts_left": invalid.RemainingAttempts,
			})
		case errors.As(err, &notVerified):
			c.JSON(http.StatusForbidden, gin.H{"error": "Account not verified"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		case errors.Is(err, domain.ErrAccountDisabled):
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is disabled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	auth := result.(*domain.AuthResult)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"access_token":  auth.AccessToken,
			"refresh_token": auth.RefreshToken,
			"token_type":    "Bearer",
			"expires_in":    auth.ExpiresIn,
			"user": gin.H{
				"id":       auth.User.ID,
				"username": auth.User.Username,
				"role":     auth.User.Role,
			},
		},
	})
}

// Refresh handles token refresh
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.registry.Dispatch(c.Request.Context(), dispatch.RefreshTokenRequest{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		case errors.Is(err, domain.ErrAccountDisabled):
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is disabled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed"})
		}
		return
	}

	auth := result.(*domain.AuthResult)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"access_token": auth.AccessToken,
			"token_type":   "Bearer",
			"expires_in":   auth.ExpiresIn,
		},
	})
}

// Logout handles user logout (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Username not found in context"})
		return
	}

	if _, err := h.registry.Dispatch(c.Request.Context(), dispatch.LogoutRequest{
		Username: username.(string),
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "Logged out successfully"},
	})
}

// ChangePassword handles password change (requires authentication)
func (h *AuthHandlers) ChangePassword(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Username not found in context"})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.registry.Dispatch(c.Request.Context(), dispatch.ChangePasswordRequest{
		Username:        username.(string),
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		var weak *domain.WeakPasswordError
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		case errors.As(err, &weak):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      "Password too weak",
				"min_length": weak.MinLength,
			})
		case errors.Is(err, domain.ErrSameAsOldPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": "New password must differ from the current one"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Password change failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "Password changed. All sessions have been revoked."},
	})
}

// InitiateReset starts the out-of-band password reset flow
func (h *AuthHandlers) InitiateReset(c *gin.Context) {
	var req InitiateResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.registry.Dispatch(c.Request.Context(), dispatch.InitiateResetRequest{
		Username: req.Username,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActiveResetExists):
			c.JSON(http.StatusConflict, gin.H{"error": "A reset request is already active"})
		case errors.Is(err, domain.ErrNoNotificationChannel):
			c.JSON(http.StatusPreconditionFailed, gin.H{"error": "No notification channel linked to this account"})
		case errors.Is(err, domain.ErrNotVerified):
			c.JSON(http.StatusForbidden, gin.H{"error": "Account not verified"})
		case errors.Is(err, domain.ErrUserNotFound):
			// Revealing whether the account exists would defeat the
			// out-of-band delivery, so the response is the same as for
			// a successful initiation.
			c.JSON(http.StatusAccepted, gin.H{
				"data": gin.H{"message": "If the account exists, a reset code has been sent."},
			})
		case errors.Is(err, domain.ErrResetDeliveryFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Could not deliver the reset code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Reset initiation failed"})
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"data": gin.H{"message": "If the account exists, a reset code has been sent."},
	})
}

// CompleteReset finishes the reset flow with the delivered code
func (h *AuthHandlers) CompleteReset(c *gin.Context) {
	var req CompleteResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.registry.Dispatch(c.Request.Context(), dispatch.CompleteResetRequest{
		Username:    req.Username,
		Code:        req.Code,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		var weak *domain.WeakPasswordError
		switch {
		case errors.Is(err, domain.ErrInvalidResetCode):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset code"})
		case errors.As(err, &weak):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      "Password too weak",
				"min_length": weak.MinLength,
			})
		case errors.Is(err, domain.ErrSameAsOldPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": "New password must differ from the current one"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Reset completion failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "Password reset. All sessions have been revoked."},
	})
}

// VerifyAccount confirms account ownership with the registration code
func (h *AuthHandlers) VerifyAccount(c *gin.Context) {
	var req VerifyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.registry.Dispatch(c.Request.Context(), dispatch.VerifyAccountRequest{
		Username: req.Username,
		Code:     req.Code,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidVerificationCode):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid verification code"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "Account verified successfully"},
	})
}

// Validate checks an access token for other services
func (h *AuthHandlers) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.registry.Dispatch(c.Request.Context(), dispatch.ValidateTokenRequest{
		AccessToken: req.AccessToken,
	})
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{"valid": false},
		})
		return
	}

	validation := result.(*domain.TokenValidation)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"valid":    validation.Valid,
			"username": validation.Username,
			"role":     validation.Role,
		},
	})
}
