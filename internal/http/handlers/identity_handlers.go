package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// IdentityHandlers manages external identity links for the
// authenticated user
type IdentityHandlers struct {
	provider domain.IdentityProvider
}

// NewIdentityHandlers creates new identity handlers
func NewIdentityHandlers(provider domain.IdentityProvider) *IdentityHandlers {
	return &IdentityHandlers{provider: provider}
}

// LinkRequest represents an identity link request
type LinkRequest struct {
	ExternalID  int64  `json:"external_id" binding:"required"`
	DisplayName string `json:"display_name"`
}

// Link binds the external identity to the authenticated account
func (h *IdentityHandlers) Link(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Username not found in context"})
		return
	}

	var req LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.provider.Link(c.Request.Context(), username.(string), req.ExternalID, req.DisplayName); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to link identity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "Identity linked", "provider": h.provider.Provider()},
	})
}

// Unlink removes the external identity from the authenticated account
func (h *IdentityHandlers) Unlink(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Username not found in context"})
		return
	}

	if err := h.provider.Unlink(c.Request.Context(), username.(string)); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlink identity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "Identity unlinked", "provider": h.provider.Provider()},
	})
}
