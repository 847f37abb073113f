package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// PolicyHandlers exposes role policy administration. The routes sit
// behind the auth and casbin middleware, so only roles granted
// /admin/* can reach them.
type PolicyHandlers struct {
	policySvc domain.PolicyService
}

// NewPolicyHandlers creates new policy handlers
func NewPolicyHandlers(policySvc domain.PolicyService) *PolicyHandlers {
	return &PolicyHandlers{policySvc: policySvc}
}

// PolicyRequest represents a single role grant
type PolicyRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

// List returns all current role policies
func (h *PolicyHandlers) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"policies": h.policySvc.GetPolicies()},
	})
}

// Add grants a role access to a resource and action
func (h *PolicyHandlers) Add(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.policySvc.AddPolicy(req.Role, req.Resource, req.Action); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add policy"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{"message": "Policy added"},
	})
}

// Remove revokes a role grant
func (h *PolicyHandlers) Remove(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.policySvc.RemovePolicy(req.Role, req.Resource, req.Action); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove policy"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "Policy removed"},
	})
}
