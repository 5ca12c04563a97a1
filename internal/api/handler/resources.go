package handler

import (
	"errors"
	"net/http"

	"givego/backend/internal/config"
	"givego/backend/internal/models"
	"givego/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/samber/lo"
)

type donateRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Quantity    int      `json:"quantity" binding:"required,min=1"`
}

// CreateResource publishes a donation for the authenticated user.
func (h *Handler) CreateResource(c *gin.Context) {
	var body donateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(body.Images) > config.MaxResourceImages {
		c.JSON(http.StatusBadRequest, gin.H{"error": "too many images"})
		return
	}

	res := &models.Resource{
		OwnerID:     c.GetString("user_id"),
		Name:        body.Name,
		Category:    body.Category,
		Description: body.Description,
		Images:      pq.StringArray(body.Images),
		Quantity:    body.Quantity,
	}
	if err := h.Storage.CreateResource(res); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Donation successful", "resource": res})
}

// ListResources returns all listed resources, optionally filtered by category.
func (h *Handler) ListResources(c *gin.Context) {
	resources, err := h.Storage.ListResources()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if category := c.Query("category"); category != "" {
		resources = lo.Filter(resources, func(r models.Resource, _ int) bool {
			return r.Category == category
		})
	}

	c.JSON(http.StatusOK, resources)
}

// DeleteResource removes a donation. Only the owner may do it over HTTP;
// administrators use the admin CLI.
func (h *Handler) DeleteResource(c *gin.Context) {
	resourceID := c.Param("id")

	res, err := h.Storage.GetResourceByID(resourceID)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if res.OwnerID != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner can remove a resource"})
		return
	}

	if err := h.Storage.DeleteResource(resourceID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resource removed successfully"})
}

// GetProfile aggregates a participant's donations and requests. The request
// entries carry their own metadata snapshots, so they render even after the
// underlying resources are gone.
func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.Param("userId")

	user, err := h.Storage.GetUserByID(userID)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	donated, err := h.Storage.ListResourcesByOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	requested, err := h.Ledger.FindByRequester(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	wanted, err := h.Storage.ListWantedResourcesByOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":                user,
		"donated_resources":   donated,
		"requested_resources": requested,
		"wanted_resources":    wanted,
	})
}

// ListUsers returns all registered participants.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Storage.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUser removes a participant record. Their donations and requests stay
// behind; request rows carry their own snapshots and never cascade.
func (h *Handler) DeleteUser(c *gin.Context) {
	err := h.Storage.DeleteUser(c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User removed successfully"})
}
