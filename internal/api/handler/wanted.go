package handler

import (
	"net/http"

	"givego/backend/internal/config"
	"givego/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

type wantedRequest struct {
	Name           string   `json:"name" binding:"required"`
	Category       string   `json:"category"`
	CustomCategory string   `json:"custom_category"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	Images         []string `json:"images"`
	Quantity       int      `json:"quantity" binding:"required,min=1"`
}

// CreateWantedResource publishes a need listing for the authenticated user.
// The custom category is stored only when the category is "others".
func (h *Handler) CreateWantedResource(c *gin.Context) {
	var body wantedRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(body.Images) > config.MaxResourceImages {
		c.JSON(http.StatusBadRequest, gin.H{"error": "too many images"})
		return
	}

	customCategory := ""
	if body.Category == "others" {
		customCategory = body.CustomCategory
	}

	want := &models.WantedResource{
		OwnerID:        c.GetString("user_id"),
		Name:           body.Name,
		Category:       body.Category,
		CustomCategory: customCategory,
		Description:    body.Description,
		Location:       body.Location,
		Images:         pq.StringArray(body.Images),
		Quantity:       body.Quantity,
	}
	if err := h.Storage.CreateWantedResource(want); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Request successful", "wanted_resource": want})
}

// ListWantedResources returns every published need listing.
func (h *Handler) ListWantedResources(c *gin.Context) {
	wants, err := h.Storage.ListWantedResources()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, wants)
}
