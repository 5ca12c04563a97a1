package handler

import (
	"net/http"
	"time"

	"givego/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact stores a contact-form submission.
func (h *Handler) SubmitContact(c *gin.Context) {
	var body contactRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
		return
	}

	msg := &models.ContactMessage{
		UserID:      c.GetString("user_id"),
		Name:        body.Name,
		Email:       body.Email,
		Subject:     body.Subject,
		Message:     body.Message,
		SubmittedAt: time.Now(),
	}
	if err := h.Storage.SaveContactMessage(msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Your message has been submitted successfully."})
}
