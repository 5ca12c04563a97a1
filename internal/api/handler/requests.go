package handler

import (
	"errors"
	"net/http"

	"givego/backend/internal/ledger"

	"github.com/gin-gonic/gin"
)

// CreateRequest claims a resource for the authenticated user. The ledger's
// error taxonomy maps onto HTTP statuses here; none of these are retried.
func (h *Handler) CreateRequest(c *gin.Context) {
	requesterID := c.GetString("user_id")
	resourceID := c.Param("id")

	req, err := h.Ledger.CreateRequest(requesterID, resourceID)
	switch {
	case errors.Is(err, ledger.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found."})
		return
	case errors.Is(err, ledger.ErrSelfRequest):
		c.JSON(http.StatusForbidden, gin.H{"error": "You cannot request your own donated resource."})
		return
	case errors.Is(err, ledger.ErrDuplicateRequest):
		c.JSON(http.StatusConflict, gin.H{"error": "You have already requested this resource."})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Resource request submitted successfully.",
		"request": req,
	})
}

// ListOwnRequests returns the authenticated user's requests, newest first.
func (h *Handler) ListOwnRequests(c *gin.Context) {
	requests, err := h.Ledger.FindByRequester(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// ListResourceRequests returns every request recorded against a resource.
func (h *Handler) ListResourceRequests(c *gin.Context) {
	requests, err := h.Ledger.FindByResource(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}
	c.JSON(http.StatusOK, requests)
}
