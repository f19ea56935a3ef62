package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"servismart/models"
	"servismart/services/contact"
	"servismart/utils"
)

// ContactHandler exposes the contact-message feature over HTTP.
type ContactHandler struct {
	Service contact.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(svc contact.ContactService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

// SubmitContactHandler stores a new inquiry message.
func (h *ContactHandler) SubmitContactHandler(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid contact payload", err.Error())
		return
	}

	created, err := h.Service.Submit(c.Request.Context(), msg)
	if err != nil {
		var missing contact.MissingFieldError
		if errors.As(err, &missing) {
			utils.JSONError(c, http.StatusBadRequest, "Name, email and message are required", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send message", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully",
		"contact": created,
	})
}

// ListContactsHandler returns all stored inquiry messages, newest first.
func (h *ContactHandler) ListContactsHandler(c *gin.Context) {
	messages, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch contacts", err.Error())
		return
	}
	c.JSON(http.StatusOK, messages)
}

// DeleteContactHandler removes one inquiry message by id.
func (h *ContactHandler) DeleteContactHandler(c *gin.Context) {
	var body struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.ID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Message ID is required", "")
		return
	}

	if err := h.Service.Delete(c.Request.Context(), body.ID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Message not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete message", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
