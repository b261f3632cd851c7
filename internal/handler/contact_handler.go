package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"zarcaro/internal/models"
)

// ContactNotifier sends the operator notification for a contact submission.
type ContactNotifier interface {
	NotifyContact(name, email, message string) error
}

type ContactHandler struct {
	contacts ContactStore
	notifier ContactNotifier
}

func NewContactHandler(contacts ContactStore, notifier ContactNotifier) *ContactHandler {
	return &ContactHandler{contacts: contacts, notifier: notifier}
}

// Submit stores the message, then notifies the operator best-effort. The
// notification never changes the outcome once persistence has succeeded.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and message are required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()
	msg := &models.ContactMessage{Name: req.Name, Email: req.Email, Message: req.Message}
	if err := h.contacts.Create(ctx, msg); err != nil {
		log.Printf("[Contact] save failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save message"})
		return
	}

	if err := h.notifier.NotifyContact(req.Name, req.Email, req.Message); err != nil {
		log.Printf("[Contact] failed to send contact email: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact form submitted"})
}
