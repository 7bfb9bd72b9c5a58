// api/handlers/portfolio_handlers.go
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio/api/models"
	"portfolio/api/store"
	"portfolio/api/utils"
)

// DocumentStore is the portfolio/contact persistence surface the handlers
// depend on.
type DocumentStore interface {
	GetPortfolio(ctx context.Context) (*models.Portfolio, error)
	ReplacePortfolio(ctx context.Context, portfolio *models.Portfolio) error
	CreateContactMessage(ctx context.Context, msg models.ContactMessage) error
	ListContactMessages(ctx context.Context, limit int) ([]models.ContactMessage, error)
	MarkMessageRead(ctx context.Context, id string) error
}

type PortfolioHandlers struct {
	Store DocumentStore
}

func NewPortfolioHandlers(s DocumentStore) *PortfolioHandlers {
	return &PortfolioHandlers{Store: s}
}

func (h *PortfolioHandlers) GetPortfolio(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	portfolio, err := h.Store.GetPortfolio(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio not found"})
			return
		}
		log.Printf("Error getting portfolio: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, portfolio)
}

// UpdatePortfolio replaces the whole document; missing required nested
// objects are rejected by binding before the store is touched.
func (h *PortfolioHandlers) UpdatePortfolio(c *gin.Context) {
	var portfolio models.Portfolio
	if err := c.ShouldBindJSON(&portfolio); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid portfolio body", "details": err.Error()})
		return
	}

	if portfolio.ID == "" {
		portfolio.ID = uuid.New().String()
	}
	if portfolio.CreatedAt.IsZero() {
		portfolio.CreatedAt = time.Now().UTC()
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.Store.ReplacePortfolio(ctx, &portfolio); err != nil {
		log.Printf("Error replacing portfolio: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Portfolio updated successfully"})
}

func (h *PortfolioHandlers) CreateContactMessage(c *gin.Context) {
	var input models.ContactMessageCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	normalized, vErr := utils.ValidateContactMessage(input)
	if vErr != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Message, "field": vErr.Field})
		return
	}

	msg := models.ContactMessage{
		ID:        uuid.New().String(),
		Name:      normalized.Name,
		Email:     normalized.Email,
		Subject:   normalized.Subject,
		Message:   normalized.Message,
		CreatedAt: time.Now().UTC(),
		Read:      false,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.Store.CreateContactMessage(ctx, msg); err != nil {
		log.Printf("Error creating contact message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully", "id": msg.ID})
}

func (h *PortfolioHandlers) GetContactMessages(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	messages, err := h.Store.ListContactMessages(ctx, 100)
	if err != nil {
		log.Printf("Error listing contact messages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *PortfolioHandlers) MarkMessageRead(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.Store.MarkMessageRead(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		log.Printf("Error marking message %s read: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}
