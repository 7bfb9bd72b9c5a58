// api/handlers/analytics_handlers.go
package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio/api/models"
)

// Placeholder figures reported until session tracking populates
// AnalyticsSession records.
const (
	placeholderAvgSessionDuration = 120.5
	placeholderBounceRate         = 0.35
)

// EventStore is the analytics persistence surface the handlers depend on.
type EventStore interface {
	InsertPageView(ctx context.Context, view models.PageView) error
	InsertInteraction(ctx context.Context, interaction models.UserInteraction) error
	CountPageViews(ctx context.Context, start, end time.Time) (uint64, error)
	UniqueVisitors(ctx context.Context, start, end time.Time) (uint64, error)
	PopularPages(ctx context.Context, start, end time.Time, limit uint64) ([]models.PageStat, error)
	TopReferrers(ctx context.Context, start, end time.Time, limit uint64) ([]models.ReferrerStat, error)
	DailyViews(ctx context.Context, start, end time.Time) ([]models.DailyViews, error)
	TopActions(ctx context.Context, start, end time.Time, limit uint64) ([]models.ActionStat, error)
	GetPageViews(ctx context.Context, page string, start, end time.Time, limit uint64) ([]models.PageView, error)
	GetInteractions(ctx context.Context, action, page string, start, end time.Time, limit uint64) ([]models.UserInteraction, error)
}

// ContactStats is the slice of the contact-message store the summary and
// dashboard need.
type ContactStats interface {
	CountContactMessages(ctx context.Context, start, end time.Time) (uint64, error)
	RecentContactMessages(ctx context.Context, start, end time.Time, limit int) ([]models.ContactMessage, error)
}

type AnalyticsHandlers struct {
	Events   EventStore
	Contacts ContactStats
}

func NewAnalyticsHandlers(events EventStore, contacts ContactStats) *AnalyticsHandlers {
	return &AnalyticsHandlers{
		Events:   events,
		Contacts: contacts,
	}
}

// clientIP prefers the first X-Forwarded-For entry over the transport peer
// address.
func clientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		if i := strings.Index(fwd, ","); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	return c.ClientIP()
}

// window resolves a trailing [now - days, now] range.
func window(days int) (time.Time, time.Time) {
	end := time.Now().UTC()
	return end.AddDate(0, 0, -days), end
}

func intQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid '" + name + "' parameter. Must be a non-negative integer."})
		return 0, false
	}
	return value, true
}

// limitQuery parses the result cap. Zero is rejected rather than meaning
// "unlimited".
func limitQuery(c *gin.Context, fallback int) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'limit' parameter. Must be a positive integer."})
		return 0, false
	}
	return value, true
}

func (h *AnalyticsHandlers) TrackPageView(c *gin.Context) {
	var input models.PageViewCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Printf("Error binding page view JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ip := clientIP(c)
	view := models.PageView{
		ID:        uuid.New().String(),
		Page:      input.Page,
		UserAgent: input.UserAgent,
		IPAddress: &ip,
		Referrer:  input.Referrer,
		SessionID: input.SessionID,
		Timestamp: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	if err := h.Events.InsertPageView(ctx, view); err != nil {
		log.Printf("Error inserting page view: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Page view tracked successfully", "id": view.ID})
}

func (h *AnalyticsHandlers) TrackInteraction(c *gin.Context) {
	var input models.UserInteractionCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Printf("Error binding interaction JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	interaction := models.UserInteraction{
		ID:        uuid.New().String(),
		Action:    input.Action,
		Element:   input.Element,
		Page:      input.Page,
		SessionID: input.SessionID,
		Data:      input.Data,
		Timestamp: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	if err := h.Events.InsertInteraction(ctx, interaction); err != nil {
		log.Printf("Error inserting interaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Interaction tracked successfully", "id": interaction.ID})
}

// buildSummary recomputes the full summary for the trailing window. Nothing is
// cached; every call hits the stores.
func (h *AnalyticsHandlers) buildSummary(ctx context.Context, days int) (*models.AnalyticsSummary, error) {
	start, end := window(days)

	totalViews, err := h.Events.CountPageViews(ctx, start, end)
	if err != nil {
		return nil, err
	}

	uniqueVisitors, err := h.Events.UniqueVisitors(ctx, start, end)
	if err != nil {
		return nil, err
	}

	popularPages, err := h.Events.PopularPages(ctx, start, end, 10)
	if err != nil {
		return nil, err
	}

	topReferrers, err := h.Events.TopReferrers(ctx, start, end, 10)
	if err != nil {
		return nil, err
	}

	contactSubmissions, err := h.Contacts.CountContactMessages(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &models.AnalyticsSummary{
		TotalViews:             totalViews,
		UniqueVisitors:         uniqueVisitors,
		PopularPages:           popularPages,
		TopReferrers:           topReferrers,
		AvgSessionDuration:     placeholderAvgSessionDuration,
		BounceRate:             placeholderBounceRate,
		ContactFormSubmissions: contactSubmissions,
		DateRange:              models.DateRange{Start: start, End: end},
	}, nil
}

func (h *AnalyticsHandlers) GetSummary(c *gin.Context) {
	days, ok := intQuery(c, "days", 30)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	summary, err := h.buildSummary(ctx, days)
	if err != nil {
		log.Printf("Error building analytics summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *AnalyticsHandlers) GetPageViews(c *gin.Context) {
	days, ok := intQuery(c, "days", 7)
	if !ok {
		return
	}
	limit, ok := limitQuery(c, 100)
	if !ok {
		return
	}
	page := c.Query("page")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	start, end := window(days)
	views, err := h.Events.GetPageViews(ctx, page, start, end, uint64(limit))
	if err != nil {
		log.Printf("Error getting page views: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *AnalyticsHandlers) GetInteractions(c *gin.Context) {
	days, ok := intQuery(c, "days", 7)
	if !ok {
		return
	}
	limit, ok := limitQuery(c, 100)
	if !ok {
		return
	}
	action := c.Query("action")
	page := c.Query("page")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	start, end := window(days)
	interactions, err := h.Events.GetInteractions(ctx, action, page, start, end, uint64(limit))
	if err != nil {
		log.Printf("Error getting interactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, interactions)
}

// GetDashboard composes the 30-day summary, the daily time series, the top
// interaction actions and the latest redacted contact messages. Sub-queries
// run independently; any failure fails the whole response.
func (h *AnalyticsHandlers) GetDashboard(c *gin.Context) {
	const dashboardDays = 30

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	start, end := window(dashboardDays)

	summary, err := h.buildSummary(ctx, dashboardDays)
	if err != nil {
		log.Printf("Error building dashboard summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	dailyViews, err := h.Events.DailyViews(ctx, start, end)
	if err != nil {
		log.Printf("Error getting daily views: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	topInteractions, err := h.Events.TopActions(ctx, start, end, 10)
	if err != nil {
		log.Printf("Error getting top interactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recentContacts, err := h.Contacts.RecentContactMessages(ctx, start, end, 5)
	if err != nil {
		log.Printf("Error getting recent contacts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":          summary,
		"daily_views":      dailyViews,
		"top_interactions": topInteractions,
		"recent_contacts":  recentContacts,
		"last_updated":     time.Now().UTC(),
	})
}
