// api/models/analytics.go
package models

import "time"

// PageView is a single page-view event. Optional fields stay nil when the
// client never sent them.
type PageView struct {
	ID        string    `json:"id"`
	Page      string    `json:"page"`
	UserAgent *string   `json:"user_agent,omitempty"`
	IPAddress *string   `json:"ip_address,omitempty"`
	Referrer  *string   `json:"referrer,omitempty"`
	SessionID *string   `json:"session_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Duration  *int64    `json:"duration,omitempty"` // seconds spent on page
}

// UserInteraction is a click/scroll/download style event with an open-ended
// data payload.
type UserInteraction struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Element   *string        `json:"element,omitempty"`
	Page      string         `json:"page"`
	SessionID *string        `json:"session_id,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// AnalyticsSession models a visitor session. No endpoint populates it yet;
// the summary still reports placeholder duration/bounce figures instead of
// deriving them from sessions.
type AnalyticsSession struct {
	ID                string     `json:"id"`
	SessionID         string     `json:"session_id"`
	UserAgent         *string    `json:"user_agent,omitempty"`
	IPAddress         *string    `json:"ip_address,omitempty"`
	StartTime         time.Time  `json:"start_time"`
	EndTime           *time.Time `json:"end_time,omitempty"`
	TotalDuration     *int64     `json:"total_duration,omitempty"`
	PagesVisited      []string   `json:"pages_visited"`
	InteractionsCount int        `json:"interactions_count"`
	IsBounce          bool       `json:"is_bounce"`
}

// PageStat is one popular-pages entry: views and distinct client IPs for a
// single page inside the window.
type PageStat struct {
	Page           string `json:"page"`
	Views          uint64 `json:"views"`
	UniqueVisitors uint64 `json:"unique_visitors"`
}

type ReferrerStat struct {
	Referrer string `json:"referrer"`
	Count    uint64 `json:"count"`
}

type ActionStat struct {
	Action string `json:"action"`
	Count  uint64 `json:"count"`
}

// DailyViews is one calendar-day bucket of the dashboard time series.
type DailyViews struct {
	Date           time.Time `json:"date"`
	Views          uint64    `json:"views"`
	UniqueVisitors uint64    `json:"unique_visitors"`
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AnalyticsSummary is computed per request and never stored.
type AnalyticsSummary struct {
	TotalViews             uint64         `json:"total_views"`
	UniqueVisitors         uint64         `json:"unique_visitors"`
	PopularPages           []PageStat     `json:"popular_pages"`
	TopReferrers           []ReferrerStat `json:"top_referrers"`
	AvgSessionDuration     float64        `json:"avg_session_duration"`
	BounceRate             float64        `json:"bounce_rate"`
	ContactFormSubmissions uint64         `json:"contact_form_submissions"`
	DateRange              DateRange      `json:"date_range"`
}

// PageViewCreate is the tracking payload; the server fills id, ip_address and
// timestamp.
type PageViewCreate struct {
	Page      string  `json:"page" binding:"required"`
	UserAgent *string `json:"user_agent"`
	Referrer  *string `json:"referrer"`
	SessionID *string `json:"session_id"`
}

type UserInteractionCreate struct {
	Action    string         `json:"action" binding:"required"`
	Element   *string        `json:"element"`
	Page      string         `json:"page" binding:"required"`
	SessionID *string        `json:"session_id"`
	Data      map[string]any `json:"data"`
}
