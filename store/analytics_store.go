// api/store/analytics_store.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"portfolio/api/database"
	"portfolio/api/models"
)

type AnalyticsStore struct {
	DB *database.ClickHouseClient
}

func NewAnalyticsStore(chClient *database.ClickHouseClient) *AnalyticsStore {
	return &AnalyticsStore{
		DB: chClient,
	}
}

// InsertPageView persists a single page-view event.
func (s *AnalyticsStore) InsertPageView(ctx context.Context, view models.PageView) error {
	batch, err := s.DB.Conn.PrepareBatch(ctx, `
		INSERT INTO page_views (
			id, page, user_agent, ip_address, referrer, session_id, timestamp, duration
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare page view insert: %w", err)
	}

	err = batch.Append(
		view.ID,
		view.Page,
		view.UserAgent,
		view.IPAddress,
		view.Referrer,
		view.SessionID,
		view.Timestamp,
		view.Duration,
	)
	if err != nil {
		return fmt.Errorf("failed to append page view: %w", err)
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to insert page view: %w", err)
	}
	return nil
}

// InsertInteraction persists a single interaction event. The free-form data
// map is stored as JSON text; an absent map becomes an empty string.
func (s *AnalyticsStore) InsertInteraction(ctx context.Context, interaction models.UserInteraction) error {
	var data string
	if interaction.Data != nil {
		raw, err := json.Marshal(interaction.Data)
		if err != nil {
			return fmt.Errorf("failed to encode interaction data: %w", err)
		}
		data = string(raw)
	}

	batch, err := s.DB.Conn.PrepareBatch(ctx, `
		INSERT INTO user_interactions (
			id, action, element, page, session_id, data, timestamp
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare interaction insert: %w", err)
	}

	err = batch.Append(
		interaction.ID,
		interaction.Action,
		interaction.Element,
		interaction.Page,
		interaction.SessionID,
		data,
		interaction.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append interaction: %w", err)
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to insert interaction: %w", err)
	}
	return nil
}

// CountPageViews counts page views inside [start, end].
func (s *AnalyticsStore) CountPageViews(ctx context.Context, start, end time.Time) (uint64, error) {
	var count uint64
	query := `SELECT count() FROM page_views WHERE timestamp >= ? AND timestamp <= ?`
	if err := s.DB.Conn.QueryRow(ctx, query, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count page views: %w", err)
	}
	return count, nil
}

// UniqueVisitors counts distinct (ip_address, user_agent) pairs in the window.
// NULL optionals coalesce to '' so views posted without a user agent still
// count as a visitor; uniqExact skips rows where any argument is NULL.
func (s *AnalyticsStore) UniqueVisitors(ctx context.Context, start, end time.Time) (uint64, error) {
	var unique uint64
	query := `
		SELECT uniqExact(ifNull(ip_address, ''), ifNull(user_agent, ''))
		FROM page_views
		WHERE timestamp >= ? AND timestamp <= ?
	`
	if err := s.DB.Conn.QueryRow(ctx, query, start, end).Scan(&unique); err != nil {
		return 0, fmt.Errorf("failed to count unique visitors: %w", err)
	}
	return unique, nil
}

// PopularPages returns the top pages by view count in the window, each with
// the number of distinct client IPs seen for that page.
func (s *AnalyticsStore) PopularPages(ctx context.Context, start, end time.Time, limit uint64) ([]models.PageStat, error) {
	if limit == 0 {
		limit = 10
	}

	query := `
		SELECT page, count() AS views, uniqExact(ifNull(ip_address, '')) AS unique_visitors
		FROM page_views
		WHERE timestamp >= ? AND timestamp <= ?
		GROUP BY page
		ORDER BY views DESC
		LIMIT ?
	`
	rows, err := s.DB.Conn.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular pages: %w", err)
	}
	defer rows.Close()

	var results []models.PageStat
	for rows.Next() {
		var stat models.PageStat
		if err := rows.Scan(&stat.Page, &stat.Views, &stat.UniqueVisitors); err != nil {
			log.Printf("Error scanning row for popular pages: %v", err)
			continue
		}
		results = append(results, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during popular pages query: %w", err)
	}
	return results, nil
}

// TopReferrers returns the most frequent non-empty referrers in the window.
func (s *AnalyticsStore) TopReferrers(ctx context.Context, start, end time.Time, limit uint64) ([]models.ReferrerStat, error) {
	if limit == 0 {
		limit = 10
	}

	query := `
		SELECT referrer, count() AS hits
		FROM page_views
		WHERE timestamp >= ? AND timestamp <= ?
			AND referrer IS NOT NULL AND referrer != ''
		GROUP BY referrer
		ORDER BY hits DESC
		LIMIT ?
	`
	rows, err := s.DB.Conn.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top referrers: %w", err)
	}
	defer rows.Close()

	var results []models.ReferrerStat
	for rows.Next() {
		var referrer *string
		var count uint64
		if err := rows.Scan(&referrer, &count); err != nil {
			log.Printf("Error scanning row for top referrers: %v", err)
			continue
		}
		if referrer == nil {
			continue
		}
		results = append(results, models.ReferrerStat{Referrer: *referrer, Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during top referrers query: %w", err)
	}
	return results, nil
}

// DailyViews buckets window page views per calendar day, ascending. Days with
// no activity produce no bucket.
func (s *AnalyticsStore) DailyViews(ctx context.Context, start, end time.Time) ([]models.DailyViews, error) {
	query := `
		SELECT toDate(timestamp) AS day, count() AS views, uniqExact(ifNull(ip_address, '')) AS unique_visitors
		FROM page_views
		WHERE timestamp >= ? AND timestamp <= ?
		GROUP BY day
		ORDER BY day ASC
	`
	rows, err := s.DB.Conn.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily views: %w", err)
	}
	defer rows.Close()

	var results []models.DailyViews
	for rows.Next() {
		var day models.DailyViews
		if err := rows.Scan(&day.Date, &day.Views, &day.UniqueVisitors); err != nil {
			log.Printf("Error scanning row for daily views: %v", err)
			continue
		}
		results = append(results, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during daily views query: %w", err)
	}
	return results, nil
}

// TopActions returns the most frequent interaction actions in the window.
func (s *AnalyticsStore) TopActions(ctx context.Context, start, end time.Time, limit uint64) ([]models.ActionStat, error) {
	if limit == 0 {
		limit = 10
	}

	query := `
		SELECT action, count() AS hits
		FROM user_interactions
		WHERE timestamp >= ? AND timestamp <= ?
		GROUP BY action
		ORDER BY hits DESC
		LIMIT ?
	`
	rows, err := s.DB.Conn.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top actions: %w", err)
	}
	defer rows.Close()

	var results []models.ActionStat
	for rows.Next() {
		var stat models.ActionStat
		if err := rows.Scan(&stat.Action, &stat.Count); err != nil {
			log.Printf("Error scanning row for top actions: %v", err)
			continue
		}
		results = append(results, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during top actions query: %w", err)
	}
	return results, nil
}

// GetPageViews returns raw page views in the window, newest first, optionally
// filtered to an exact page.
func (s *AnalyticsStore) GetPageViews(ctx context.Context, page string, start, end time.Time, limit uint64) ([]models.PageView, error) {
	query := `
		SELECT id, page, user_agent, ip_address, referrer, session_id, timestamp, duration
		FROM page_views
		WHERE timestamp >= ? AND timestamp <= ?
	`
	args := []interface{}{start, end}

	if page != "" {
		query += ` AND page = ?`
		args = append(args, page)
	}
	query += ` ORDER BY timestamp DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.DB.Conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query page views: %w", err)
	}
	defer rows.Close()

	views := []models.PageView{}
	for rows.Next() {
		var view models.PageView
		err := rows.Scan(
			&view.ID,
			&view.Page,
			&view.UserAgent,
			&view.IPAddress,
			&view.Referrer,
			&view.SessionID,
			&view.Timestamp,
			&view.Duration,
		)
		if err != nil {
			log.Printf("Error scanning row for page views: %v", err)
			continue
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during page views query: %w", err)
	}
	return views, nil
}

// GetInteractions returns raw interactions in the window, newest first,
// optionally filtered by action and/or page.
func (s *AnalyticsStore) GetInteractions(ctx context.Context, action, page string, start, end time.Time, limit uint64) ([]models.UserInteraction, error) {
	query := `
		SELECT id, action, element, page, session_id, data, timestamp
		FROM user_interactions
		WHERE timestamp >= ? AND timestamp <= ?
	`
	args := []interface{}{start, end}

	if action != "" {
		query += ` AND action = ?`
		args = append(args, action)
	}
	if page != "" {
		query += ` AND page = ?`
		args = append(args, page)
	}
	query += ` ORDER BY timestamp DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.DB.Conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}
	defer rows.Close()

	interactions := []models.UserInteraction{}
	for rows.Next() {
		var interaction models.UserInteraction
		var data string
		err := rows.Scan(
			&interaction.ID,
			&interaction.Action,
			&interaction.Element,
			&interaction.Page,
			&interaction.SessionID,
			&data,
			&interaction.Timestamp,
		)
		if err != nil {
			log.Printf("Error scanning row for interactions: %v", err)
			continue
		}
		if data != "" {
			if err := json.Unmarshal([]byte(data), &interaction.Data); err != nil {
				log.Printf("Error decoding interaction data (ID: %s): %v", interaction.ID, err)
			}
		}
		interactions = append(interactions, interaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during interactions query: %w", err)
	}
	return interactions, nil
}
