// api/store/portfolio_store.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"portfolio/api/models"
)

// ErrNotFound is returned when the requested document does not exist.
var ErrNotFound = errors.New("not found")

type PortfolioStore struct {
	db *sql.DB
}

// NewPortfolioStore creates a new PortfolioStore instance.
func NewPortfolioStore(db *sql.DB) *PortfolioStore {
	return &PortfolioStore{db: db}
}

// GetPortfolio reads the single portfolio document. Returns ErrNotFound when
// the seed has not run and nothing was ever written.
func (s *PortfolioStore) GetPortfolio(ctx context.Context) (*models.Portfolio, error) {
	var raw []byte
	query := `SELECT data FROM portfolio WHERE slot = 1;`
	err := s.db.QueryRowContext(ctx, query).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}

	var portfolio models.Portfolio
	if err := json.Unmarshal(raw, &portfolio); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio document: %w", err)
	}
	return &portfolio, nil
}

// ReplacePortfolio overwrites the whole portfolio document, creating it when
// absent. updated_at is refreshed on every call; there is no partial merge.
func (s *PortfolioStore) ReplacePortfolio(ctx context.Context, portfolio *models.Portfolio) error {
	portfolio.UpdatedAt = time.Now().UTC()

	raw, err := json.Marshal(portfolio)
	if err != nil {
		return fmt.Errorf("failed to encode portfolio document: %w", err)
	}

	query := `
		INSERT INTO portfolio (slot, data, updated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (slot) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at;
	`
	if _, err := s.db.ExecContext(ctx, query, raw, portfolio.UpdatedAt); err != nil {
		return fmt.Errorf("failed to replace portfolio: %w", err)
	}
	return nil
}

// CreateContactMessage inserts a validated contact message. The caller assigns
// id and created_at; read always starts false.
func (s *PortfolioStore) CreateContactMessage(ctx context.Context, msg models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, created_at, read)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE);
	`
	_, err := s.db.ExecContext(ctx, query, msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message, msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// ListContactMessages returns messages newest first, capped at limit.
func (s *PortfolioStore) ListContactMessages(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, created_at, read
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var msg models.ContactMessage
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.CreatedAt, &msg.Read); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error listing contact messages: %w", err)
	}
	return messages, nil
}

// MarkMessageRead flips read to true. Unknown ids return ErrNotFound; marking
// an already-read message again succeeds.
func (s *PortfolioStore) MarkMessageRead(ctx context.Context, id string) error {
	query := `UPDATE contact_messages SET read = TRUE WHERE id = $1;`
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountContactMessages counts submissions inside [start, end].
func (s *PortfolioStore) CountContactMessages(ctx context.Context, start, end time.Time) (uint64, error) {
	var count uint64
	query := `SELECT COUNT(*) FROM contact_messages WHERE created_at >= $1 AND created_at <= $2;`
	if err := s.db.QueryRowContext(ctx, query, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return count, nil
}

// RecentContactMessages returns the latest messages in the window with the
// message body left out for privacy.
func (s *PortfolioStore) RecentContactMessages(ctx context.Context, start, end time.Time, limit int) ([]models.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, created_at, read
		FROM contact_messages
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at DESC
		LIMIT $3;
	`
	rows, err := s.db.QueryContext(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent contact messages: %w", err)
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var msg models.ContactMessage
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.CreatedAt, &msg.Read); err != nil {
			return nil, fmt.Errorf("failed to scan recent contact message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error listing recent contact messages: %w", err)
	}
	return messages, nil
}
