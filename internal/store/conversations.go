package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Conversation lifecycle statuses.
const (
	StatusUploaded            = "uploaded"
	StatusPendingAnalysis     = "pending_analysis"
	StatusProcessing          = "processing"
	StatusCompleted           = "completed"
	StatusCompletedWithErrors = "completed_with_errors"
	StatusFailed              = "failed"
)

// Conversation is one uploaded transcript and its analysis lifecycle state.
type Conversation struct {
	ID               uuid.UUID `json:"id"`
	OriginalFilename string    `json:"original_filename"`
	Format           string    `json:"format"` // txt, json or csv
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CreateConversation inserts a new conversation record in status uploaded.
func (s *Store) CreateConversation(ctx context.Context, id uuid.UUID, filename, format string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO conversations (id, original_filename, format, status)
		VALUES ($1, $2, $3, $4)`,
		id, filename, format, StatusUploaded,
	)
	if err != nil {
		return fmt.Errorf("insert conversation: %w", err)
	}
	return nil
}

// GetConversation fetches one conversation by id.
func (s *Store) GetConversation(ctx context.Context, id uuid.UUID) (*Conversation, error) {
	var c Conversation
	err := s.pool.QueryRow(ctx, `
		SELECT id, original_filename, format, status, created_at, updated_at
		FROM conversations WHERE id = $1`, id,
	).Scan(&c.ID, &c.OriginalFilename, &c.Format, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get conversation %s: %w", id, err)
	}
	return &c, nil
}

// ListConversations returns conversations, newest first, optionally filtered
// by status.
func (s *Store) ListConversations(ctx context.Context, status string) ([]Conversation, error) {
	query := `
		SELECT id, original_filename, format, status, created_at, updated_at
		FROM conversations`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	var out []Conversation
	for rows.Next() {
		var c Conversation
		if err := rows.Scan(&c.ID, &c.OriginalFilename, &c.Format, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversations: %w", err)
	}
	return out, nil
}

// UpdateConversationStatus transitions a conversation's lifecycle status.
func (s *Store) UpdateConversationStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE conversations SET status = $1, updated_at = now() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("update conversation status: %w", err)
	}
	return nil
}
