package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UpsertAnalysisResult writes the full report document for a conversation,
// replacing any previous result.
func (s *Store) UpsertAnalysisResult(ctx context.Context, conversationID uuid.UUID, data []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO analysis_results (conversation_id, data)
		VALUES ($1, $2)
		ON CONFLICT (conversation_id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		conversationID, data,
	)
	if err != nil {
		return fmt.Errorf("upsert analysis result: %w", err)
	}
	return nil
}

// GetAnalysisResult fetches the stored report document for a conversation.
func (s *Store) GetAnalysisResult(ctx context.Context, conversationID uuid.UUID) ([]byte, time.Time, error) {
	var data []byte
	var updatedAt time.Time
	err := s.pool.QueryRow(ctx, `
		SELECT data, updated_at FROM analysis_results WHERE conversation_id = $1`,
		conversationID,
	).Scan(&data, &updatedAt)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("get analysis result %s: %w", conversationID, err)
	}
	return data, updatedAt, nil
}
