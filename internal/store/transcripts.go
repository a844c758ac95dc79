package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SaveRawTranscript stores the uploaded file bytes so the worker can run
// independently of the upload host's filesystem.
func (s *Store) SaveRawTranscript(ctx context.Context, conversationID uuid.UUID, data []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO raw_transcripts (conversation_id, data)
		VALUES ($1, $2)
		ON CONFLICT (conversation_id) DO UPDATE SET data = EXCLUDED.data`,
		conversationID, data,
	)
	if err != nil {
		return fmt.Errorf("save raw transcript: %w", err)
	}
	return nil
}

// GetRawTranscript fetches the uploaded file bytes for a conversation.
func (s *Store) GetRawTranscript(ctx context.Context, conversationID uuid.UUID) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `
		SELECT data FROM raw_transcripts WHERE conversation_id = $1`,
		conversationID,
	).Scan(&data)
	if err != nil {
		return nil, fmt.Errorf("get raw transcript %s: %w", conversationID, err)
	}
	return data, nil
}
