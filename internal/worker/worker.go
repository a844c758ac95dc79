// Package worker consumes analysis job events, runs the engine over the
// stored transcript and persists the resulting report.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/convolens/convolens/internal/analysis"
	"github.com/convolens/convolens/internal/bus"
	"github.com/convolens/convolens/internal/store"
	"github.com/convolens/convolens/internal/transcript"
)

// Store is the subset of the conversation store the worker needs.
type Store interface {
	GetConversation(ctx context.Context, id uuid.UUID) (*store.Conversation, error)
	GetRawTranscript(ctx context.Context, conversationID uuid.UUID) ([]byte, error)
	UpdateConversationStatus(ctx context.Context, id uuid.UUID, status string) error
	UpsertAnalysisResult(ctx context.Context, conversationID uuid.UUID, data []byte) error
}

// Publisher emits job lifecycle events.
type Publisher interface {
	Publish(subject string, data any) error
}

// Worker runs the analysis pipeline for requested conversations.
type Worker struct {
	store  Store
	bus    Publisher
	logger *slog.Logger
}

func New(s Store, b Publisher, logger *slog.Logger) *Worker {
	return &Worker{store: s, bus: b, logger: logger}
}

// HandleAnalysisRequested is the bus handler for analysis job events.
func (w *Worker) HandleAnalysisRequested(subject string, data []byte) {
	ctx := context.Background()

	var req bus.AnalysisRequest
	if err := json.Unmarshal(data, &req); err != nil {
		w.logger.Error("failed to parse analysis request", "error", err)
		return
	}

	id, err := uuid.Parse(req.ConversationID)
	if err != nil {
		w.logger.Error("invalid conversation id", "conversation_id", req.ConversationID, "error", err)
		return
	}

	if err := w.Run(ctx, id, req.Format); err != nil {
		w.logger.Error("analysis run failed", "conversation_id", id, "error", err)
	}
}

// Run executes one analysis job end to end: load, normalize, analyze,
// persist. Section-level analysis errors do not fail the job; only an
// extraction failure marks the conversation failed.
func (w *Worker) Run(ctx context.Context, id uuid.UUID, format string) error {
	if _, err := w.store.GetConversation(ctx, id); err != nil {
		return fmt.Errorf("load conversation: %w", err)
	}

	if err := w.store.UpdateConversationStatus(ctx, id, store.StatusProcessing); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}

	w.logger.Info("analysis started", "conversation_id", id, "format", format)

	raw, err := w.store.GetRawTranscript(ctx, id)
	if err != nil {
		w.failWith(ctx, id, fmt.Sprintf("load raw transcript: %v", err))
		return fmt.Errorf("load raw transcript: %w", err)
	}

	tr, err := transcript.Normalize(raw, format)
	if err != nil {
		var ee *transcript.ExtractionError
		if errors.As(err, &ee) {
			w.failWith(ctx, id, ee.Error())
			return nil
		}
		w.failWith(ctx, id, err.Error())
		return err
	}

	report := analysis.Analyze(tr)

	doc, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := w.store.UpsertAnalysisResult(ctx, id, doc); err != nil {
		if serr := w.store.UpdateConversationStatus(ctx, id, store.StatusFailed); serr != nil {
			w.logger.Error("failed to mark conversation failed", "conversation_id", id, "error", serr)
		}
		return fmt.Errorf("save report: %w", err)
	}

	status := store.StatusCompleted
	if report.Status == analysis.StatusCompletedWithErrors {
		status = store.StatusCompletedWithErrors
	}
	if err := w.store.UpdateConversationStatus(ctx, id, status); err != nil {
		return fmt.Errorf("mark %s: %w", status, err)
	}

	if err := w.bus.Publish(bus.SubjectAnalysisCompleted, bus.AnalysisCompleted{
		ConversationID: id.String(),
		Status:         status,
		ErrorCount:     len(report.Errors),
	}); err != nil {
		w.logger.Warn("failed to publish completion event", "conversation_id", id, "error", err)
	}

	w.logger.Info("analysis finished",
		"conversation_id", id,
		"status", status,
		"errors", len(report.Errors),
	)
	return nil
}

// failWith records an extraction-level failure: the conversation is marked
// failed and the stored result carries only the error message.
func (w *Worker) failWith(ctx context.Context, id uuid.UUID, msg string) {
	doc, _ := json.Marshal(map[string]string{"error": msg})
	if err := w.store.UpsertAnalysisResult(ctx, id, doc); err != nil {
		w.logger.Error("failed to save error result", "conversation_id", id, "error", err)
	}
	if err := w.store.UpdateConversationStatus(ctx, id, store.StatusFailed); err != nil {
		w.logger.Error("failed to mark conversation failed", "conversation_id", id, "error", err)
	}
	if err := w.bus.Publish(bus.SubjectAnalysisCompleted, bus.AnalysisCompleted{
		ConversationID: id.String(),
		Status:         store.StatusFailed,
		ErrorCount:     1,
	}); err != nil {
		w.logger.Warn("failed to publish failure event", "conversation_id", id, "error", err)
	}
}
