package worker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/convolens/convolens/internal/analysis"
	"github.com/convolens/convolens/internal/bus"
	"github.com/convolens/convolens/internal/store"
)

type fakeStore struct {
	conversations map[uuid.UUID]*store.Conversation
	raw           map[uuid.UUID][]byte
	statuses      map[uuid.UUID][]string
	results       map[uuid.UUID][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		conversations: map[uuid.UUID]*store.Conversation{},
		raw:           map[uuid.UUID][]byte{},
		statuses:      map[uuid.UUID][]string{},
		results:       map[uuid.UUID][]byte{},
	}
}

func (f *fakeStore) GetConversation(_ context.Context, id uuid.UUID) (*store.Conversation, error) {
	c, ok := f.conversations[id]
	if !ok {
		return nil, errors.New("conversation not found")
	}
	return c, nil
}

func (f *fakeStore) GetRawTranscript(_ context.Context, id uuid.UUID) ([]byte, error) {
	data, ok := f.raw[id]
	if !ok {
		return nil, errors.New("raw transcript not found")
	}
	return data, nil
}

func (f *fakeStore) UpdateConversationStatus(_ context.Context, id uuid.UUID, status string) error {
	f.statuses[id] = append(f.statuses[id], status)
	return nil
}

func (f *fakeStore) UpsertAnalysisResult(_ context.Context, id uuid.UUID, data []byte) error {
	f.results[id] = data
	return nil
}

func (f *fakeStore) lastStatus(id uuid.UUID) string {
	ss := f.statuses[id]
	if len(ss) == 0 {
		return ""
	}
	return ss[len(ss)-1]
}

type fakePublisher struct {
	published []struct {
		subject string
		data    any
	}
}

func (f *fakePublisher) Publish(subject string, data any) error {
	f.published = append(f.published, struct {
		subject string
		data    any
	}{subject, data})
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func setupJob(t *testing.T, format, content string) (*Worker, *fakeStore, *fakePublisher, uuid.UUID) {
	t.Helper()
	id := uuid.New()

	fs := newFakeStore()
	fs.conversations[id] = &store.Conversation{ID: id, Format: format, Status: store.StatusPendingAnalysis}
	if content != "" {
		fs.raw[id] = []byte(content)
	}
	fp := &fakePublisher{}
	return New(fs, fp, testLogger()), fs, fp, id
}

func TestRun_CompletesAndPersistsReport(t *testing.T) {
	w, fs, fp, id := setupJob(t, "txt", "Alice: You are an idiot and clearly stupid.\nBob: Let us look at the evidence instead.\n")

	if err := w.Run(context.Background(), id, "txt"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	statuses := fs.statuses[id]
	if len(statuses) < 2 || statuses[0] != store.StatusProcessing {
		t.Fatalf("expected processing as first transition, got %v", statuses)
	}
	if got := fs.lastStatus(id); got != store.StatusCompleted {
		t.Errorf("final status = %q, want %q", got, store.StatusCompleted)
	}

	var report analysis.Report
	if err := json.Unmarshal(fs.results[id], &report); err != nil {
		t.Fatalf("stored result is not a report: %v", err)
	}
	if report.Overview.TotalMessages != 2 {
		t.Errorf("total_messages = %d, want 2", report.Overview.TotalMessages)
	}
	if report.Status != analysis.StatusCompleted {
		t.Errorf("report status = %q, want %q", report.Status, analysis.StatusCompleted)
	}

	if len(fp.published) != 1 {
		t.Fatalf("expected one completion event, got %d", len(fp.published))
	}
	evt := fp.published[0]
	if evt.subject != bus.SubjectAnalysisCompleted {
		t.Errorf("subject = %q, want %q", evt.subject, bus.SubjectAnalysisCompleted)
	}
	done := evt.data.(bus.AnalysisCompleted)
	if done.ConversationID != id.String() || done.Status != store.StatusCompleted {
		t.Errorf("unexpected completion event: %+v", done)
	}
}

func TestRun_InvalidJSONMarksFailed(t *testing.T) {
	w, fs, fp, id := setupJob(t, "json", "{not valid json")

	if err := w.Run(context.Background(), id, "json"); err != nil {
		t.Fatalf("extraction failure should not propagate: %v", err)
	}

	if got := fs.lastStatus(id); got != store.StatusFailed {
		t.Errorf("final status = %q, want %q", got, store.StatusFailed)
	}

	var doc map[string]string
	if err := json.Unmarshal(fs.results[id], &doc); err != nil {
		t.Fatalf("stored error result is not JSON: %v", err)
	}
	if doc["error"] == "" {
		t.Error("expected an error message in the stored result")
	}

	if len(fp.published) != 1 {
		t.Fatalf("expected one failure event, got %d", len(fp.published))
	}
	done := fp.published[0].data.(bus.AnalysisCompleted)
	if done.Status != store.StatusFailed {
		t.Errorf("event status = %q, want %q", done.Status, store.StatusFailed)
	}
}

func TestRun_MissingRawTranscriptMarksFailed(t *testing.T) {
	w, fs, _, id := setupJob(t, "txt", "")

	if err := w.Run(context.Background(), id, "txt"); err == nil {
		t.Fatal("expected error for missing raw transcript")
	}
	if got := fs.lastStatus(id); got != store.StatusFailed {
		t.Errorf("final status = %q, want %q", got, store.StatusFailed)
	}
}

func TestRun_EmptyTranscriptCompletesWithErrors(t *testing.T) {
	w, fs, _, id := setupJob(t, "txt", "\n\n")

	if err := w.Run(context.Background(), id, "txt"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := fs.lastStatus(id); got != store.StatusCompletedWithErrors {
		t.Errorf("final status = %q, want %q", got, store.StatusCompletedWithErrors)
	}

	var report analysis.Report
	if err := json.Unmarshal(fs.results[id], &report); err != nil {
		t.Fatalf("stored result is not a report: %v", err)
	}
	if len(report.Errors) == 0 {
		t.Error("expected section errors for an empty transcript")
	}
}

func TestRun_UnknownConversation(t *testing.T) {
	fs := newFakeStore()
	w := New(fs, &fakePublisher{}, testLogger())

	if err := w.Run(context.Background(), uuid.New(), "txt"); err == nil {
		t.Fatal("expected error for unknown conversation")
	}
}

func TestHandleAnalysisRequested_BadPayloadIgnored(t *testing.T) {
	fs := newFakeStore()
	fp := &fakePublisher{}
	w := New(fs, fp, testLogger())

	w.HandleAnalysisRequested(bus.SubjectAnalysisRequested, []byte("not json"))
	w.HandleAnalysisRequested(bus.SubjectAnalysisRequested, []byte(`{"conversation_id":"nope","format":"txt"}`))

	if len(fp.published) != 0 {
		t.Errorf("expected no events for bad payloads, got %d", len(fp.published))
	}
}
