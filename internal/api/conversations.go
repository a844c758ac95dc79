package api

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/convolens/convolens/internal/bus"
	"github.com/convolens/convolens/internal/store"
)

var supportedFormats = map[string]bool{
	"txt":  true,
	"json": true,
	"csv":  true,
}

func (s *Server) uploadConversation(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field in multipart form")
		return
	}
	defer file.Close()

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if !supportedFormats[format] {
		writeError(w, http.StatusBadRequest, "unsupported file type, expected .txt, .json or .csv")
		return
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	id := uuid.New()
	if err := os.WriteFile(filepath.Join(s.uploadDir, id.String()+"."+format), raw, 0o644); err != nil {
		s.logger.Error("failed to write upload file", "conversation_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store file")
		return
	}

	if err := s.store.CreateConversation(r.Context(), id, header.Filename, format); err != nil {
		s.logger.Error("failed to create conversation", "conversation_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to record conversation")
		return
	}
	if err := s.store.SaveRawTranscript(r.Context(), id, raw); err != nil {
		s.logger.Error("failed to save raw transcript", "conversation_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store file")
		return
	}

	s.logger.Info("conversation uploaded", "conversation_id", id, "filename", header.Filename, "format", format)
	writeJSON(w, http.StatusCreated, map[string]string{
		"id":       id.String(),
		"filename": header.Filename,
		"format":   format,
		"status":   store.StatusUploaded,
	})
}

func (s *Server) listConversations(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	conversations, err := s.store.ListConversations(r.Context(), status)
	if err != nil {
		s.logger.Error("failed to list conversations", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list conversations")
		return
	}
	if conversations == nil {
		conversations = []store.Conversation{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"conversations": conversations})
}

func (s *Server) getConversation(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	c, err := s.store.GetConversation(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// activeStatuses are states in which a new analysis request is rejected
// unless force=true is passed.
var activeStatuses = map[string]bool{
	store.StatusPendingAnalysis:     true,
	store.StatusProcessing:          true,
	store.StatusCompleted:           true,
	store.StatusCompletedWithErrors: true,
}

func (s *Server) requestAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	c, err := s.store.GetConversation(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}

	force := r.URL.Query().Get("force") == "true"
	if activeStatuses[c.Status] && !force {
		writeError(w, http.StatusConflict, "analysis already requested or completed, pass force=true to rerun")
		return
	}

	if err := s.store.UpdateConversationStatus(r.Context(), id, store.StatusPendingAnalysis); err != nil {
		s.logger.Error("failed to update conversation status", "conversation_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to queue analysis")
		return
	}

	if err := s.bus.Publish(bus.SubjectAnalysisRequested, bus.AnalysisRequest{
		ConversationID: id.String(),
		Format:         c.Format,
	}); err != nil {
		s.logger.Error("failed to publish analysis request", "conversation_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to queue analysis")
		return
	}

	s.logger.Info("analysis requested", "conversation_id", id, "force", force)
	writeJSON(w, http.StatusAccepted, map[string]string{
		"id":     id.String(),
		"status": store.StatusPendingAnalysis,
	})
}

func (s *Server) getResult(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	c, err := s.store.GetConversation(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}

	switch c.Status {
	case store.StatusUploaded, store.StatusPendingAnalysis, store.StatusProcessing:
		writeJSON(w, http.StatusAccepted, map[string]string{
			"id":     id.String(),
			"status": c.Status,
		})
		return
	}

	data, _, err := s.store.GetAnalysisResult(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "analysis result not found")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) getResultSection(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	c, err := s.store.GetConversation(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}
	switch c.Status {
	case store.StatusUploaded, store.StatusPendingAnalysis, store.StatusProcessing:
		writeJSON(w, http.StatusAccepted, map[string]string{
			"id":     id.String(),
			"status": c.Status,
		})
		return
	}

	data, _, err := s.store.GetAnalysisResult(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "analysis result not found")
		return
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Error("stored result is not valid JSON", "conversation_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "stored result is unreadable")
		return
	}

	// Accept kebab- or snake-case section names.
	section := strings.ReplaceAll(strings.ToLower(chi.URLParam(r, "section")), "-", "_")
	raw, ok := doc[section]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown result section")
		return
	}

	writeJSON(w, http.StatusOK, map[string]json.RawMessage{section: raw})
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid conversation id")
		return uuid.Nil, false
	}
	return id, true
}
