// Package api exposes the HTTP surface: conversation upload, analysis
// dispatch, lifecycle queries and report retrieval.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/convolens/convolens/internal/store"
)

// Store is the subset of the conversation store the API needs.
type Store interface {
	CreateConversation(ctx context.Context, id uuid.UUID, filename, format string) error
	SaveRawTranscript(ctx context.Context, conversationID uuid.UUID, data []byte) error
	GetConversation(ctx context.Context, id uuid.UUID) (*store.Conversation, error)
	ListConversations(ctx context.Context, status string) ([]store.Conversation, error)
	UpdateConversationStatus(ctx context.Context, id uuid.UUID, status string) error
	GetAnalysisResult(ctx context.Context, conversationID uuid.UUID) ([]byte, time.Time, error)
}

// Publisher dispatches analysis jobs to the worker.
type Publisher interface {
	Publish(subject string, data any) error
}

type Server struct {
	router        *chi.Mux
	port          int
	store         Store
	bus           Publisher
	uploadDir     string
	maxUploadSize int64
	logger        *slog.Logger
}

type Options struct {
	Port          int
	APIToken      string
	UploadDir     string
	MaxUploadSize int64
}

func NewServer(opts Options, st Store, b Publisher, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:        router,
		port:          opts.Port,
		store:         st,
		bus:           b,
		uploadDir:     opts.UploadDir,
		maxUploadSize: opts.MaxUploadSize,
		logger:        logger,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/convolens/status", s.status)

	router.Route("/api/v1/conversations", func(r chi.Router) {
		r.Use(bearerAuth(opts.APIToken))
		r.Post("/", s.uploadConversation)
		r.Get("/", s.listConversations)
		r.Get("/{id}", s.getConversation)
		r.Post("/{id}/analyze", s.requestAnalysis)
		r.Get("/{id}/result", s.getResult)
		r.Get("/{id}/results/{section}", s.getResultSection)
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "convolens",
		"status":  "ready",
	})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
