// Package httpapi exposes collection management over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"

	"log/slog"

	"github.com/castkit/scenevault/internal/logging"
	"github.com/castkit/scenevault/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager defines the collection operations the API exposes.
type Manager interface {
	List() []string
	Active() string
	Create(ctx context.Context, name string) bool
	Load(ctx context.Context, name string) error
	Duplicate(ctx context.Context, from, to string) error
	Rename(ctx context.Context, newName string) error
	Remove(ctx context.Context, name string) error
	Flush(ctx context.Context) error
	SuggestName(base string) string
}

// Server routes collection requests to a Manager.
type Server struct {
	manager Manager
	logger  *slog.Logger
}

// Option configures the handler.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	metrics prometheus.Gatherer
}

// WithLogger configures a logger for the server.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics mounts a Prometheus scrape endpoint at /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(c *config) {
		c.metrics = g
	}
}

// NewHandler creates the HTTP handler for collection management.
func NewHandler(manager Manager, opts ...Option) http.Handler {
	cfg := &config{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Server{manager: manager, logger: cfg.logger}
	r := chi.NewRouter()

	r.Get("/collections", s.listCollections)
	r.Post("/collections", s.createCollection)
	r.Delete("/collections/{name}", s.removeCollection)
	r.Post("/collections/{name}/activate", s.activateCollection)
	r.Post("/collections/{name}/duplicate", s.duplicateCollection)
	r.Post("/collections/{name}/rename", s.renameCollection)
	r.Post("/save", s.save)
	r.Get("/suggest", s.suggestName)

	if cfg.metrics != nil {
		r.Get("/metrics", promhttp.HandlerFor(cfg.metrics, promhttp.HandlerOpts{}).ServeHTTP)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

type collectionsResponse struct {
	Collections []string `json:"collections"`
	Active      string   `json:"active,omitempty"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type targetRequest struct {
	To string `json:"to"`
}

func (s *Server) listCollections(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, collectionsResponse{
		Collections: s.manager.List(),
		Active:      s.manager.Active(),
	})
}

func (s *Server) createCollection(w http.ResponseWriter, r *http.Request) {
	var body nameRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("create: invalid request body", "error", err)
		return
	}

	if !s.manager.Create(r.Context(), body.Name) {
		http.Error(w, "Invalid collection name", http.StatusUnprocessableEntity)
		return
	}
	s.writeJSON(w, http.StatusCreated, nameRequest{Name: body.Name})
}

func (s *Server) removeCollection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !slices.Contains(s.manager.List(), name) {
		http.Error(w, "Collection not found", http.StatusNotFound)
		return
	}
	if err := s.manager.Remove(r.Context(), name); err != nil {
		http.Error(w, "Remove failed", http.StatusInternalServerError)
		s.logger.Error("remove failed", "collection", name, "error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) activateCollection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.manager.Load(r.Context(), name); err != nil {
		http.Error(w, "Load failed", http.StatusInternalServerError)
		s.logger.Error("load failed", "collection", name, "error", err)
		return
	}
	s.writeJSON(w, http.StatusOK, collectionsResponse{
		Collections: s.manager.List(),
		Active:      s.manager.Active(),
	})
}

func (s *Server) duplicateCollection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	var body targetRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("duplicate: invalid request body", "error", err)
		return
	}

	err := s.manager.Duplicate(r.Context(), name, body.To)
	switch {
	case errors.Is(err, domain.ErrInvalidName):
		http.Error(w, "Invalid collection name", http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "Collection not found", http.StatusNotFound)
	case err != nil:
		http.Error(w, "Duplicate failed", http.StatusInternalServerError)
		s.logger.Error("duplicate failed", "collection", name, "error", err)
	default:
		s.writeJSON(w, http.StatusCreated, nameRequest{Name: body.To})
	}
}

// renameCollection activates the named collection and renames it. Rename
// always targets the active collection, so the load comes first.
func (s *Server) renameCollection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	var body targetRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("rename: invalid request body", "error", err)
		return
	}

	if !slices.Contains(s.manager.List(), name) {
		http.Error(w, "Collection not found", http.StatusNotFound)
		return
	}
	if err := s.manager.Load(r.Context(), name); err != nil {
		http.Error(w, "Load failed", http.StatusInternalServerError)
		s.logger.Error("rename: load failed", "collection", name, "error", err)
		return
	}

	err := s.manager.Rename(r.Context(), body.To)
	switch {
	case errors.Is(err, domain.ErrInvalidName):
		http.Error(w, "Invalid collection name", http.StatusUnprocessableEntity)
	case err != nil:
		http.Error(w, "Rename failed", http.StatusInternalServerError)
		s.logger.Error("rename failed", "collection", name, "error", err)
	default:
		s.writeJSON(w, http.StatusOK, nameRequest{Name: body.To})
	}
}

func (s *Server) save(w http.ResponseWriter, r *http.Request) {
	if err := s.manager.Flush(r.Context()); err != nil {
		http.Error(w, "Save failed", http.StatusInternalServerError)
		s.logger.Error("save failed", "error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) suggestName(w http.ResponseWriter, r *http.Request) {
	base := r.URL.Query().Get("base")
	s.writeJSON(w, http.StatusOK, nameRequest{Name: s.manager.SuggestName(base)})
}
