package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rpggio/itemboard/internal/domain/item"
)

// ItemService defines the item operations exposed over HTTP.
type ItemService interface {
	List(ctx context.Context) ([]item.Item, error)
	Create(ctx context.Context, draft item.Draft) (*item.Item, error)
	Update(ctx context.Context, id string, draft item.Draft) (*item.Item, error)
	Delete(ctx context.Context, id string) error
}

// Option customizes the router built by NewServer.
type Option func(*Server)

// WithLogger sets the logger used for request logs and unexpected errors.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithMetrics instruments every route and serves GET /metrics.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithMCP mounts an MCP handler at /mcp.
func WithMCP(h http.Handler) Option {
	return func(s *Server) { s.mcp = h }
}

// Server wires HTTP handlers.
type Server struct {
	items   ItemService
	logger  *slog.Logger
	metrics *Metrics
	mcp     http.Handler
}

// NewServer creates an HTTP server router with middleware.
func NewServer(items ItemService, opts ...Option) *chi.Mux {
	srv := &Server{items: items}
	for _, opt := range opts {
		opt(srv)
	}
	if srv.logger == nil {
		srv.logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(srv.logger))
	if srv.metrics != nil {
		r.Use(srv.metrics.Middleware)
	}
	r.Use(middleware.Recoverer)

	r.Get("/health", srv.handleHealth)
	if srv.metrics != nil {
		r.Method(http.MethodGet, "/metrics", srv.metrics.Handler())
	}
	if srv.mcp != nil {
		r.Handle("/mcp", srv.mcp)
	}

	r.Get("/items", srv.handleList)
	r.Post("/items", srv.handleCreate)
	r.Put("/items/{id}", srv.handleUpdate)
	r.Delete("/items/{id}", srv.handleDelete)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := s.items.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, items)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	draft, err := decodeDraft(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	created, err := s.items.Create(r.Context(), draft)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	WriteData(w, http.StatusCreated, created)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	draft, err := decodeDraft(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	updated, err := s.items.Update(r.Context(), chi.URLParam(r, "id"), draft)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, updated)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.items.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, apiErr := MapError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
	}
	WriteError(w, status, apiErr)
}

func decodeDraft(r *http.Request) (item.Draft, error) {
	var draft item.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		return item.Draft{}, fmt.Errorf("%w: malformed request body: %v", item.ErrInvalidInput, err)
	}
	return draft, nil
}
