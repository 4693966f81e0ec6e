// Package server implements the flowlayout HTTP API.
//
// The API exposes the layout pipeline to diagram editors over HTTP:
//
//	POST /api/v1/layout     compute node positions for a posted diagram
//	POST /api/v1/recommend  suggest an algorithm for a posted diagram
//	GET  /healthz           health check
//
// Requests and responses are JSON. Validation problems map to 400, anything
// else to 500, with an {"error": "..."} body either way.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/troubleduxj/flowlayout/pkg/errors"
	"github.com/troubleduxj/flowlayout/pkg/graph"
	"github.com/troubleduxj/flowlayout/pkg/pipeline"
)

// maxBodyBytes caps request bodies. Diagrams are small; a megabyte is
// thousands of nodes.
const maxBodyBytes = 1 << 20

// Server handles the layout HTTP API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates the API handler backed by the given runner.
// A nil logger falls back to log.Default().
func New(runner *pipeline.Runner, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/recommend", s.handleRecommend)
	})

	return r
}

// =============================================================================
// Handlers
// =============================================================================

// layoutRequest is the body of POST /api/v1/layout.
type layoutRequest struct {
	Diagram graph.Diagram    `json:"diagram"`
	Options pipeline.Options `json:"options"`
}

// layoutResponse is the body of a successful POST /api/v1/layout.
type layoutResponse struct {
	Layout graph.Layout `json:"layout"`
	Cached bool         `json:"cached"`
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	req.Options.Logger = s.logger
	doc, hit, err := s.runner.ComputeLayoutWithCacheInfo(r.Context(), req.Diagram, req.Options)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}

	s.writeJSON(w, http.StatusOK, layoutResponse{Layout: doc, Cached: hit})
}

// recommendRequest is the body of POST /api/v1/recommend.
type recommendRequest struct {
	Diagram graph.Diagram `json:"diagram"`
}

// recommendResponse is the body of a successful POST /api/v1/recommend.
type recommendResponse struct {
	Algorithm string `json:"algorithm"`
	Reason    string `json:"reason"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	rec, err := s.runner.Recommend(req.Diagram)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}

	s.writeJSON(w, http.StatusOK, recommendResponse{
		Algorithm: rec.Algorithm.String(),
		Reason:    rec.Reason,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// Helpers
// =============================================================================

// decodeJSON reads a JSON body with a size cap and strict field checking.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// statusFor maps pipeline errors to HTTP status codes.
// Validation problems are the caller's fault; everything else is ours.
func statusFor(err error) int {
	if errors.IsValidation(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger.Warn("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err)
	s.writeJSON(w, status, map[string]string{"error": errors.UserMessage(err)})
}
