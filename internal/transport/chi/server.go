// Package chi exposes the HTTP API: search, agent Q&A, contact submissions,
// health and metrics. Handlers are hand-written over chi v5 and translate
// domain sentinel errors to HTTP statuses through an error handler chain.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/shikshasetu/examsearch/internal/domain"
	agentuc "github.com/shikshasetu/examsearch/internal/usecase/agent"
	contactuc "github.com/shikshasetu/examsearch/internal/usecase/contact"
	healthuc "github.com/shikshasetu/examsearch/internal/usecase/health"
	searchuc "github.com/shikshasetu/examsearch/internal/usecase/search"
)

// SearchService is the search aggregator contract the transport consumes.
type SearchService interface {
	Search(ctx context.Context, req searchuc.Request) (*searchuc.Response, error)
	QuickSuggestions(ctx context.Context, query string) []string
}

// AgentService answers exam questions.
type AgentService interface {
	Answer(ctx context.Context, question, language string) (*agentuc.Response, error)
}

// ContactService accepts contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, identity string, sub contactuc.Submission) (string, error)
}

// HealthService reports component health.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server implements the HTTP API handlers.
type Server struct {
	search        SearchService
	agent         AgentService
	contact       ContactService
	health        HealthService
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search SearchService,
	agent AgentService,
	contact ContactService,
	health HealthService,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:  search,
		agent:   agent,
		contact: contact,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrQueryTooShort, http.StatusBadRequest),
		sentinelHandler(domain.ErrInvalidSubmission, http.StatusBadRequest),
		sentinelHandler(domain.ErrRateLimited, http.StatusTooManyRequests),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway),
		sentinelHandler(domain.ErrGenerationFailed, http.StatusBadGateway),
	}
	return s
}

// Routes builds the router for the API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/search", s.handleSearch)
		r.Get("/search", s.handleQuickSearch)
		r.Post("/agent", s.handleAgent)
		r.Post("/contact", s.handleContact)
	})
	r.Get("/healthz", s.handleHealth)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	return r
}

type searchRequest struct {
	Query    string         `json:"query"`
	Language string         `json:"language"`
	Filters  domain.Filters `json:"filters"`
	Limit    *int           `json:"limit"`
}

type searchResponse struct {
	*searchuc.Response
	Success bool `json:"success"`
}

// handleSearch handles POST /api/v1/search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	limit := -1
	if req.Limit != nil {
		limit = *req.Limit
	}

	resp, err := s.search.Search(r.Context(), searchuc.Request{
		Query:    req.Query,
		Language: req.Language,
		Filters:  req.Filters,
		Limit:    limit,
	})
	if err != nil {
		s.handleDomainError(w, err, "search failed")
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Response: resp, Success: true})
}

// handleQuickSearch handles GET /api/v1/search. It serves the lightweight
// typeahead path: title substring matches only, no scoring.
func (s *Server) handleQuickSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	suggestions := s.search.QuickSuggestions(r.Context(), query)

	writeJSON(w, http.StatusOK, map[string]any{
		"suggestions": suggestions,
		"success":     true,
	})
}

type agentRequest struct {
	Question string `json:"question"`
	Language string `json:"language"`
}

type agentResponse struct {
	*agentuc.Response
	Success bool `json:"success"`
}

// handleAgent handles POST /api/v1/agent.
func (s *Server) handleAgent(w http.ResponseWriter, r *http.Request) {
	var req agentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

	resp, err := s.agent.Answer(r.Context(), req.Question, req.Language)
	if err != nil {
		s.handleDomainError(w, err, "agent failed")
		return
	}

	writeJSON(w, http.StatusOK, agentResponse{Response: resp, Success: true})
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// handleContact handles POST /api/v1/contact.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	id, err := s.contact.Submit(r.Context(), clientIP(r), contactuc.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		s.handleDomainError(w, err, "contact submission failed")
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{
		"id":      id,
		"success": true,
	})
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status":   report.Status,
		"embedder": report.EmbedderMode,
		"checks":   report.Checks,
	})
}

// clientIP extracts the caller identity for rate limiting, preferring the
// first X-Forwarded-For hop when a proxy sits in front.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"error":   message,
		"success": false,
	})
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error, fallback string) string {
	sentinels := []error{
		domain.ErrQueryTooShort,
		domain.ErrInvalidSubmission,
		domain.ErrRateLimited,
		domain.ErrEmbeddingProviderError,
		domain.ErrGenerationFailed,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return fallback
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error, fallback string) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err, fallback)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, fallback)
}
