package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/medcalc"
	"github.com/aretw0/medcalc/pkg/domain"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
)

// Service defines the calculator operations the HTTP surface exposes.
type Service interface {
	List(ctx context.Context) ([]domain.Summary, error)
	Get(ctx context.Context, slug string) (domain.Detail, error)
	Run(ctx context.Context, slug string, payload map[string]any) (domain.Response, error)
}

// Server binds a Service to HTTP handlers.
type Server struct {
	Service Service
	spec    *openapi3.T
}

// HandlerOption configures NewHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	metrics http.Handler
}

// WithMetrics mounts h at GET /metrics.
func WithMetrics(h http.Handler) HandlerOption {
	return func(c *handlerConfig) {
		c.metrics = h
	}
}

const emptyPayloadDetail = "Request body must be a JSON object with calculator inputs."

// NewHandler creates a new HTTP handler for the service.
func NewHandler(svc Service, opts ...HandlerOption) http.Handler {
	cfg := &handlerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	server := &Server{
		Service: svc,
		spec:    NewSpec(strings.TrimSpace(medcalc.Version)),
	}
	r := chi.NewRouter()

	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/openapi.json", server.GetSpec)
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if cfg.metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.metrics)
	}

	r.Route("/api/calculators", func(r chi.Router) {
		r.Get("/", server.ListCalculators)
		r.Get("/{slug}", server.GetCalculator)
		r.Post("/{slug}", server.RunCalculator)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>MedCalc API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.json',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// ListCalculators handles the GET /api/calculators request.
func (s *Server) ListCalculators(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.Service.List(r.Context())
	if err != nil {
		slog.Error("ListCalculators failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, fmt.Sprintf("Calculator catalog unavailable: %v", err))
		return
	}
	if summaries == nil {
		summaries = []domain.Summary{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"calculators": summaries})
}

// GetCalculator handles the GET /api/calculators/{slug} request.
func (s *Server) GetCalculator(w http.ResponseWriter, r *http.Request) {
	detail, err := s.Service.Get(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// RunCalculator handles the POST /api/calculators/{slug} request.
func (s *Server) RunCalculator(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		slog.Warn("RunCalculator: Invalid request body", "error", err)
		writeDetail(w, http.StatusBadRequest, emptyPayloadDetail)
		return
	}

	resp, err := s.Service.Run(r.Context(), chi.URLParam(r, "slug"), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "medcalc-http",
		"version":     strings.TrimSpace(medcalc.Version),
		"api_version": s.spec.Info.Version,
	})
}

// GetSpec handles the GET /openapi.json request.
func (s *Server) GetSpec(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.spec)
}

// StatusFor maps service errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmptyPayload), errors.Is(err, domain.ErrMissingInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCalculatorNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status := StatusFor(err)

	var detail string
	var missing *domain.MissingInputError
	var execErr *domain.ExecutionError
	switch {
	case errors.Is(err, domain.ErrEmptyPayload):
		detail = emptyPayloadDetail
	case errors.As(err, &missing):
		detail = fmt.Sprintf("Missing required field: '%s'", missing.Field)
	case status == http.StatusNotFound:
		detail = err.Error()
	case errors.As(err, &execErr):
		detail = fmt.Sprintf("Calculator failed: %v", execErr.Err)
	default:
		detail = fmt.Sprintf("Calculator failed: %v", err)
	}

	if status == http.StatusInternalServerError {
		slog.Error("calculator request failed", "error", err)
	}
	writeDetail(w, status, detail)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
