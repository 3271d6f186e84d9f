package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	safeenv "github.com/nicocarlier/safe-env-lite"
	"github.com/nicocarlier/safe-env-lite/pkg/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// Result is the outcome of the validation pass the server reports on.
// It is captured once at startup and never changes.
type Result struct {
	Schema    schema.Schema
	Env       *schema.Env
	Err       error
	CheckedAt time.Time
}

// Valid reports whether the pass succeeded.
func (r Result) Valid() bool {
	return r.Err == nil && r.Env != nil
}

var _ ServerInterface = (*Server)(nil)

// Server exposes a read-only view of a Result.
type Server struct {
	result   Result
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithGatherer mounts /metrics for g.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets the logger used for encoding failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates a new HTTP handler reporting on result.
func NewHandler(result Result, opts ...Option) http.Handler {
	server := &Server{result: result, logger: slog.Default()}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		data, err := rawSpec()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		if _, err := w.Write(data); err != nil {
			server.logger.Error("openapi response write failed", "error", err)
		}
	})
	if server.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(server.gatherer, promhttp.HandlerOpts{}))
	}
	return HandlerFromMux(server, r)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	if !s.result.Valid() {
		count := len(schema.Problems(s.result.Err))
		s.writeJSON(w, http.StatusServiceUnavailable, Health{Status: Invalid, Problems: &count})
		return
	}
	s.writeJSON(w, http.StatusOK, Health{Status: Ok})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, Info{
		App:       "safeenv-http",
		Version:   strings.TrimSpace(safeenv.Version),
		CheckedAt: s.result.CheckedAt,
		Variables: s.result.Schema.Names(),
	})
}

// GetEnv handles the GET /env request. Secret values are masked.
func (s *Server) GetEnv(w http.ResponseWriter, r *http.Request) {
	if !s.result.Valid() {
		http.Error(w, "environment is invalid, see /problems", http.StatusServiceUnavailable)
		return
	}
	s.writeJSON(w, http.StatusOK, s.result.Env)
}

// GetProblems handles the GET /problems request, optionally filtered by code.
// Raw values of secret variables are dropped.
func (s *Server) GetProblems(w http.ResponseWriter, r *http.Request, params GetProblemsParams) {
	problems := make([]Problem, 0)
	for _, p := range s.result.Schema.Redact(schema.Problems(s.result.Err)) {
		code := ProblemCode(p.Code)
		if params.Code != nil && *params.Code != code {
			continue
		}
		problems = append(problems, Problem{Key: p.Key, Message: p.Message, Value: p.Value, Code: code})
	}
	s.writeJSON(w, http.StatusOK, problems)
}

// GetSchema handles the GET /schema request with a Markdown reference.
func (s *Server) GetSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	if _, err := w.Write([]byte(s.result.Schema.Describe())); err != nil {
		s.logger.Error("GetSchema response write failed", "error", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}
