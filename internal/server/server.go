// Package server exposes the solver over a small JSON HTTP API.
//
// Endpoints:
//
//	GET  /healthz  liveness probe
//	POST /solve    {"numbers":[2,3,5],"target":13} -> matches + count
//	POST /count    {"numbers":[...],"from":1,"to":50,"min":1} -> count rows
//
// Every request is tagged with a generated request ID, returned in the
// X-Request-ID header and attached to all log lines for the request.
package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ldo/make-expr-answer/pkg/errors"
	"github.com/ldo/make-expr-answer/pkg/expr"
	"github.com/ldo/make-expr-answer/pkg/query"
)

// Server handles solver API requests.
type Server struct {
	runner *query.Runner
	solver expr.Solver
	logger *log.Logger
}

// New creates a server around a query runner. solver is used for the
// /solve endpoint, the runner (with its cache) for /count.
func New(runner *query.Runner, solver expr.Solver, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(nil)
	}
	return &Server{runner: runner, solver: solver, logger: logger}
}

// Router builds the chi router with all routes and middleware registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Get("/healthz", s.handleHealth)
	r.Post("/solve", s.handleSolve)
	r.Post("/count", s.handleCount)
	return r
}

// requestID tags each request with a UUID for log correlation.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request served",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type solveRequest struct {
	Numbers []int `json:"numbers"`
	Target  int   `json:"target"`
}

type solveResponse struct {
	Target  int      `json:"target"`
	Count   int      `json:"count"`
	Answers []string `json:"answers"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding request body"))
		return
	}

	answers := []string{}
	if err := s.solver.Solve(req.Numbers, req.Target, func(match string) {
		answers = append(answers, match)
	}); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, solveResponse{
		Target:  req.Target,
		Count:   len(answers),
		Answers: answers,
	})
}

type countRequest struct {
	Numbers []int `json:"numbers"`
	From    int   `json:"from"`
	To      int   `json:"to"`
	Min     int   `json:"min"`
	Max     int   `json:"max"`
}

type countResponse struct {
	Rows []query.TargetCount `json:"rows"`
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	var req countRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding request body"))
		return
	}

	rows, err := s.runner.ScanTargets(r.Context(), req.Numbers, req.From, req.To,
		query.Window{Min: req.Min, Max: req.Max})
	if err != nil {
		writeError(w, err)
		return
	}
	if rows == nil {
		rows = []query.TargetCount{}
	}

	writeJSON(w, http.StatusOK, countResponse{Rows: rows})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)
	if strings.HasPrefix(string(code), "INVALID_") {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(code),
	})
}
