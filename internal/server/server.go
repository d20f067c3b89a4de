// Package server exposes the expression evaluator over HTTP.
//
// The API is intentionally small: GET /eval evaluates a single expression
// passed as a query parameter, /healthz reports liveness, and /metrics
// serves Prometheus metrics. All handlers are wrapped with security and
// metrics middleware.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hausp/bigcalc/internal/config"
	apperrors "github.com/hausp/bigcalc/internal/errors"
	"github.com/hausp/bigcalc/internal/expr"
	"github.com/hausp/bigcalc/internal/logging"
	"github.com/hausp/bigcalc/internal/orchestration"
)

const (
	// ReadHeaderTimeout bounds how long the server waits for request headers.
	ReadHeaderTimeout = 5 * time.Second
	// ShutdownTimeout bounds graceful shutdown on context cancellation.
	ShutdownTimeout = 10 * time.Second
)

// Server is the HTTP front end for expression evaluation.
type Server struct {
	cfg      config.AppConfig
	security SecurityConfig
	metrics  *Metrics
	logger   logging.Logger
	tracer   trace.Tracer
}

// New creates a Server with the default security configuration.
//
// Parameters:
//   - cfg: The application configuration (timeout and shift limits apply per request).
//   - logger: The structured logger for request logging.
//
// Returns:
//   - *Server: The configured server, ready for Run.
func New(cfg config.AppConfig, logger logging.Logger) *Server {
	return &Server{
		cfg:      cfg,
		security: DefaultSecurityConfig(),
		metrics:  NewMetrics(),
		logger:   logger,
		tracer:   otel.Tracer("bigcalc/server"),
	}
}

// Handler builds the HTTP routing table with all middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/eval", s.wrap(s.handleEval))
	mux.HandleFunc("/healthz", s.wrap(s.handleHealth))
	mux.HandleFunc("/metrics", s.wrap(s.handleMetrics))
	return mux
}

// wrap applies the standard middleware chain to a handler.
func (s *Server) wrap(h http.HandlerFunc) http.HandlerFunc {
	return SecurityMiddleware(s.security, s.metricsMiddleware(h))
}

// Run starts the HTTP server and blocks until the context is canceled or
// the listener fails. Shutdown is graceful within ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", logging.String("addr", s.cfg.Addr))
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.logger.Info("server stopped")
		return nil
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// metricsMiddleware tracks active and total requests around a handler.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		next(w, r)
	}
}

// EvalResponse is the JSON body returned for successful evaluations.
type EvalResponse struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
	Bits       int    `json:"bits"`
	Digits     int    `json:"digits"`
	DurationMs float64 `json:"duration_ms"`
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleEval evaluates the expression from the "expr" query parameter.
func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	s.metrics.CountRequest("eval")

	input := r.URL.Query().Get("expr")
	if input == "" {
		s.writeError(w, http.StatusBadRequest, "missing expr parameter")
		return
	}
	if len(input) > s.security.MaxExprLength {
		s.metrics.CountEvalError("too_long")
		s.writeError(w, http.StatusRequestEntityTooLarge, "expression too long")
		return
	}

	ctx, span := s.tracer.Start(r.Context(), "eval",
		trace.WithAttributes(attribute.Int("expr.length", len(input))))
	defer span.End()

	result := orchestration.EvaluateExpression(ctx, input, s.cfg, nil)
	s.metrics.ObserveEvalDuration(result.Duration.Seconds())

	if result.Err != nil {
		span.RecordError(result.Err)
		span.SetStatus(codes.Error, result.Err.Error())
		s.writeEvalError(w, input, result.Err)
		return
	}

	resultStr := result.Result.String()
	digits := len(resultStr)
	if result.Result.Sign() < 0 {
		digits--
	}

	s.logger.Info("expression evaluated",
		logging.Int("expr_length", len(input)),
		logging.Int("result_bits", result.Result.BitLen()),
		logging.Dur("duration", result.Duration))

	s.writeJSON(w, http.StatusOK, EvalResponse{
		Expression: input,
		Result:     resultStr,
		Bits:       result.Result.BitLen(),
		Digits:     digits,
		DurationMs: float64(result.Duration.Microseconds()) / 1000,
	})
}

// writeEvalError maps evaluation failures to HTTP status codes.
func (s *Server) writeEvalError(w http.ResponseWriter, input string, err error) {
	var syntaxErr *expr.SyntaxError
	var rangeErr *expr.RangeError
	var timeoutErr apperrors.TimeoutError

	switch {
	case errors.As(err, &syntaxErr):
		s.metrics.CountEvalError("syntax")
		s.writeError(w, http.StatusBadRequest, syntaxErr.Error())
	case errors.As(err, &rangeErr):
		s.metrics.CountEvalError("range")
		s.writeError(w, http.StatusBadRequest, rangeErr.Error())
	case errors.As(err, &timeoutErr):
		s.metrics.CountEvalError("timeout")
		s.writeError(w, http.StatusGatewayTimeout, timeoutErr.Error())
	default:
		s.metrics.CountEvalError("internal")
		s.logger.Error("evaluation failed", err, logging.Int("expr_length", len(input)))
		s.writeError(w, http.StatusInternalServerError, "evaluation failed")
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMetrics serves Prometheus metrics on GET only.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Info("rejected metrics request", logging.String("method", r.Method))
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// writeJSON encodes v as the response body with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encoding failed", err)
	}
}

// writeError writes a JSON error body with the given status.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, ErrorResponse{Error: msg})
}
