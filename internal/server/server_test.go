package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hausp/bigcalc/internal/config"
)

func testServerConfig() config.AppConfig {
	return config.AppConfig{
		Timeout:  10 * time.Second,
		MaxShift: 1 << 20,
		Addr:     ":0",
	}
}

func newTestServer() *Server {
	return New(testServerConfig(), newTestLogger())
}

func TestHandleEval(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantResult string
	}{
		{
			name:       "simple addition",
			query:      "expr=2%2B3",
			wantStatus: http.StatusOK,
			wantResult: "5",
		},
		{
			name:       "precedence",
			query:      "expr=2%2B3*4",
			wantStatus: http.StatusOK,
			wantResult: "14",
		},
		{
			name:       "large shift",
			query:      "expr=1<<64",
			wantStatus: http.StatusOK,
			wantResult: "18446744073709551616",
		},
		{
			name:       "comparison yields one",
			query:      "expr=3>2",
			wantStatus: http.StatusOK,
			wantResult: "1",
		},
		{
			name:       "negative result",
			query:      "expr=2-5",
			wantStatus: http.StatusOK,
			wantResult: "-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/eval?"+tt.query, http.NoBody)
			rec := httptest.NewRecorder()

			s.handleEval(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}

			var resp EvalResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON response: %v", err)
			}
			if resp.Result != tt.wantResult {
				t.Errorf("result = %q, want %q", resp.Result, tt.wantResult)
			}
			if resp.Digits == 0 {
				t.Error("digits should be reported")
			}
		})
	}
}

func TestHandleEvalErrors(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantSubstr string
	}{
		{
			name:       "missing parameter",
			query:      "",
			wantStatus: http.StatusBadRequest,
			wantSubstr: "missing expr",
		},
		{
			name:       "syntax error",
			query:      "expr=1%2B",
			wantStatus: http.StatusBadRequest,
			wantSubstr: "syntax error",
		},
		{
			name:       "single equals",
			query:      "expr=1=2",
			wantStatus: http.StatusBadRequest,
			wantSubstr: "did you mean",
		},
		{
			name:       "shift count over limit",
			query:      "expr=1<<9999999",
			wantStatus: http.StatusBadRequest,
			wantSubstr: "shift count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/eval?"+tt.query, http.NoBody)
			rec := httptest.NewRecorder()

			s.handleEval(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}

			var resp ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON response: %v", err)
			}
			if !strings.Contains(resp.Error, tt.wantSubstr) {
				t.Errorf("error = %q, want substring %q", resp.Error, tt.wantSubstr)
			}
		})
	}
}

func TestHandleEvalRejectsLongExpression(t *testing.T) {
	s := newTestServer()
	s.security.MaxExprLength = 16

	req := httptest.NewRequest("GET", "/eval?expr="+strings.Repeat("1", 32), http.NoBody)
	rec := httptest.NewRecorder()

	s.handleEval(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestHandleEvalMethodNotAllowed(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("POST", "/eval?expr=1", http.NoBody)
	rec := httptest.NewRecorder()

	s.handleEval(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("GET", "/healthz", http.NoBody)
	rec := httptest.NewRecorder()

	s.handleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("body = %q, want to contain \"ok\"", rec.Body.String())
	}
}

func TestHandlerRoutes(t *testing.T) {
	s := newTestServer()
	handler := s.Handler()

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/eval?expr=1%2B1", http.StatusOK},
		{"/healthz", http.StatusOK},
		{"/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, http.NoBody)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
