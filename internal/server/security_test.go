package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// runMiddleware wraps next in SecurityMiddleware, issues one request, and
// returns the recorder.
func runMiddleware(cfg SecurityConfig, method, origin string, next http.HandlerFunc) *httptest.ResponseRecorder {
	handler := SecurityMiddleware(cfg, next)
	req := httptest.NewRequest(method, "/test", http.NoBody)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestDefaultSecurityConfig(t *testing.T) {
	config := DefaultSecurityConfig()

	if !config.EnableCORS {
		t.Error("EnableCORS should be true by default")
	}
	if len(config.AllowedOrigins) != 1 || config.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v, want [\"*\"]", config.AllowedOrigins)
	}
	if config.MaxExprLength != 64*1024 {
		t.Errorf("MaxExprLength = %d, want %d", config.MaxExprLength, 64*1024)
	}

	hasGet, hasOptions := false, false
	for _, m := range config.AllowedMethods {
		switch m {
		case "GET":
			hasGet = true
		case "OPTIONS":
			hasOptions = true
		}
	}
	if len(config.AllowedMethods) != 2 || !hasGet || !hasOptions {
		t.Errorf("AllowedMethods = %v, want [\"GET\", \"OPTIONS\"]", config.AllowedMethods)
	}
}

func TestSecurityMiddleware_SecurityHeaders(t *testing.T) {
	nextCalled := false
	rec := runMiddleware(DefaultSecurityConfig(), "GET", "", func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	tests := []struct {
		header string
		want   string
	}{
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "DENY"},
		{"X-XSS-Protection", "1; mode=block"},
		{"Referrer-Policy", "strict-origin-when-cross-origin"},
		{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := rec.Header().Get(tt.header); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.header, got, tt.want)
			}
		})
	}

	if !nextCalled {
		t.Error("next handler was not called")
	}
}

func TestSecurityMiddleware_CORS(t *testing.T) {
	tests := []struct {
		name              string
		config            SecurityConfig
		origin            string
		expectCORSHeaders bool
		expectedOrigin    string
	}{
		{
			name:              "CORS disabled",
			config:            SecurityConfig{EnableCORS: false},
			origin:            "http://example.com",
			expectCORSHeaders: false,
		},
		{
			name: "wildcard origin",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET", "POST"},
			},
			origin:            "http://example.com",
			expectCORSHeaders: true,
			expectedOrigin:    "*",
		},
		{
			name: "specific allowed origin",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"http://allowed.com"},
				AllowedMethods: []string{"GET"},
			},
			origin:            "http://allowed.com",
			expectCORSHeaders: true,
			expectedOrigin:    "http://allowed.com",
		},
		{
			name: "disallowed origin",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"http://allowed.com"},
				AllowedMethods: []string{"GET"},
			},
			origin:            "http://notallowed.com",
			expectCORSHeaders: false,
		},
		{
			name: "multiple origins, first match",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"http://first.com", "http://second.com"},
				AllowedMethods: []string{"GET"},
			},
			origin:            "http://first.com",
			expectCORSHeaders: true,
			expectedOrigin:    "http://first.com",
		},
		{
			name: "multiple origins, second match",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"http://first.com", "http://second.com"},
				AllowedMethods: []string{"GET"},
			},
			origin:            "http://second.com",
			expectCORSHeaders: true,
			expectedOrigin:    "http://second.com",
		},
		{
			name: "no origin header with wildcard",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET"},
			},
			origin:            "",
			expectCORSHeaders: true,
			expectedOrigin:    "*",
		},
		{
			name: "no origin header with specific origins",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"http://specific.com"},
				AllowedMethods: []string{"GET"},
			},
			origin:            "",
			expectCORSHeaders: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runMiddleware(tt.config, "GET", tt.origin, func(w http.ResponseWriter, r *http.Request) {})

			corsOrigin := rec.Header().Get("Access-Control-Allow-Origin")
			if !tt.expectCORSHeaders {
				if corsOrigin != "" {
					t.Errorf("Access-Control-Allow-Origin should be empty, got %q", corsOrigin)
				}
				return
			}

			if corsOrigin != tt.expectedOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", corsOrigin, tt.expectedOrigin)
			}
			for _, h := range []string{"Access-Control-Allow-Methods", "Access-Control-Allow-Headers", "Access-Control-Max-Age"} {
				if rec.Header().Get(h) == "" {
					t.Errorf("%s should be set", h)
				}
			}
		})
	}
}

func TestSecurityMiddleware_Preflight(t *testing.T) {
	t.Run("OPTIONS short-circuits with 204", func(t *testing.T) {
		nextCalled := false
		rec := runMiddleware(DefaultSecurityConfig(), "OPTIONS", "http://example.com", func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
		})

		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
		}
		if nextCalled {
			t.Error("next handler should not be called for OPTIONS")
		}
		if rec.Header().Get("Access-Control-Allow-Origin") == "" {
			t.Error("CORS headers should be set for OPTIONS")
		}
	})

	t.Run("non-OPTIONS reaches next handler", func(t *testing.T) {
		nextCalled := false
		runMiddleware(DefaultSecurityConfig(), "GET", "", func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
		})

		if !nextCalled {
			t.Error("next handler should be called for non-OPTIONS")
		}
	})
}

func TestSecurityMiddleware_PassesResponseThrough(t *testing.T) {
	responseBody := "hello from next"
	rec := runMiddleware(DefaultSecurityConfig(), "GET", "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(responseBody))
	})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != responseBody {
		t.Errorf("body = %q, want %q", rec.Body.String(), responseBody)
	}
}

func TestSecurityMiddleware_AllMethods(t *testing.T) {
	for _, method := range []string{"GET", "POST", "PUT", "DELETE", "PATCH"} {
		t.Run(method, func(t *testing.T) {
			nextCalled := false
			rec := runMiddleware(DefaultSecurityConfig(), method, "", func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			if !nextCalled {
				t.Errorf("next handler should be called for %s", method)
			}
			if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Errorf("security headers should be set for %s", method)
			}
		})
	}
}
