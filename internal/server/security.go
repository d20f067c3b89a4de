package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls the HTTP hardening applied to every request.
type SecurityConfig struct {
	// EnableCORS enables cross-origin resource sharing headers.
	EnableCORS bool
	// AllowedOrigins lists origins allowed for CORS. "*" matches any origin.
	AllowedOrigins []string
	// AllowedMethods lists HTTP methods advertised for CORS.
	AllowedMethods []string
	// MaxExprLength caps the expression length accepted by the API in bytes.
	// Requests with longer expressions are rejected before parsing.
	MaxExprLength int
}

// DefaultSecurityConfig returns the default security settings.
// The API is read-only, so only GET and OPTIONS are advertised.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		MaxExprLength:  64 * 1024,
	}
}

// SecurityMiddleware applies security headers and CORS policy to a handler.
// OPTIONS preflight requests are answered directly with 204 No Content.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Standard hardening headers on every response
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin := corsOrigin(config.AllowedOrigins, r.Header.Get("Origin")); origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.Header().Set("Access-Control-Max-Age", "86400")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// corsOrigin returns the Access-Control-Allow-Origin value for the request
// origin, or "" when the origin is not allowed.
func corsOrigin(allowed []string, origin string) string {
	for _, a := range allowed {
		if a == "*" {
			return "*"
		}
		if a == origin && origin != "" {
			return origin
		}
	}
	return ""
}
