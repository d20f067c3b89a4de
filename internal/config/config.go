// Package config defines the application configuration and its resolution
// chain: CLI flags, then BIGCALC_-prefixed environment variables, then the
// optional TOML profile, then built-in defaults.
package config

import (
	"time"

	apperrors "github.com/hausp/bigcalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "BIGCALC_"

// Default configuration values.
const (
	// DefaultTimeout bounds a single expression evaluation.
	DefaultTimeout = 5 * time.Minute
	// DefaultAddr is the HTTP server listen address.
	DefaultAddr = ":8080"
	// DefaultProfileName is the TOML profile looked up in the home directory.
	DefaultProfileName = ".bigcalc.toml"
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Expr is the expression to evaluate. Empty means interactive mode.
	Expr string
	// ExprFile reads expressions from a file, one per line.
	ExprFile string
	// Timeout bounds a single evaluation.
	Timeout time.Duration
	// Verbose enables debug logging.
	Verbose bool
	// Details prints timing and operand statistics after each result.
	Details bool
	// Quiet suppresses everything except the result.
	Quiet bool
	// ShowFull prints complete results regardless of length; otherwise very
	// long results are abridged with a digit count.
	ShowFull bool
	// Hex renders results in hexadecimal instead of decimal.
	Hex bool
	// Digits overrides the digit threshold from which large results are
	// truncated. Zero keeps the built-in threshold.
	Digits int
	// NoColor disables ANSI color output.
	NoColor bool
	// OutputFile writes the result to a file instead of stdout.
	OutputFile string
	// TUI starts the interactive terminal dashboard.
	TUI bool
	// Serve starts the HTTP evaluation server.
	Serve bool
	// Addr is the HTTP server listen address.
	Addr string
	// MaxShift bounds the absolute shift count accepted by the evaluator.
	// Zero selects an adaptive default.
	MaxShift int64
	// Workers bounds concurrent evaluations in server mode. Zero selects an
	// adaptive default.
	Workers int
	// ProfilePath overrides the default TOML profile location.
	ProfilePath string
	// Completion names a shell to emit a completion script for.
	Completion string
	// ShowVersion prints the version and exits.
	ShowVersion bool
}

// Validate checks the configuration for contradictions and out-of-range
// values.
//
// Returns:
//   - error: A ConfigError describing the first problem found, or nil.
func (c AppConfig) Validate() error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxShift < 0 {
		return apperrors.NewConfigError("max-shift must not be negative, got %d", c.MaxShift)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("workers must not be negative, got %d", c.Workers)
	}
	if c.Digits < 0 {
		return apperrors.NewConfigError("digits must not be negative, got %d", c.Digits)
	}
	if c.Expr != "" && c.ExprFile != "" {
		return apperrors.NewConfigError("--expr and --file are mutually exclusive")
	}
	if c.TUI && c.Serve {
		return apperrors.NewConfigError("--tui and --serve are mutually exclusive")
	}
	if c.Serve && c.Addr == "" {
		return apperrors.NewConfigError("--serve requires a listen address")
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	return nil
}

// DefaultConfig returns the built-in defaults, before any flag, environment,
// or profile resolution.
func DefaultConfig() AppConfig {
	return AppConfig{
		Timeout: DefaultTimeout,
		Addr:    DefaultAddr,
	}
}
