package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/hausp/bigcalc/internal/errors"
)

func parseWith(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	fs := flag.NewFlagSet("bigcalc-test", flag.ContinueOnError)
	return ParseConfig(fs, args)
}

// setTestProfile points profile resolution at a temp file so developer
// machines with a real ~/.bigcalc.toml do not leak into tests.
func setTestProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.toml")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv(EnvPrefix+"PROFILE", path)
	return path
}

func TestParseConfigDefaults(t *testing.T) {
	setTestProfile(t, "")
	cfg, err := parseWith(t)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want %q", cfg.Addr, DefaultAddr)
	}
	if cfg.MaxShift == 0 {
		t.Error("MaxShift should get an adaptive default")
	}
	if cfg.Workers == 0 {
		t.Error("Workers should get an adaptive default")
	}
}

func TestParseConfigFlags(t *testing.T) {
	setTestProfile(t, "")
	cfg, err := parseWith(t, "-e", "1 + 2", "-timeout", "10s", "-v", "-full")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Expr != "1 + 2" {
		t.Errorf("Expr = %q, want %q", cfg.Expr, "1 + 2")
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout)
	}
	if !cfg.Verbose || !cfg.ShowFull {
		t.Error("Verbose and ShowFull flags should be set")
	}
}

func TestParseConfigPositionalExpression(t *testing.T) {
	setTestProfile(t, "")
	cfg, err := parseWith(t, "1", "+", "2")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Expr != "1 + 2" {
		t.Errorf("Expr = %q, want %q", cfg.Expr, "1 + 2")
	}
}

func TestParseConfigRejectsDuplicateExpression(t *testing.T) {
	setTestProfile(t, "")
	_, err := parseWith(t, "-e", "1+2", "3+4")
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	setTestProfile(t, "")
	t.Setenv(EnvPrefix+"TIMEOUT", "42s")
	t.Setenv(EnvPrefix+"VERBOSE", "yes")
	t.Setenv(EnvPrefix+"MAX_SHIFT", "4096")
	t.Setenv(EnvPrefix+"HEX", "true")
	t.Setenv(EnvPrefix+"DIGITS", "250")
	t.Setenv(EnvPrefix+"NO_COLOR", "1")

	cfg, err := parseWith(t)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timeout != 42*time.Second {
		t.Errorf("Timeout = %v, want 42s", cfg.Timeout)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be set from environment")
	}
	if cfg.MaxShift != 4096 {
		t.Errorf("MaxShift = %d, want 4096", cfg.MaxShift)
	}
	if !cfg.Hex {
		t.Error("Hex should be set from environment")
	}
	if cfg.Digits != 250 {
		t.Errorf("Digits = %d, want 250", cfg.Digits)
	}
	if !cfg.NoColor {
		t.Error("NoColor should be set from environment")
	}
}

func TestFlagsBeatEnvironment(t *testing.T) {
	setTestProfile(t, "")
	t.Setenv(EnvPrefix+"TIMEOUT", "42s")

	cfg, err := parseWith(t, "-timeout", "7s")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timeout != 7*time.Second {
		t.Errorf("Timeout = %v, want 7s (flag should beat env)", cfg.Timeout)
	}
}

func TestProfileResolution(t *testing.T) {
	setTestProfile(t, "timeout = \"90s\"\nquiet = true\nmax_shift = 1024\nhex = true\ndigits = 64\n")

	cfg, err := parseWith(t)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s from profile", cfg.Timeout)
	}
	if !cfg.Quiet {
		t.Error("Quiet should be set from profile")
	}
	if cfg.MaxShift != 1024 {
		t.Errorf("MaxShift = %d, want 1024 from profile", cfg.MaxShift)
	}
	if !cfg.Hex {
		t.Error("Hex should be set from profile")
	}
	if cfg.Digits != 64 {
		t.Errorf("Digits = %d, want 64 from profile", cfg.Digits)
	}
}

func TestParseConfigHexFileAndDigitsFlags(t *testing.T) {
	setTestProfile(t, "")
	cfg, err := parseWith(t, "-hex", "-digits", "200", "-no-color", "-file", "exprs.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Hex {
		t.Error("Hex flag should be set")
	}
	if cfg.Digits != 200 {
		t.Errorf("Digits = %d, want 200", cfg.Digits)
	}
	if !cfg.NoColor {
		t.Error("NoColor flag should be set")
	}
	if cfg.ExprFile != "exprs.txt" {
		t.Errorf("ExprFile = %q, want %q", cfg.ExprFile, "exprs.txt")
	}
}

func TestParseConfigRejectsExprWithFile(t *testing.T) {
	setTestProfile(t, "")
	_, err := parseWith(t, "-e", "1+2", "-file", "exprs.txt")
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestEnvironmentBeatsProfile(t *testing.T) {
	setTestProfile(t, "timeout = \"90s\"\n")
	t.Setenv(EnvPrefix+"TIMEOUT", "15s")

	cfg, err := parseWith(t)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("Timeout = %v, want 15s (env should beat profile)", cfg.Timeout)
	}
}

func TestMalformedProfileIsConfigError(t *testing.T) {
	setTestProfile(t, "timeout = [not toml")

	_, err := parseWith(t)
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError for malformed profile, got %v", err)
	}
}

func TestMissingProfileIsNotAnError(t *testing.T) {
	t.Setenv(EnvPrefix+"PROFILE", filepath.Join(t.TempDir(), "nonexistent.toml"))
	if _, err := parseWith(t); err != nil {
		t.Fatalf("missing profile should not fail: %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"defaults are valid", func(c *AppConfig) {}, false},
		{"zero timeout", func(c *AppConfig) { c.Timeout = 0 }, true},
		{"negative max shift", func(c *AppConfig) { c.MaxShift = -1 }, true},
		{"negative workers", func(c *AppConfig) { c.Workers = -1 }, true},
		{"tui and serve", func(c *AppConfig) { c.TUI = true; c.Serve = true }, true},
		{"serve without addr", func(c *AppConfig) { c.Serve = true; c.Addr = "" }, true},
		{"quiet and verbose", func(c *AppConfig) { c.Quiet = true; c.Verbose = true }, true},
		{"negative digits", func(c *AppConfig) { c.Digits = -1 }, true},
		{"expr and file", func(c *AppConfig) { c.Expr = "1"; c.ExprFile = "a.txt" }, true},
		{"hex with digits", func(c *AppConfig) { c.Hex = true; c.Digits = 80 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var cfgErr apperrors.ConfigError
				if !errors.As(err, &cfgErr) {
					t.Errorf("validation errors should be ConfigError, got %T", err)
				}
			}
		})
	}
}

func TestEstimateWorkerCount(t *testing.T) {
	t.Parallel()
	if n := EstimateWorkerCount(); n < 2 || n > 8 {
		t.Errorf("EstimateWorkerCount() = %d, want within [2, 8]", n)
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		val        string
		defaultVal bool
		want       bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"false", true, false},
		{"0", true, false},
		{"No", true, false},
		{"garbage", true, true},
		{"garbage", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.val, tt.defaultVal); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.defaultVal, got, tt.want)
		}
	}
}
