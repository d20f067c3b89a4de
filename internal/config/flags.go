package config

import (
	"flag"
	"strings"

	apperrors "github.com/hausp/bigcalc/internal/errors"
)

// RegisterFlags declares all CLI flags on fs, binding them to cfg.
// Short and long forms share the same destination, matching the
// double-registration idiom of the standard flag package.
func RegisterFlags(fs *flag.FlagSet, cfg *AppConfig) {
	fs.StringVar(&cfg.Expr, "e", cfg.Expr, "expression to evaluate (short form)")
	fs.StringVar(&cfg.Expr, "expr", cfg.Expr, "expression to evaluate")
	fs.StringVar(&cfg.ExprFile, "file", cfg.ExprFile, "read expressions from a file, one per line")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "evaluation timeout (e.g. 30s, 5m)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "enable debug logging (short form)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	fs.BoolVar(&cfg.Details, "d", cfg.Details, "print timing details (short form)")
	fs.BoolVar(&cfg.Details, "details", cfg.Details, "print timing details after each result")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "print only the result (short form)")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "print only the result")
	fs.BoolVar(&cfg.ShowFull, "f", cfg.ShowFull, "print full results of any length (short form)")
	fs.BoolVar(&cfg.ShowFull, "full", cfg.ShowFull, "print full results of any length")
	fs.BoolVar(&cfg.Hex, "x", cfg.Hex, "display results in hexadecimal (short form)")
	fs.BoolVar(&cfg.Hex, "hex", cfg.Hex, "display results in hexadecimal")
	fs.IntVar(&cfg.Digits, "digits", cfg.Digits, "digit threshold before large results are truncated (0 = default)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "write the result to a file (short form)")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "write the result to a file")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "start the interactive terminal dashboard")
	fs.BoolVar(&cfg.Serve, "serve", cfg.Serve, "start the HTTP evaluation server")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP server listen address")
	fs.Int64Var(&cfg.MaxShift, "max-shift", cfg.MaxShift, "maximum absolute shift count (0 = adaptive)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "maximum concurrent evaluations in server mode (0 = adaptive)")
	fs.StringVar(&cfg.ProfilePath, "profile", cfg.ProfilePath, "path to the TOML configuration profile")
	fs.StringVar(&cfg.Completion, "completion", cfg.Completion, "generate a shell completion script (bash|zsh|fish|powershell)")
	fs.BoolVar(&cfg.ShowVersion, "V", cfg.ShowVersion, "print the version and exit (short form)")
	fs.BoolVar(&cfg.ShowVersion, "version", cfg.ShowVersion, "print the version and exit")
}

// ParseConfig resolves the full configuration from the given argument list.
// Resolution priority: CLI flags > environment variables > TOML profile >
// defaults. A bare positional argument is accepted as the expression.
//
// Parameters:
//   - fs: The flag set to parse with (usually flag.CommandLine).
//   - args: The argument list, without the program name.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: A ConfigError for invalid flags or settings.
func ParseConfig(fs *flag.FlagSet, args []string) (AppConfig, error) {
	cfg := DefaultConfig()
	RegisterFlags(fs, &cfg)
	if err := fs.Parse(args); err != nil {
		return AppConfig{}, apperrors.NewConfigError("invalid arguments: %v", err)
	}

	if rest := fs.Args(); len(rest) > 0 {
		if cfg.Expr != "" {
			return AppConfig{}, apperrors.NewConfigError("expression given both with --expr and as a positional argument")
		}
		cfg.Expr = strings.Join(rest, " ")
	}

	profile, err := LoadProfile(resolveProfilePath(cfg.ProfilePath))
	if err != nil {
		return AppConfig{}, err
	}
	applyProfile(&cfg, profile, fs)
	applyEnvOverrides(&cfg, fs)
	applyAdaptiveLimits(&cfg)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
