package config

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	apperrors "github.com/hausp/bigcalc/internal/errors"
)

// Profile mirrors the optional TOML configuration file. Pointer fields
// distinguish "absent" from zero values so only keys present in the file
// participate in resolution.
type Profile struct {
	Timeout  *string `toml:"timeout"`
	Verbose  *bool   `toml:"verbose"`
	Details  *bool   `toml:"details"`
	Quiet    *bool   `toml:"quiet"`
	Full     *bool   `toml:"full"`
	Hex      *bool   `toml:"hex"`
	Digits   *int    `toml:"digits"`
	NoColor  *bool   `toml:"no_color"`
	Output   *string `toml:"output"`
	Addr     *string `toml:"addr"`
	MaxShift *int64  `toml:"max_shift"`
	Workers  *int    `toml:"workers"`
}

// resolveProfilePath picks the profile location: the explicit flag value,
// then the BIGCALC_PROFILE environment variable, then DefaultProfileName in
// the home directory.
func resolveProfilePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvPrefix + "PROFILE"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultProfileName)
}

// LoadProfile reads and decodes the TOML profile at path. A missing file or
// empty path yields an empty profile; a malformed file is a ConfigError.
//
// Parameters:
//   - path: The profile file location.
//
// Returns:
//   - Profile: The decoded profile, zero-valued when absent.
//   - error: A ConfigError for unreadable or malformed profiles.
func LoadProfile(path string) (Profile, error) {
	var profile Profile
	if path == "" {
		return profile, nil
	}
	if _, err := toml.DecodeFile(path, &profile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Profile{}, nil
		}
		return Profile{}, apperrors.NewConfigError("cannot load profile %s: %v", path, err)
	}
	return profile, nil
}

// applyProfile copies profile values into the configuration for every
// setting whose flag was not given on the command line. Environment
// overrides run afterwards and take precedence over the profile.
func applyProfile(cfg *AppConfig, profile Profile, fs *flag.FlagSet) {
	if profile.Timeout != nil && !isFlagSet(fs, "timeout") {
		if parsed, err := time.ParseDuration(*profile.Timeout); err == nil {
			cfg.Timeout = parsed
		}
	}
	if profile.Verbose != nil && !isFlagSetAny(fs, "v", "verbose") {
		cfg.Verbose = *profile.Verbose
	}
	if profile.Details != nil && !isFlagSetAny(fs, "d", "details") {
		cfg.Details = *profile.Details
	}
	if profile.Quiet != nil && !isFlagSetAny(fs, "q", "quiet") {
		cfg.Quiet = *profile.Quiet
	}
	if profile.Full != nil && !isFlagSetAny(fs, "f", "full") {
		cfg.ShowFull = *profile.Full
	}
	if profile.Hex != nil && !isFlagSetAny(fs, "x", "hex") {
		cfg.Hex = *profile.Hex
	}
	if profile.Digits != nil && !isFlagSet(fs, "digits") {
		cfg.Digits = *profile.Digits
	}
	if profile.NoColor != nil && !isFlagSet(fs, "no-color") {
		cfg.NoColor = *profile.NoColor
	}
	if profile.Output != nil && !isFlagSetAny(fs, "o", "output") {
		cfg.OutputFile = *profile.Output
	}
	if profile.Addr != nil && !isFlagSet(fs, "addr") {
		cfg.Addr = *profile.Addr
	}
	if profile.MaxShift != nil && !isFlagSet(fs, "max-shift") {
		cfg.MaxShift = *profile.MaxShift
	}
	if profile.Workers != nil && !isFlagSet(fs, "workers") {
		cfg.Workers = *profile.Workers
	}
}
