package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named set of ANSI escape codes used by the CLI surfaces.
type Theme struct {
	Name      string
	Primary   string // main accent for important elements
	Secondary string // less prominent elements
	Success   string // completed operations
	Warning   string // non-critical issues
	Error     string // failures
	Info      string // informational messages
	Bold      string
	Underline string
	Reset     string
}

var (
	// DarkTheme targets dark terminal backgrounds with bright accents.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // bright blue
		Secondary: "\033[38;5;245m", // grey
		Success:   "\033[38;5;82m",  // bright green
		Warning:   "\033[38;5;220m", // yellow
		Error:     "\033[38;5;196m", // red
		Info:      "\033[38;5;141m", // purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme uses darker tones readable on light backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // dark blue
		Secondary: "\033[38;5;240m", // dark grey
		Success:   "\033[38;5;28m",  // dark green
		Warning:   "\033[38;5;130m", // orange
		Error:     "\033[38;5;124m", // dark red
		Info:      "\033[38;5;54m",  // dark purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// TealTheme is a teal-dominant dark theme matching the dashboard palette.
	TealTheme = Theme{
		Name:      "teal",
		Primary:   "\033[38;5;43m",  // teal
		Secondary: "\033[38;5;245m", // grey
		Success:   "\033[38;5;82m",  // bright green
		Warning:   "\033[38;5;220m", // yellow
		Error:     "\033[38;5;196m", // red
		Info:      "\033[38;5;81m",  // light cyan
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme renders everything without escape codes. Activated by
	// the NO_COLOR environment variable or an explicit flag.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme carries the lipgloss colors the dashboard styles are built from.
type TUITheme struct {
	Bg      lipgloss.TerminalColor
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	Info    lipgloss.TerminalColor
}

var (
	// DarkTUITheme is the teal-dominant dashboard palette.
	DarkTUITheme = TUITheme{
		Bg:      lipgloss.Color("#000000"),
		Text:    lipgloss.Color("#E0E0E0"),
		Border:  lipgloss.Color("#00A896"),
		Accent:  lipgloss.Color("#02C3BD"),
		Success: lipgloss.Color("#9ece6a"),
		Warning: lipgloss.Color("#E9C46A"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#666666"),
		Info:    lipgloss.Color("#4488FF"),
	}

	// NoColorTUITheme leaves every color at the terminal default.
	NoColorTUITheme = TUITheme{
		Bg:      lipgloss.NoColor{},
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme maps the active CLI theme to a dashboard palette.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == "none" {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme restores a previously captured theme. Used by tests.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name ("dark", "light", "teal", "none").
// Unknown names fall back to the dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "dark":
		currentTheme = DarkTheme
	case "light":
		currentTheme = LightTheme
	case "teal":
		currentTheme = TealTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme selects the startup theme. Color output is disabled when
// noColor is true or the NO_COLOR environment variable is set
// (https://no-color.org/); otherwise the dark theme is used.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}
