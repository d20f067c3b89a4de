// Package ui holds the color themes shared by the calculator's
// presentation surfaces. It exposes ANSI escape accessors for the CLI
// and REPL, and lipgloss palettes for the monitoring dashboard, so the
// evaluation packages never depend on a specific output style.
package ui
