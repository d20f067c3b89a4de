package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterModel renders the bottom bar: status indicator and key hints.
type FooterModel struct {
	width   int
	paused  bool
	done    bool
	failed  bool
	editing bool
}

// NewFooterModel creates a new footer.
func NewFooterModel() FooterModel {
	return FooterModel{}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) { f.width = w }

// SetPaused updates the paused indicator.
func (f *FooterModel) SetPaused(p bool) { f.paused = p }

// SetDone updates the done indicator.
func (f *FooterModel) SetDone(d bool) { f.done = d }

// SetError updates the failure indicator.
func (f *FooterModel) SetError(e bool) { f.failed = e }

// SetEditing updates the expression-editing indicator.
func (f *FooterModel) SetEditing(e bool) { f.editing = e }

func (f FooterModel) status() string {
	switch {
	case f.failed:
		return statusErrorStyle.Render("ERROR")
	case f.done:
		return statusDoneStyle.Render("DONE")
	case f.editing:
		return statusPausedStyle.Render("EDIT")
	case f.paused:
		return statusPausedStyle.Render("PAUSED")
	default:
		return statusRunningStyle.Render("RUNNING")
	}
}

// View renders the footer.
func (f FooterModel) View() string {
	var hints []string
	if f.editing {
		hints = []string{
			footerKeyStyle.Render("enter") + footerDescStyle.Render(" evaluate"),
			footerKeyStyle.Render("esc") + footerDescStyle.Render(" cancel"),
		}
	} else {
		hints = []string{
			footerKeyStyle.Render("e") + footerDescStyle.Render(" edit"),
			footerKeyStyle.Render("p") + footerDescStyle.Render(" pause"),
			footerKeyStyle.Render("r") + footerDescStyle.Render(" restart"),
			footerKeyStyle.Render("↑/↓") + footerDescStyle.Render(" scroll"),
			footerKeyStyle.Render("q") + footerDescStyle.Render(" quit"),
		}
	}

	left := " " + f.status() + footerDescStyle.Render(" | ") + strings.Join(hints, footerDescStyle.Render("  "))
	gap := f.width - lipgloss.Width(left)
	if gap < 0 {
		gap = 0
	}
	return left + spaces(gap)
}
