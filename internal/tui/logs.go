package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hausp/bigcalc/internal/config"
	"github.com/hausp/bigcalc/internal/format"
	"github.com/hausp/bigcalc/internal/orchestration"
)

// logKind classifies a log entry for styling.
type logKind int

const (
	logInfo logKind = iota
	logProgress
	logSuccess
	logFailure
)

type logEntry struct {
	at   time.Time
	kind logKind
	text string
}

// LogsModel is the scrollable evaluation log panel.
type LogsModel struct {
	entries []logEntry
	offset  int // scroll offset from the bottom
	keymap  KeyMap
	width   int
	height  int
}

// NewLogsModel creates an empty log panel.
func NewLogsModel() LogsModel {
	return LogsModel{keymap: DefaultKeyMap()}
}

// SetSize updates dimensions.
func (l *LogsModel) SetSize(w, h int) {
	l.width = w
	l.height = h
}

// Reset clears all entries and scroll state.
func (l *LogsModel) Reset() {
	l.entries = nil
	l.offset = 0
}

func (l *LogsModel) add(kind logKind, text string) {
	l.entries = append(l.entries, logEntry{at: time.Now(), kind: kind, text: text})
}

// AddExecutionConfig logs the session parameters at startup.
func (l *LogsModel) AddExecutionConfig(cfg config.AppConfig) {
	l.add(logInfo, fmt.Sprintf("expr: %s", cfg.Expr))
	l.add(logInfo, fmt.Sprintf("timeout: %s  max-shift: %d bits", cfg.Timeout, cfg.MaxShift))
}

// AddProgressEntry records a progress update, replacing the previous
// progress line so the log does not fill with intermediate percentages.
func (l *LogsModel) AddProgressEntry(msg ProgressMsg) {
	text := fmt.Sprintf("evaluating... %5.1f%%  ETA %s",
		msg.AverageProgress*100, format.FormatETA(msg.ETA))
	if n := len(l.entries); n > 0 && l.entries[n-1].kind == logProgress {
		l.entries[n-1] = logEntry{at: time.Now(), kind: logProgress, text: text}
		return
	}
	l.add(logProgress, text)
}

// AddResult logs a completed evaluation.
func (l *LogsModel) AddResult(msg ResultMsg) {
	r := msg.Result
	if r.Err != nil {
		l.add(logFailure, fmt.Sprintf("%s: %v", r.Expression, r.Err))
		return
	}
	l.add(logSuccess, fmt.Sprintf("%s = %s", r.Expression, abridgeResult(r)))
	l.add(logInfo, fmt.Sprintf("time: %s  bits: %d",
		format.FormatExecutionDuration(r.Duration), r.Result.BitLen()))
}

// AddError logs an evaluation failure.
func (l *LogsModel) AddError(msg ErrorMsg) {
	l.add(logFailure, fmt.Sprintf("error after %s: %v",
		format.FormatExecutionDuration(msg.Duration), msg.Err))
}

// abridgeResult renders the decimal value, shortened when it would not fit
// a log line.
func abridgeResult(r orchestration.EvalResult) string {
	s := r.Result.String()
	if len(s) <= 40 {
		return s
	}
	digits := len(s)
	if r.Result.Sign() < 0 {
		digits--
	}
	return fmt.Sprintf("%s...%s (%d digits)", s[:12], s[len(s)-12:], digits)
}

// Update handles scroll keys.
func (l *LogsModel) Update(msg tea.KeyMsg) {
	page := l.height - 3
	if page < 1 {
		page = 1
	}
	switch {
	case key.Matches(msg, l.keymap.Up):
		l.scrollBy(1)
	case key.Matches(msg, l.keymap.Down):
		l.scrollBy(-1)
	case key.Matches(msg, l.keymap.PageUp):
		l.scrollBy(page)
	case key.Matches(msg, l.keymap.PageDown):
		l.scrollBy(-page)
	}
}

func (l *LogsModel) scrollBy(delta int) {
	l.offset += delta
	maxOffset := len(l.entries) - 1
	if l.offset > maxOffset {
		l.offset = maxOffset
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

func (l logEntry) render() string {
	ts := logTimeStyle.Render(l.at.Format("15:04:05"))
	var body string
	switch l.kind {
	case logProgress:
		body = logProgressStyle.Render(l.text)
	case logSuccess:
		body = logSuccessStyle.Render(l.text)
	case logFailure:
		body = logErrorStyle.Render(l.text)
	default:
		body = l.text
	}
	return fmt.Sprintf(" %s %s", ts, body)
}

// View renders the panel at its configured height.
func (l LogsModel) View() string {
	return l.renderToHeight(l.height)
}

// renderToHeight renders the panel at an explicit outer height so the logs
// column can match the right column exactly.
func (l LogsModel) renderToHeight(height int) string {
	innerHeight := height - 2
	if innerHeight < 1 {
		innerHeight = 1
	}

	var rows strings.Builder
	rows.WriteString(" " + titleStyle.Render("Log"))

	visible := innerHeight - 1
	end := len(l.entries) - l.offset
	if end > len(l.entries) {
		end = len(l.entries)
	}
	start := end - visible
	if start < 0 {
		start = 0
	}
	for _, e := range l.entries[start:end] {
		rows.WriteString("\n")
		rows.WriteString(e.render())
	}

	return panelStyle.
		Width(l.width - 2).
		Height(innerHeight).
		Render(rows.String())
}
