package tui

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hausp/bigcalc/internal/config"
	apperrors "github.com/hausp/bigcalc/internal/errors"
	"github.com/hausp/bigcalc/internal/metrics"
	"github.com/hausp/bigcalc/internal/orchestration"
	"github.com/hausp/bigcalc/internal/sysmon"
)

// ExecutionState holds the execution-related fields of a TUI session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	expression string
	generation uint64
	done       bool
	exitCode   int
}

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

// bodyHeight returns the available height for the main body panels.
func (l LayoutManager) bodyHeight() int {
	h := l.height - headerHeight - footerHeight
	if h < minBodyHeight {
		h = minBodyHeight
	}
	return h
}

// logsWidth returns the width allocated to the logs panel.
func (l LayoutManager) logsWidth() int {
	return l.width * LogsPanelWidthPercent / 100
}

// rightWidth returns the width allocated to the right column (metrics + chart).
func (l LayoutManager) rightWidth() int {
	return l.width - l.logsWidth()
}

// metricsHeight returns the height allocated to the metrics panel.
func (l LayoutManager) metricsHeight() int {
	body := l.bodyHeight()
	h := MetricsPanelHeight
	if h > body/2 {
		h = body / 2
	}
	return h
}

// chartHeight returns the height allocated to the chart panel.
func (l LayoutManager) chartHeight() int {
	return l.bodyHeight() - l.metricsHeight()
}

// Model is the root bubbletea model for the TUI dashboard.
type Model struct {
	header  HeaderModel
	logs    LogsModel
	metrics MetricsModel
	chart   ChartModel
	footer  FooterModel

	keymap KeyMap
	input  textinput.Model

	ExecutionState
	LayoutManager

	parentCtx context.Context
	config    config.AppConfig
	ref       *programRef
	paused    bool
	editing   bool
}

// NewModel creates a new TUI model.
func NewModel(parentCtx context.Context, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	logs := NewLogsModel()
	logs.AddExecutionConfig(cfg)

	input := textinput.New()
	input.Prompt = "expr> "
	input.Placeholder = "1 << 64 - 1"
	input.SetValue(cfg.Expr)

	header := NewHeaderModel(version)
	header.SetExpression(cfg.Expr)

	return Model{
		header:  header,
		logs:    logs,
		metrics: NewMetricsModel(),
		chart:   NewChartModel(),
		footer:  NewFooterModel(),
		keymap:  DefaultKeyMap(),
		input:   input,
		ExecutionState: ExecutionState{
			ctx:        ctx,
			cancel:     cancel,
			expression: cfg.Expr,
			exitCode:   apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		config:    cfg,
		ref:       &programRef{},
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startEvaluationCmd(m.ref, m.ctx, m.expression, m.config, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case ProgressMsg:
		if !m.paused {
			m.logs.AddProgressEntry(msg)
			m.chart.AddDataPoint(msg.Value, msg.AverageProgress, msg.ETA)
			m.metrics.UpdateProgress(msg.AverageProgress)
		}
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case ResultMsg:
		m.logs.AddResult(msg)
		if msg.Result.Err == nil {
			// Compute indicators asynchronously to avoid blocking the UI
			return m, computeIndicatorsCmd(msg)
		}
		return m, nil

	case IndicatorsMsg:
		m.metrics.UpdateIndicators(msg.Indicators)
		return m, nil

	case ErrorMsg:
		m.logs.AddError(msg)
		m.footer.SetError(true)
		m.done = true
		m.header.SetDone()
		m.footer.SetDone(true)
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		if !m.paused {
			return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())
		}
		return m, tickCmd()

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.chart.UpdateSysStats(msg.CPUPercent, msg.MemPercent)
		return m, nil

	case EvalCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from previous evaluation
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.header.SetDone()
		m.footer.SetDone(true)
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from previous evaluation
		}
		m.done = true
		m.header.SetDone()
		m.footer.SetDone(true)
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Edit):
		m.editing = true
		m.footer.SetEditing(true)
		m.input.SetValue(m.expression)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		m.footer.SetPaused(m.paused)
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		return m.restart(m.expression)

	case key.Matches(msg, m.keymap.Up), key.Matches(msg, m.keymap.Down),
		key.Matches(msg, m.keymap.PageUp), key.Matches(msg, m.keymap.PageDown):
		m.logs.Update(msg)
		return m, nil
	}

	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		expression := strings.TrimSpace(m.input.Value())
		m.editing = false
		m.footer.SetEditing(false)
		m.input.Blur()
		if expression == "" {
			return m, nil
		}
		return m.restart(expression)

	case tea.KeyEsc:
		m.editing = false
		m.footer.SetEditing(false)
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// restart cancels the running evaluation and starts a fresh one for the
// given expression under a new generation.
func (m Model) restart(expression string) (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}

	m.generation++
	ctx, cancel := context.WithCancel(m.parentCtx)
	m.ctx = ctx
	m.cancel = cancel
	m.expression = expression
	m.config.Expr = expression

	m.header.Reset()
	m.header.SetExpression(expression)
	m.logs.Reset()
	m.logs.AddExecutionConfig(m.config)
	m.chart.Reset()
	m.metrics.Reset()
	m.footer.SetDone(false)
	m.footer.SetError(false)
	m.footer.SetPaused(false)
	m.done = false
	m.paused = false
	m.exitCode = apperrors.ExitSuccess

	return m, tea.Batch(
		tickCmd(),
		startEvaluationCmd(m.ref, m.ctx, m.expression, m.config, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.header.View()
	footer := m.footer.View()

	metricsView := m.metrics.View()
	chart := m.chart.View()

	// Right column: metrics on top, chart on bottom
	rightCol := lipgloss.JoinVertical(lipgloss.Left, metricsView, chart)

	// Render logs panel to match the right column's actual height
	logs := m.logs.renderToHeight(lipgloss.Height(rightCol))

	// Main body: logs on left, right column on right
	body := lipgloss.JoinHorizontal(lipgloss.Top, logs, rightCol)

	if m.editing {
		footer = " " + m.input.View()
	}

	// Full layout: header + body + footer
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Layout constants for the TUI dashboard.
const (
	headerHeight          = 1
	footerHeight          = 1
	minBodyHeight         = 4
	LogsPanelWidthPercent = 60
	MetricsPanelHeight    = 7 // header + 3 data rows + borders; expands with indicators
)

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.logs.SetSize(m.logsWidth(), m.bodyHeight())
	m.metrics.SetSize(m.rightWidth(), m.metricsHeight())
	m.chart.SetSize(m.rightWidth(), m.chartHeight())
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startEvaluationCmd returns a tea.Cmd that launches the orchestration.
func startEvaluationCmd(ref *programRef, ctx context.Context, expression string, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		progressReporter := &TUIProgressReporter{ref: ref}
		presenter := &TUIResultPresenter{ref: ref}

		results := orchestration.ExecuteEvaluations(ctx, []string{expression}, cfg, progressReporter, io.Discard)

		exitCode := apperrors.ExitSuccess
		for _, result := range results {
			if result.Err != nil {
				exitCode = presenter.HandleError(result.Err, result.Duration, io.Discard)
				continue
			}
			presenter.PresentResult(result, orchestration.PresentationOptions{
				Verbose:  cfg.Verbose,
				Details:  cfg.Details,
				ShowFull: cfg.ShowFull,
			}, io.Discard)
		}

		return EvalCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads runtime memory stats and returns a MemStatsMsg.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		snap := metrics.NewMemoryCollector().Snapshot()
		return MemStatsMsg{
			Alloc:        snap.HeapAlloc,
			HeapInuse:    snap.HeapInuse,
			NumGC:        snap.NumGC,
			PauseTotalNs: snap.PauseTotalNs,
			NumGoroutine: snap.NumGoroutine,
		}
	}
}

// sampleSysStatsCmd reads system-wide CPU and memory stats and returns a SysStatsMsg.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
		}
	}
}

// computeIndicatorsCmd returns a tea.Cmd that derives throughput figures
// without blocking the UI loop on very large results.
func computeIndicatorsCmd(msg ResultMsg) tea.Cmd {
	return func() tea.Msg {
		ind := metrics.Compute(msg.Result.Result, msg.Result.Duration)
		return IndicatorsMsg{Indicators: ind}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
