package tui

import (
	"time"

	"github.com/hausp/bigcalc/internal/metrics"
	"github.com/hausp/bigcalc/internal/orchestration"
)

// Message types exchanged between bridge goroutines and the bubbletea loop.

// ProgressMsg carries an aggregated progress update for a running evaluation.
type ProgressMsg struct {
	CalculatorIndex int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// ProgressDoneMsg signals that the progress channel has been closed.
type ProgressDoneMsg struct{}

// ResultMsg carries a completed evaluation result.
type ResultMsg struct {
	Result orchestration.EvalResult
	Opts   orchestration.PresentationOptions
}

// ErrorMsg carries an evaluation failure.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// TickMsg drives periodic UI refresh and stat sampling.
type TickMsg time.Time

// MemStatsMsg carries a runtime memory sample.
type MemStatsMsg struct {
	Alloc        uint64
	HeapInuse    uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// SysStatsMsg carries a system-wide CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// IndicatorsMsg carries post-evaluation throughput figures.
type IndicatorsMsg struct {
	Indicators *metrics.Indicators
}

// EvalCompleteMsg signals that the orchestration for one generation finished.
type EvalCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg signals that the evaluation context was canceled.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
