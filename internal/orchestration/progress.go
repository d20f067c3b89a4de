package orchestration

import (
	"time"

	"github.com/hausp/bigcalc/internal/format"
	"github.com/hausp/bigcalc/internal/progress"
)

// ProgressAggregator folds the per-expression progress streams of a batch
// into one average with an ETA. It wraps format.ProgressWithETA so the CLI
// spinner and the dashboard consume updates through the same API instead
// of each re-implementing the aggregation.
type ProgressAggregator struct {
	state          *format.ProgressWithETA
	numCalculators int
}

// NewProgressAggregator creates an aggregator tracking numCalculators
// concurrent evaluations. Returns nil when numCalculators <= 0.
func NewProgressAggregator(numCalculators int) *ProgressAggregator {
	if numCalculators <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:          format.NewProgressWithETA(numCalculators),
		numCalculators: numCalculators,
	}
}

// AggregatedProgress is the outcome of folding in one progress update.
type AggregatedProgress struct {
	// CalculatorIndex identifies the evaluation that sent the update.
	CalculatorIndex int
	// Value is the raw progress of that evaluation (0.0 to 1.0).
	Value float64
	// AverageProgress is the mean across all tracked evaluations.
	AverageProgress float64
	// ETA is the estimated time remaining from the smoothed rate.
	ETA time.Duration
}

// Update folds in one progress update and returns the new aggregate.
func (a *ProgressAggregator) Update(update progress.ProgressUpdate) AggregatedProgress {
	avgProgress, eta := a.state.UpdateWithETA(update.CalculatorIndex, update.Value)
	return AggregatedProgress{
		CalculatorIndex: update.CalculatorIndex,
		Value:           update.Value,
		AverageProgress: avgProgress,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average without folding anything
// in. Periodic refreshers (the CLI ticker) use this between updates.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA estimate without folding anything in.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumCalculators returns how many evaluations are being tracked.
func (a *ProgressAggregator) NumCalculators() int {
	return a.numCalculators
}

// IsMultiCalculator reports whether more than one evaluation is tracked.
func (a *ProgressAggregator) IsMultiCalculator() bool {
	return a.numCalculators > 1
}

// DrainChannel discards all remaining updates. Reporters call this when
// there is nothing to aggregate so senders never block on a full channel.
func DrainChannel(progressChan <-chan progress.ProgressUpdate) {
	for range progressChan {
	}
}
