package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/hausp/bigcalc/internal/bigint"
	"github.com/hausp/bigcalc/internal/progress"
)

// EvalResult encapsulates the outcome of a single expression evaluation.
// It serves as the shared domain type between orchestration and presentation layers.
type EvalResult struct {
	// Expression is the input that was evaluated.
	Expression string
	// Result is the computed value. It is the zero Int if an error occurred.
	Result bigint.Int
	// Duration is the time taken to complete the evaluation.
	Duration time.Duration
	// Err contains any error that occurred during the evaluation.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Verbose  bool
	Details  bool
	ShowFull bool
	Hex      bool
	Digits   int
}

// ProgressReporter defines the interface for displaying evaluation progress.
// This interface decouples the orchestration layer from the presentation layer,
// following Clean Architecture principles where business logic should not
// depend on UI concerns.
//
// Implementations handle the visual representation of progress (spinners,
// progress bars, etc.) while the orchestration layer focuses on coordinating
// the evaluations.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until the
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from evaluators.
	//   - numEvaluations: The number of concurrent evaluations being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numEvaluations int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
// This allows passing a function directly where a ProgressReporter is expected.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numEvaluations int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numEvaluations int, out io.Writer) {
	f(wg, progressChan, numEvaluations, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting evaluation results.
// This interface decouples the orchestration layer from presentation concerns,
// allowing different output formats (CLI, JSON, etc.) without modifying
// the orchestration logic.
type ResultPresenter interface {
	// PresentResult displays the final evaluation result.
	PresentResult(result EvalResult, opts PresentationOptions, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler handles evaluation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
