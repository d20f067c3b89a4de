package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/hausp/bigcalc/internal/errors"
	"github.com/hausp/bigcalc/internal/format"
	"github.com/hausp/bigcalc/internal/orchestration"
	"github.com/hausp/bigcalc/internal/progress"
	"github.com/hausp/bigcalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner and progress bar
// display during evaluations.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing evaluations.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numEvaluations int, out io.Writer) {
	DisplayProgress(wg, progressChan, numEvaluations, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for evaluation results in the
// command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
	_ orchestration.ErrorHandler      = CLIResultPresenter{}
)

// PresentSummaryTable displays the evaluation summary table with expressions,
// durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentSummaryTable(results []orchestration.EvalResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Evaluation Summary ---\n")

	// Find the maximum expression width for proper alignment
	maxExprLen := 10 // "Expression" header length
	maxDurationLen := 8 // "Duration" header length
	for _, res := range results {
		if len(res.Expression) > maxExprLen {
			maxExprLen = len(res.Expression)
		}
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	// Print header with proper padding
	fmt.Fprintf(out, "%sExpression%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxExprLen-10),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	// Print each result row
	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		}
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Expression, ui.ColorReset(), padRight("", maxExprLen-len(res.Expression)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// padRight returns a string of spaces with the given length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult displays the final evaluation result using the CLI's
// DisplayResult function.
func (CLIResultPresenter) PresentResult(result orchestration.EvalResult, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayResult(result.Result, result.Expression, result.Duration, DisplayOptions{
		Verbose:  opts.Verbose,
		Details:  opts.Details,
		ShowFull: opts.ShowFull,
		Hex:      opts.Hex,
		Digits:   opts.Digits,
	}, out)
}

// FormatDuration formats a duration for display using the CLI's standard
// duration formatting.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError handles evaluation errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleEvalError(err, duration, out, ui.ThemeColorProvider{})
}

// DisplayMemoryStats shows memory statistics after an evaluation.
func DisplayMemoryStats(heapAlloc, sys uint64, numGC uint32, pauseTotalNs uint64, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(heapAlloc))
	fmt.Fprintf(out, "  System reserved: %s\n", format.FormatBytes(sys))
	fmt.Fprintf(out, "  GC cycles:       %d\n", numGC)
	if pauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(pauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms (GC disabled)\n")
	}
}
