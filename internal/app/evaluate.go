package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hausp/bigcalc/internal/cli"
	apperrors "github.com/hausp/bigcalc/internal/errors"
	"github.com/hausp/bigcalc/internal/metrics"
	"github.com/hausp/bigcalc/internal/orchestration"
	"github.com/hausp/bigcalc/internal/ui"
)

// runEval orchestrates the one-shot evaluation command. Several expressions
// can be given at once, separated by semicolons; they are evaluated
// concurrently and summarized in a table.
func (a *Application) runEval(ctx context.Context, out io.Writer) int {
	return a.evalExpressions(ctx, out, SplitExpressions(a.Config.Expr))
}

// runEvalFile evaluates the expressions read from the configured file.
func (a *Application) runEvalFile(ctx context.Context, out io.Writer) int {
	expressions, err := ReadExpressionsFile(a.Config.ExprFile)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error reading expressions: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return a.evalExpressions(ctx, out, expressions)
}

func (a *Application) evalExpressions(ctx context.Context, out io.Writer, expressions []string) int {
	if len(expressions) == 0 {
		fmt.Fprintln(a.ErrWriter, "No expression to evaluate.")
		return apperrors.ExitErrorConfig
	}

	// Setup lifecycle (signals; per-evaluation timeout applies inside orchestration)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(expressions, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	results := orchestration.ExecuteEvaluations(ctx, expressions, a.Config, progressReporter, progressOut)

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		ShowFull:   a.Config.ShowFull,
		Hex:        a.Config.Hex,
		Digits:     a.Config.Digits,
	}

	if len(results) == 1 {
		return a.presentSingle(results[0], outputCfg, out)
	}
	return a.presentBatch(results, outputCfg, out)
}

// SplitExpressions breaks a semicolon-separated input into individual
// expressions, dropping empty segments.
func SplitExpressions(input string) []string {
	parts := strings.Split(input, ";")
	expressions := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			expressions = append(expressions, trimmed)
		}
	}
	return expressions
}

// ReadExpressionsFile loads expressions from a file, one per line. Blank
// lines and lines starting with '#' are skipped; each remaining line may
// itself hold several semicolon-separated expressions.
func ReadExpressionsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewConfigError("cannot read expressions file %s: %v", path, err)
	}

	var expressions []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		expressions = append(expressions, SplitExpressions(line)...)
	}
	if len(expressions) == 0 {
		return nil, apperrors.NewConfigError("expressions file %s holds no expressions", path)
	}
	return expressions, nil
}

func (a *Application) presentSingle(result orchestration.EvalResult, outputCfg cli.OutputConfig, out io.Writer) int {
	presenter := cli.CLIResultPresenter{}

	if result.Err != nil {
		return presenter.HandleError(result.Err, result.Duration, out)
	}

	if err := cli.DisplayResultWithConfig(out, result.Result, result.Expression, result.Duration, outputCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}

	if outputCfg.Verbose && !outputCfg.Quiet {
		snap := metrics.NewMemoryCollector().Snapshot()
		cli.DisplayMemoryStats(snap.HeapAlloc, snap.Sys, snap.NumGC, snap.PauseTotalNs, out)
	}
	return apperrors.ExitSuccess
}

func (a *Application) presentBatch(results []orchestration.EvalResult, outputCfg cli.OutputConfig, out io.Writer) int {
	presenter := cli.CLIResultPresenter{}
	presOpts := orchestration.PresentationOptions{
		Verbose:  a.Config.Verbose,
		Details:  a.Config.Details,
		ShowFull: a.Config.ShowFull,
		Hex:      a.Config.Hex,
		Digits:   a.Config.Digits,
	}

	exitCode := apperrors.ExitSuccess
	if outputCfg.Quiet {
		for _, result := range results {
			if result.Err != nil {
				exitCode = presenter.HandleError(result.Err, result.Duration, out)
				continue
			}
			cli.DisplayQuietResult(out, result.Result, outputCfg.Hex)
		}
		return exitCode
	}

	presenter.PresentSummaryTable(results, out)
	for _, result := range results {
		if result.Err != nil {
			code := presenter.HandleError(result.Err, result.Duration, out)
			if exitCode == apperrors.ExitSuccess {
				exitCode = code
			}
			continue
		}
		presenter.PresentResult(result, presOpts, out)
	}

	// File output covers the first successful result; the file format holds a
	// single expression.
	if outputCfg.OutputFile != "" && exitCode == apperrors.ExitSuccess {
		for _, result := range results {
			if result.Err != nil {
				continue
			}
			if err := cli.WriteResultToFile(result.Result, result.Expression, result.Duration, outputCfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error saving result: %v\n", err)
				return apperrors.ExitErrorGeneric
			}
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), outputCfg.OutputFile, ui.ColorReset())
			break
		}
	}

	return exitCode
}
