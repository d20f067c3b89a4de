package orchestration

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hausp/bigcalc/internal/config"
	apperrors "github.com/hausp/bigcalc/internal/errors"
	"github.com/hausp/bigcalc/internal/expr"
	"github.com/hausp/bigcalc/internal/progress"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking evaluation
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// ExecuteEvaluations orchestrates the concurrent evaluation of one or more
// expressions.
//
// It manages the lifecycle of evaluation goroutines, collects their results,
// and coordinates the display of progress updates. This function is the core of
// the application's concurrency model. Each evaluation is bounded by
// cfg.Timeout and by the cfg.MaxShift operand limit.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - expressions: The expressions to evaluate.
//   - cfg: The application configuration (timeout, limits).
//   - progressReporter: The progress reporter for displaying updates (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []EvalResult: A slice containing the result of each evaluation, in input order.
func ExecuteEvaluations(ctx context.Context, expressions []string, cfg config.AppConfig, progressReporter ProgressReporter, out io.Writer) []EvalResult {
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	results := make([]EvalResult, len(expressions))
	progressChan := make(chan progress.ProgressUpdate, len(expressions)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(expressions), out)

	observer := progress.NewChannelObserver(progressChan)
	for i, expression := range expressions {
		idx, input := i, expression
		g.Go(func() error {
			results[idx] = evaluateOne(gctx, input, idx, cfg, observer)
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// EvaluateExpression evaluates a single expression with the configured
// timeout and limits, reporting progress through the callback when non-nil.
//
// Parameters:
//   - ctx: The parent context.
//   - input: The expression to evaluate.
//   - cfg: The application configuration.
//   - cb: Optional progress callback.
//
// Returns:
//   - EvalResult: The evaluation outcome, with Err set on failure.
func EvaluateExpression(ctx context.Context, input string, cfg config.AppConfig, cb progress.ProgressCallback) EvalResult {
	evalCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	opts := []expr.EvaluatorOption{expr.WithMaxShift(cfg.MaxShift)}
	if cb != nil {
		opts = append(opts, expr.WithProgress(cb))
	}

	start := time.Now()
	value, err := expr.NewEvaluator(opts...).EvaluateString(evalCtx, input)
	result := EvalResult{
		Expression: input,
		Duration:   time.Since(start),
	}
	if err != nil {
		result.Err = classifyError(err, cfg.Timeout)
		return result
	}
	result.Result = value
	return result
}

func evaluateOne(ctx context.Context, input string, idx int, cfg config.AppConfig, observer progress.ProgressObserver) EvalResult {
	return EvaluateExpression(ctx, input, cfg, func(value float64) {
		observer.OnProgress(progress.ProgressUpdate{CalculatorIndex: idx, Value: value})
	})
}

// classifyError wraps evaluation failures into the application's typed
// errors. Deadline errors become TimeoutError so callers can report the
// configured limit rather than a bare context message.
func classifyError(err error, limit time.Duration) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.TimeoutError{Operation: "evaluate", Limit: limit}
	}
	return apperrors.EvalError{Cause: err}
}
