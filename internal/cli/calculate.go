package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/hausp/bigcalc/internal/config"
	"github.com/hausp/bigcalc/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the user.
// It shows the expression, timeout, environment details, and evaluation limits.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Evaluating %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorBlue(), cfg.Expr, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Evaluation limits: MaxShift=%s%d%s bits, Workers=%s%d%s.\n",
		ui.ColorCyan(), cfg.MaxShift, ui.ColorReset(), ui.ColorCyan(), cfg.Workers, ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single expression vs batch).
//
// Parameters:
//   - expressions: The expressions that will be evaluated.
//   - out: The writer for standard output.
func PrintExecutionMode(expressions []string, out io.Writer) {
	var modeDesc string
	if len(expressions) > 1 {
		modeDesc = fmt.Sprintf("Concurrent evaluation of %s%d%s expressions",
			ui.ColorGreen(), len(expressions), ui.ColorReset())
	} else {
		modeDesc = "Single expression evaluation"
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
