// Package cli provides the REPL (Read-Eval-Print Loop) functionality
// for interactive expression evaluation.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hausp/bigcalc/internal/config"
	"github.com/hausp/bigcalc/internal/orchestration"
	"github.com/hausp/bigcalc/internal/progress"
	"github.com/hausp/bigcalc/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Timeout is the maximum duration for each evaluation.
	Timeout time.Duration
	// MaxShift bounds the absolute shift count accepted per operation.
	MaxShift int64
	// ShowFull disables truncation of large results.
	ShowFull bool
	// Details displays the detailed result analysis after each evaluation.
	Details bool
	// Hex renders results in hexadecimal.
	Hex bool
	// Digits overrides the truncation threshold (0 = default).
	Digits int
}

// REPL represents an interactive expression evaluator session.
type REPL struct {
	config REPLConfig
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a new REPL instance.
//
// Parameters:
//   - cfg: REPL configuration.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(cfg REPLConfig) *REPL {
	if cfg.Timeout <= 0 {
		cfg.Timeout = config.DefaultTimeout
	}
	return &REPL{
		config: cfg,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"calc> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s🔢 Big Integer Calculator - Interactive Mode%s          %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<expression>%s      - Evaluate an expression, e.g. (1 << 64) * 3 - 1\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sfull%s              - Toggle untruncated result display\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sdetails%s           - Toggle detailed result analysis\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shex%s               - Toggle hexadecimal result display\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sdigits <n>%s        - Truncate results longer than n digits (0 = default)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %stimeout <dur>%s     - Change the evaluation timeout, e.g. timeout 30s\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s            - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s              - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s       - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "\nOperators: %s+ - * << >> == != < <= > >=%s (comparisons yield 0 or 1)\n",
		ui.ColorCyan(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "full", "f":
		r.cmdFull()
	case "details", "d":
		r.cmdDetails()
	case "hex", "x":
		r.cmdHex()
	case "digits":
		r.cmdDigits(args)
	case "timeout", "t":
		r.cmdTimeout(args)
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// Anything else is treated as an expression
		r.evaluate(input)
	}

	return true
}

// evaluate runs a single expression with the current session settings.
func (r *REPL) evaluate(input string) {
	cfg := config.AppConfig{
		Timeout:  r.config.Timeout,
		MaxShift: r.config.MaxShift,
	}

	fmt.Fprintf(r.out, "Evaluating %s%s%s...\n", ui.ColorCyan(), input, ui.ColorReset())

	// Create a progress channel
	progressChan := make(chan progress.ProgressUpdate, 10)

	// Use DisplayProgress to show a spinner and progress bar
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayProgress(&wg, progressChan, 1, r.out)

	observer := progress.NewChannelObserver(progressChan)
	result := orchestration.EvaluateExpression(context.Background(), input, cfg, func(value float64) {
		observer.OnProgress(progress.ProgressUpdate{CalculatorIndex: 0, Value: value})
	})
	close(progressChan)
	wg.Wait()

	if result.Err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), result.Err, ui.ColorReset())
		return
	}

	// Format duration
	durationStr := FormatExecutionDuration(result.Duration)

	// Display result
	fmt.Fprintf(r.out, "\n%sResult:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Time: %s%s%s\n", ui.ColorGreen(), durationStr, ui.ColorReset())
	fmt.Fprintf(r.out, "  Bits:  %s%d%s\n", ui.ColorCyan(), result.Result.BitLen(), ui.ColorReset())

	resultStr := FormatResult(result.Result, r.config.Hex)
	numDigits := countDigits(resultStr)
	fmt.Fprintf(r.out, "  Digits: %s%d%s\n", ui.ColorCyan(), numDigits, ui.ColorReset())

	if r.config.Details {
		fmt.Fprintf(r.out, "  Sign:   %s%d%s\n", ui.ColorCyan(), result.Result.Sign(), ui.ColorReset())
	}

	if numDigits > ResolveTruncationLimit(r.config.Digits) && !r.config.ShowFull {
		fmt.Fprintf(r.out, "  %s = %s%s...%s%s (truncated)\n",
			input, ui.ColorGreen(), resultStr[:DisplayEdges], resultStr[len(resultStr)-DisplayEdges:], ui.ColorReset())
	} else {
		fmt.Fprintf(r.out, "  %s = %s%s%s\n", input, ui.ColorGreen(), resultStr, ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

// cmdFull toggles untruncated output mode.
func (r *REPL) cmdFull() {
	r.config.ShowFull = !r.config.ShowFull
	status := "disabled"
	if r.config.ShowFull {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Full result display: %s%s%s\n", ui.ColorGreen(), status, ui.ColorReset())
}

// cmdDetails toggles the detailed result analysis.
func (r *REPL) cmdDetails() {
	r.config.Details = !r.config.Details
	status := "disabled"
	if r.config.Details {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Detailed analysis: %s%s%s\n", ui.ColorGreen(), status, ui.ColorReset())
}

// cmdHex toggles hexadecimal result display.
func (r *REPL) cmdHex() {
	r.config.Hex = !r.config.Hex
	base := "decimal"
	if r.config.Hex {
		base = "hexadecimal"
	}
	fmt.Fprintf(r.out, "Result display base: %s%s%s\n", ui.ColorGreen(), base, ui.ColorReset())
}

// cmdDigits handles the "digits" command.
func (r *REPL) cmdDigits(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: digits <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		fmt.Fprintf(r.out, "%sInvalid digit count: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}

	r.config.Digits = n
	fmt.Fprintf(r.out, "Truncation threshold changed to: %s%d%s digits\n",
		ui.ColorGreen(), ResolveTruncationLimit(n), ui.ColorReset())
}

// cmdTimeout handles the "timeout" command.
func (r *REPL) cmdTimeout(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: timeout <duration>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	d, err := time.ParseDuration(args[0])
	if err != nil || d <= 0 {
		fmt.Fprintf(r.out, "%sInvalid duration: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}

	r.config.Timeout = d
	fmt.Fprintf(r.out, "Timeout changed to: %s%s%s\n", ui.ColorGreen(), d, ui.ColorReset())
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:    %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintf(r.out, "  Max shift:  %s%d%s bits\n", ui.ColorCyan(), r.config.MaxShift, ui.ColorReset())
	fullStatus := "no"
	if r.config.ShowFull {
		fullStatus = "yes"
	}
	fmt.Fprintf(r.out, "  Full:       %s%s%s\n", ui.ColorCyan(), fullStatus, ui.ColorReset())
	detailStatus := "no"
	if r.config.Details {
		detailStatus = "yes"
	}
	fmt.Fprintf(r.out, "  Details:    %s%s%s\n", ui.ColorCyan(), detailStatus, ui.ColorReset())
	base := "decimal"
	if r.config.Hex {
		base = "hexadecimal"
	}
	fmt.Fprintf(r.out, "  Base:       %s%s%s\n", ui.ColorCyan(), base, ui.ColorReset())
	fmt.Fprintf(r.out, "  Truncation: %s%d%s digits\n",
		ui.ColorCyan(), ResolveTruncationLimit(r.config.Digits), ui.ColorReset())
	fmt.Fprintln(r.out)
}
