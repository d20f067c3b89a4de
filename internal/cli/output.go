// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult], [FormatExecutionDuration].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hausp/bigcalc/internal/bigint"
	"github.com/hausp/bigcalc/internal/format"
	"github.com/hausp/bigcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows additional context around the result.
	Verbose bool
	// ShowFull disables truncation of large results.
	ShowFull bool
	// Hex renders results in hexadecimal.
	Hex bool
	// Digits overrides the truncation threshold (0 = TruncationLimit).
	Digits int
}

// FormatHexResult renders x in hexadecimal from its base-2^32 groups: an
// optional '-', the "0x" prefix, the most significant group without leading
// zeros, and every later group zero-padded to 8 hex digits.
func FormatHexResult(x bigint.Int) string {
	groups := x.Groups()
	var b strings.Builder
	if x.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString("0x")
	last := len(groups) - 1
	fmt.Fprintf(&b, "%x", groups[last])
	for i := last - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%08x", groups[i])
	}
	return b.String()
}

// FormatResult renders x in decimal, or in hexadecimal when hex is true.
func FormatResult(x bigint.Int, hex bool) string {
	if hex {
		return FormatHexResult(x)
	}
	return x.String()
}

// countDigits counts the digits of a rendered result, ignoring the sign and
// the hexadecimal prefix.
func countDigits(s string) int {
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "0x")
	return len(s)
}

// WriteResultToFile writes an evaluation result to a file.
//
// Parameters:
//   - result: The evaluated value.
//   - expression: The expression that produced the value.
//   - duration: The evaluation duration.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result bigint.Int, expression string, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	resultStr := FormatResult(result, config.Hex)

	// Write header
	fmt.Fprintf(file, "# Expression Evaluation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Expression: %s\n", expression)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Bits: %d\n", result.BitLen())
	fmt.Fprintf(file, "# Digits: %d\n", countDigits(resultStr))
	fmt.Fprintf(file, "\n")

	// Write result
	fmt.Fprintf(file, "%s =\n%s\n", expression, resultStr)

	return nil
}

// FormatQuietResult formats a result for quiet mode output.
// Returns a single-line result suitable for scripting.
//
// Parameters:
//   - result: The evaluated value.
//   - hex: Render in hexadecimal instead of decimal.
//
// Returns:
//   - string: The formatted result string.
func FormatQuietResult(result bigint.Int, hex bool) string {
	return FormatResult(result, hex)
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
//
// Parameters:
//   - out: The output writer.
//   - result: The evaluated value.
//   - hex: Render in hexadecimal instead of decimal.
func DisplayQuietResult(out io.Writer, result bigint.Int, hex bool) {
	fmt.Fprintln(out, FormatQuietResult(result, hex))
}

// DisplayOptions controls the standard result display.
type DisplayOptions struct {
	// Verbose prints extra context lines.
	Verbose bool
	// Details prints a detailed result analysis.
	Details bool
	// ShowFull disables truncation of large results.
	ShowFull bool
	// Hex renders the result in hexadecimal.
	Hex bool
	// Digits overrides the truncation threshold (0 = TruncationLimit).
	Digits int
}

// DisplayResult displays an evaluation result with optional detail sections.
//
// Parameters:
//   - result: The evaluated value.
//   - expression: The expression that produced the value.
//   - duration: The evaluation duration.
//   - opts: Display options.
//   - out: The output writer.
func DisplayResult(result bigint.Int, expression string, duration time.Duration, opts DisplayOptions, out io.Writer) {
	resultStr := FormatResult(result, opts.Hex)
	numDigits := countDigits(resultStr)
	limit := ResolveTruncationLimit(opts.Digits)

	if opts.Verbose {
		fmt.Fprintf(out, "Evaluation completed in %s%s%s.\n",
			ui.ColorYellow(), format.FormatExecutionDuration(duration), ui.ColorReset())
	}

	if opts.Details {
		fmt.Fprintf(out, "\n%sDetailed result analysis:%s\n", ui.ColorBold(), ui.ColorReset())
		fmt.Fprintf(out, "  Evaluation time:    %s%s%s\n",
			ui.ColorCyan(), format.FormatExecutionDuration(duration), ui.ColorReset())
		fmt.Fprintf(out, "  Result binary size: %s%d%s bits\n",
			ui.ColorCyan(), result.BitLen(), ui.ColorReset())
		fmt.Fprintf(out, "  Number of digits:   %s%s%s\n",
			ui.ColorCyan(), format.FormatNumberString(fmt.Sprintf("%d", numDigits)), ui.ColorReset())
	}

	fmt.Fprintf(out, "\n%sResult:%s\n", ui.ColorBold(), ui.ColorReset())
	switch {
	case numDigits > limit && !opts.ShowFull:
		fmt.Fprintf(out, "%s = %s%s...%s%s (truncated)\n",
			expression, ui.ColorGreen(),
			resultStr[:DisplayEdges], resultStr[len(resultStr)-DisplayEdges:],
			ui.ColorReset())
		fmt.Fprintf(out, "Tip: use %s--full%s to display all %s digits.\n",
			ui.ColorYellow(), ui.ColorReset(), format.FormatNumberString(fmt.Sprintf("%d", numDigits)))
	case numDigits <= limit && !opts.Hex:
		fmt.Fprintf(out, "%s = %s%s%s\n",
			expression, ui.ColorGreen(), format.FormatNumberString(resultStr), ui.ColorReset())
	default:
		fmt.Fprintf(out, "%s = %s%s%s\n",
			expression, ui.ColorGreen(), resultStr, ui.ColorReset())
	}
}

// DisplayResultWithConfig displays a result with the given output configuration.
// This is a unified function that handles all output modes.
//
// Parameters:
//   - out: The output writer.
//   - result: The evaluated value.
//   - expression: The expression that produced the value.
//   - duration: The evaluation duration.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, result bigint.Int, expression string, duration time.Duration, config OutputConfig) error {
	// Handle quiet mode
	if config.Quiet {
		DisplayQuietResult(out, result, config.Hex)
	} else {
		// Use standard display
		DisplayResult(result, expression, duration, DisplayOptions{
			Verbose:  config.Verbose,
			ShowFull: config.ShowFull,
			Hex:      config.Hex,
			Digits:   config.Digits,
		}, out)
	}

	// Save to file if requested
	if config.OutputFile != "" {
		if err := WriteResultToFile(result, expression, duration, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}
