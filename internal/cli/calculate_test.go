package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/hausp/bigcalc/internal/config"
)

// TestPrintExecutionConfig tests the PrintExecutionConfig function.
func TestPrintExecutionConfig(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	cfg := config.AppConfig{
		Expr:     "1 << 64",
		Timeout:  time.Minute,
		MaxShift: 1 << 20,
		Workers:  4,
	}

	PrintExecutionConfig(cfg, &buf)

	output := buf.String()

	// Check that output contains expected components
	if output == "" {
		t.Error("PrintExecutionConfig should produce output")
	}
	if !strings.Contains(output, "1 << 64") {
		t.Errorf("PrintExecutionConfig should mention the expression: %s", output)
	}
	if len(output) < 50 {
		t.Errorf("PrintExecutionConfig output seems too short: %s", output)
	}
}

// TestPrintExecutionMode tests the PrintExecutionMode function.
func TestPrintExecutionMode(t *testing.T) {
	t.Parallel()

	t.Run("Single expression mode", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		PrintExecutionMode([]string{"1 + 2"}, &buf)

		output := buf.String()
		if output == "" {
			t.Error("PrintExecutionMode should produce output")
		}
		if !strings.Contains(output, "Single expression") {
			t.Errorf("Expected single expression mode, got: %s", output)
		}
	})

	t.Run("Batch mode", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		PrintExecutionMode([]string{"1 + 2", "3 * 4", "1 << 10"}, &buf)

		output := buf.String()
		if output == "" {
			t.Error("PrintExecutionMode should produce output for multiple expressions")
		}
		if !strings.Contains(output, "Concurrent evaluation") {
			t.Errorf("Expected batch mode, got: %s", output)
		}
	})
}
