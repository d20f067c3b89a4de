package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hausp/bigcalc/internal/bigint"
)

func TestWriteResultToFile(t *testing.T) {
	t.Parallel()
	// Create temporary directory
	tmpDir := t.TempDir()

	testCases := []struct {
		name        string
		outputFile  string
		expectError bool
		checkFunc   func(t *testing.T, filePath string)
	}{
		{
			name:        "Write decimal result to file",
			outputFile:  filepath.Join(tmpDir, "result.txt"),
			expectError: false,
			checkFunc: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				if err != nil {
					t.Fatalf("Failed to read output file: %v", err)
				}
				contentStr := string(content)
				if !strings.Contains(contentStr, "6 * 9 + 1 =") {
					t.Error("File should contain '6 * 9 + 1 ='")
				}
				if !strings.Contains(contentStr, "55") {
					t.Error("File should contain result '55'")
				}
			},
		},
		{
			name:        "Empty output file (no write)",
			outputFile:  "",
			expectError: false,
			checkFunc:   nil, // No file should be created
		},
		{
			name:        "Create nested directory",
			outputFile:  filepath.Join(tmpDir, "nested", "dir", "result.txt"),
			expectError: false,
			checkFunc: func(t *testing.T, filePath string) {
				if _, err := os.Stat(filePath); err != nil {
					t.Errorf("File should exist in nested directory: %v", err)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := bigint.New(55)
			config := OutputConfig{
				OutputFile: tc.outputFile,
			}

			err := WriteResultToFile(result, "6 * 9 + 1", 100*time.Millisecond, config)

			if tc.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if tc.outputFile != "" && tc.checkFunc != nil {
					tc.checkFunc(t, tc.outputFile)
				}
			}
		})
	}
}

func TestFormatQuietResult(t *testing.T) {
	t.Parallel()

	t.Run("Decimal format", func(t *testing.T) {
		t.Parallel()
		output := FormatQuietResult(bigint.New(55), false)
		if output != "55" {
			t.Errorf("Expected '55', got '%s'", output)
		}
	})

	t.Run("Large number decimal", func(t *testing.T) {
		t.Parallel()
		large := bigint.MustParse("123456789012345678901234567890")
		output := FormatQuietResult(large, false)
		if output != large.String() {
			t.Errorf("Expected full decimal string, got '%s'", output)
		}
	})

	t.Run("Negative value", func(t *testing.T) {
		t.Parallel()
		output := FormatQuietResult(bigint.New(-42), false)
		if output != "-42" {
			t.Errorf("Expected '-42', got '%s'", output)
		}
	})

	t.Run("Hexadecimal format", func(t *testing.T) {
		t.Parallel()
		output := FormatQuietResult(bigint.New(255), true)
		if output != "0xff" {
			t.Errorf("Expected '0xff', got '%s'", output)
		}
	})
}

func TestFormatHexResult(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0x0"},
		{"255", "0xff"},
		{"-42", "-0x2a"},
		{"4294967295", "0xffffffff"},
		{"4294967296", "0x100000000"},
		{"18446744073709551615", "0xffffffffffffffff"},
		{"-18446744073709551616", "-0x10000000000000000"},
	}
	for _, tt := range cases {
		if got := FormatHexResult(bigint.MustParse(tt.in)); got != tt.want {
			t.Errorf("FormatHexResult(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestDisplayQuietResult(t *testing.T) {
	t.Parallel()

	t.Run("Decimal output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		DisplayQuietResult(&buf, bigint.New(55), false)
		output := buf.String()
		if !strings.Contains(output, "55") {
			t.Errorf("Output should contain '55', got '%s'", output)
		}
	})

	t.Run("Hexadecimal output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		DisplayQuietResult(&buf, bigint.New(255), true)
		if got := strings.TrimSpace(buf.String()); got != "0xff" {
			t.Errorf("Output should be '0xff', got '%s'", got)
		}
	})
}

func TestDisplayResultWithConfig(t *testing.T) {
	t.Parallel()
	result := bigint.New(55)
	tmpDir := t.TempDir()

	t.Run("Quiet mode", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		config := OutputConfig{
			Quiet: true,
		}
		err := DisplayResultWithConfig(&buf, result, "50 + 5", 100*time.Millisecond, config)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, "55") {
			t.Errorf("Quiet output should contain result, got '%s'", output)
		}
	})

	t.Run("Normal mode with file output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		outputFile := filepath.Join(tmpDir, "test_output.txt")
		config := OutputConfig{
			OutputFile: outputFile,
			Quiet:      false,
		}
		err := DisplayResultWithConfig(&buf, result, "50 + 5", 100*time.Millisecond, config)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		// Check that file was created
		if _, err := os.Stat(outputFile); err != nil {
			t.Errorf("Output file should exist: %v", err)
		}
		// Check that success message was printed
		output := buf.String()
		if !strings.Contains(output, "Result saved to") {
			t.Errorf("Should show file save message, got '%s'", output)
		}
	})

	t.Run("Quiet mode with file output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		outputFile := filepath.Join(tmpDir, "quiet_output.txt")
		config := OutputConfig{
			OutputFile: outputFile,
			Quiet:      true,
		}
		err := DisplayResultWithConfig(&buf, result, "50 + 5", 100*time.Millisecond, config)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		// Check that file was created
		if _, err := os.Stat(outputFile); err != nil {
			t.Errorf("Output file should exist: %v", err)
		}
		// In quiet mode, file save message should not appear
		output := buf.String()
		if strings.Contains(output, "Result saved to") {
			t.Error("Quiet mode should not show file save message")
		}
	})

}
