package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func assertContainsAll(t *testing.T, output string, wants []string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

func TestFieldHelpers(t *testing.T) {
	cases := []struct {
		name      string
		field     Field
		wantKey   string
		wantValue interface{}
	}{
		{"String", String("expr", "1 + 2"), "expr", "1 + 2"},
		{"Int", Int("count", 42), "count", 42},
		{"Uint64", Uint64("bits", 12345678901234567890), "bits", uint64(12345678901234567890)},
		{"Float64", Float64("seconds", 3.14159), "seconds", 3.14159},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.field.Key != c.wantKey {
				t.Errorf("Key = %q, want %q", c.field.Key, c.wantKey)
			}
			if c.field.Value != c.wantValue {
				t.Errorf("Value = %v, want %v", c.field.Value, c.wantValue)
			}
		})
	}

	t.Run("Err", func(t *testing.T) {
		testErr := errors.New("test error")
		f := Err(testErr)
		if f.Key != "error" || f.Value != testErr {
			t.Errorf("Err() = {%q, %v}, want {error, %v}", f.Key, f.Value, testErr)
		}
	})

	t.Run("Err with nil", func(t *testing.T) {
		f := Err(nil)
		if f.Key != "error" || f.Value != nil {
			t.Errorf("Err(nil) = {%q, %v}, want {error, nil}", f.Key, f.Value)
		}
	})
}

func TestNewZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf))
	if adapter == nil {
		t.Fatal("NewZerologAdapter returned nil")
	}

	adapter.Info("test message")
	assertContainsAll(t, buf.String(), []string{"test message"})
}

func TestNewDefaultLogger(t *testing.T) {
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test-component")
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}

	logger.Info("hello")
	assertContainsAll(t, buf.String(), []string{"test-component", "hello"})
}

func TestZerologAdapter_Info(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		fields   []Field
		contains []string
	}{
		{"no fields", "test message", nil, []string{"test message", "info"}},
		{"with string field", "evaluation started", []Field{String("expr", "1 << 10")}, []string{"evaluation started", "1 << 10"}},
		{"with multiple fields", "request processed", []Field{String("method", "GET"), Int("status", 200)}, []string{"request processed", "GET", "200"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Info(tt.msg, tt.fields...)
			assertContainsAll(t, buf.String(), tt.contains)
		})
	}
}

func TestZerologAdapter_Error(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		err      error
		fields   []Field
		contains []string
	}{
		{"with error", "operation failed", errors.New("connection refused"), nil, []string{"operation failed", "connection refused", "error"}},
		{"with nil error", "warning", nil, nil, []string{"warning", "error"}},
		{"with error and fields", "evaluation failed", errors.New("timeout"), []Field{String("expr", "1 + 2"), Int("retry", 3)}, []string{"evaluation failed", "timeout", "1 + 2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Error(tt.msg, tt.err, tt.fields...)
			assertContainsAll(t, buf.String(), tt.contains)
		})
	}
}

func TestZerologAdapter_Debug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Debug("debug message", String("key", "value"))
	assertContainsAll(t, buf.String(), []string{"debug message", "debug"})
}

func TestZerologAdapter_Printf(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Printf("formatted %s %d", "message", 42)
	assertContainsAll(t, buf.String(), []string{"formatted message 42"})
}

func TestZerologAdapter_Println(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Println("hello", "world")
	assertContainsAll(t, buf.String(), []string{"hello", "world"})
}

func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string field", Field{Key: "str", Value: "hello"}, "hello"},
		{"int field", Field{Key: "num", Value: 42}, "42"},
		{"int64 field", Field{Key: "big", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64 field", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64 field", Field{Key: "pi", Value: 3.14}, "3.14"},
		{"error field", Field{Key: "err", Value: errors.New("oops")}, "oops"},
		{"bool field", Field{Key: "flag", Value: true}, "true"},
		{"interface field", Field{Key: "data", Value: struct{ X int }{X: 1}}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Info("test", tt.field)
			assertContainsAll(t, buf.String(), []string{tt.contains})
		})
	}
}

func TestNewStdLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewStdLoggerAdapter(log.New(&buf, "", 0))
	if adapter == nil {
		t.Fatal("NewStdLoggerAdapter returned nil")
	}

	adapter.Info("test")
	assertContainsAll(t, buf.String(), []string{"test"})
}

func TestStdLoggerAdapter_Levels(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{
			"info no fields",
			func(l Logger) { l.Info("info message") },
			[]string{"[INFO]", "info message"},
		},
		{
			"info with fields",
			func(l Logger) { l.Info("evaluation done", String("expr", "7 * 8")) },
			[]string{"[INFO]", "evaluation done", "expr", "7 * 8"},
		},
		{
			"error with error",
			func(l Logger) { l.Error("failed", errors.New("boom")) },
			[]string{"[ERROR]", "failed", "boom"},
		},
		{
			"error with error and fields",
			func(l Logger) { l.Error("eval failed", errors.New("timeout"), String("expr", "1 << 30")) },
			[]string{"[ERROR]", "eval failed", "timeout", "1 << 30"},
		},
		{
			"debug no fields",
			func(l Logger) { l.Debug("debug info") },
			[]string{"[DEBUG]", "debug info"},
		},
		{
			"debug with fields",
			func(l Logger) { l.Debug("trace", Int("line", 42)) },
			[]string{"[DEBUG]", "trace", "line", "42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			adapter := NewStdLoggerAdapter(log.New(&buf, "", 0))
			tt.log(adapter)
			assertContainsAll(t, buf.String(), tt.contains)
		})
	}
}

func TestStdLoggerAdapter_Printf(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewStdLoggerAdapter(log.New(&buf, "", 0))

	adapter.Printf("value is %d", 123)
	assertContainsAll(t, buf.String(), []string{"value is 123"})
}

func TestStdLoggerAdapter_Println(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewStdLoggerAdapter(log.New(&buf, "", 0))

	adapter.Println("a", "b", "c")
	assertContainsAll(t, buf.String(), []string{"a", "b", "c"})
}

func TestLoggerInterface(t *testing.T) {
	var buf bytes.Buffer
	var _ Logger = NewLogger(&buf, "test")
	var _ Logger = NewStdLoggerAdapter(log.New(&buf, "", 0))
}
