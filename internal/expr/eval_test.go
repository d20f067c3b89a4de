package expr

import (
	"context"
	"errors"
	"testing"

	"github.com/hausp/bigcalc/internal/bigint"
)

func evalString(t *testing.T, input string) bigint.Int {
	t.Helper()
	result, err := NewEvaluator().EvaluateString(context.Background(), input)
	if err != nil {
		t.Fatalf("EvaluateString(%q) returned error: %v", input, err)
	}
	return result
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single literal", "42", "42"},
		{"addition", "1 + 2", "3"},
		{"subtraction below zero", "2 - 5", "-3"},
		{"multiplication", "6 * 7", "42"},
		{"precedence multiplication over addition", "2 + 3 * 4", "14"},
		{"parentheses override precedence", "(2 + 3) * 4", "20"},
		{"unary minus", "-42", "-42"},
		{"unary minus on parentheses", "-(2 + 3)", "-5"},
		{"double negation", "--42", "42"},
		{"unary plus", "+42", "42"},
		{"left shift", "1 << 10", "1024"},
		{"right shift", "1024 >> 3", "128"},
		{"shift binds looser than addition", "1 << 2 + 3", "32"},
		{"negative left shift inverts", "1024 << -3", "128"},
		{"negative right shift inverts", "1 >> -10", "1024"},
		{"negative value right shift floors", "-5 >> 1", "-3"},
		{"huge right shift clamps negative to minus one", "-7 >> 1000000", "-1"},
		{"huge right shift zeroes positive", "7 >> 1000000", "0"},
		{"equality true", "2 + 2 == 4", "1"},
		{"equality false", "2 + 2 == 5", "0"},
		{"inequality", "1 != 2", "1"},
		{"less", "2 < 3", "1"},
		{"less or equal", "3 <= 3", "1"},
		{"greater", "-1 > -2", "1"},
		{"greater or equal", "-2 >= -1", "0"},
		{"comparison binds loosest", "1 << 3 == 2 * 4", "1"},
		{"parenthesized comparison can feed another", "(1 < 2) < 3", "1"},
		{
			"large operands",
			"123456781234567812345678 * 987654321987654321987654321",
			"121932623565005237995731260248436636805364022374638",
		},
		{"large power of two", "1 << 100", "1267650600228229401496703205376"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := evalString(t, tt.input)
			if got.String() != tt.want {
				t.Errorf("evaluate(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrorsCarryOffset(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		input      string
		wantOffset int
	}{
		{"empty input", "", 0},
		{"trailing operator", "1 +", 3},
		{"unbalanced parenthesis", "(1 + 2", 6},
		{"unexpected closing parenthesis", "1 + )", 4},
		{"adjacent numbers", "1 2", 2},
		{"operator only", "*", 0},
		{"chained comparison", "1 < 2 < 3", 6},
		{"chained mixed comparison", "1 == 1 >= 0", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tt.input)
			}
			var synErr *SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("error should be *SyntaxError, got %T: %v", err, err)
			}
			if synErr.Offset != tt.wantOffset {
				t.Errorf("Parse(%q) error offset = %d, want %d", tt.input, synErr.Offset, tt.wantOffset)
			}
		})
	}
}

func TestShiftCountRangeError(t *testing.T) {
	t.Parallel()
	_, err := NewEvaluator().EvaluateString(context.Background(), "1 << (1 << 70)")
	if err == nil {
		t.Fatal("shift by a count beyond int64 should fail")
	}
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("error should be *RangeError, got %T: %v", err, err)
	}
}

func TestMaxShiftLimit(t *testing.T) {
	t.Parallel()
	eval := NewEvaluator(WithMaxShift(64))

	if _, err := eval.EvaluateString(context.Background(), "1 << 64"); err != nil {
		t.Fatalf("shift at the limit should succeed: %v", err)
	}

	for _, input := range []string{"1 << 65", "1 >> -65"} {
		_, err := eval.EvaluateString(context.Background(), input)
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("evaluate(%q) should fail with *RangeError, got %v", input, err)
		}
	}
}

func TestEvaluateCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEvaluator().EvaluateString(ctx, "1 + 2")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestEvaluateLiteralIgnoresCancellationCheck(t *testing.T) {
	t.Parallel()
	// A bare literal involves no binary operation, so no cancellation
	// checkpoint is reached.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := NewEvaluator().EvaluateString(ctx, "42")
	if err != nil {
		t.Fatalf("literal evaluation should not fail: %v", err)
	}
	if result.String() != "42" {
		t.Errorf("got %s, want 42", result)
	}
}

func TestEvaluateProgress(t *testing.T) {
	t.Parallel()
	var reports []float64
	eval := NewEvaluator(WithProgress(func(p float64) {
		reports = append(reports, p)
	}))

	_, err := eval.EvaluateString(context.Background(), "1 + 2 * 3 - 4")
	if err != nil {
		t.Fatal(err)
	}

	if len(reports) != 3 {
		t.Fatalf("expected 3 progress reports for 3 binary operations, got %d", len(reports))
	}
	last := reports[len(reports)-1]
	if last != 1.0 {
		t.Errorf("final progress = %f, want 1.0", last)
	}
	for i := 1; i < len(reports); i++ {
		if reports[i] < reports[i-1] {
			t.Errorf("progress decreased: %v", reports)
		}
	}
}

func TestEvaluateProgressForLiteral(t *testing.T) {
	t.Parallel()
	var reports []float64
	eval := NewEvaluator(WithProgress(func(p float64) {
		reports = append(reports, p)
	}))

	if _, err := eval.EvaluateString(context.Background(), "7"); err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 || reports[0] != 1.0 {
		t.Errorf("literal should report completion once, got %v", reports)
	}
}
