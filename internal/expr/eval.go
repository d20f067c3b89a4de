package expr

import (
	"context"
	"fmt"

	"github.com/hausp/bigcalc/internal/bigint"
	"github.com/hausp/bigcalc/internal/progress"
)

// RangeError reports an operand outside the range an operator supports,
// such as a shift count that does not fit an int64.
type RangeError struct {
	Offset  int
	Message string
}

// Error returns the formatted range error message.
func (e *RangeError) Error() string {
	return fmt.Sprintf("range error at offset %d: %s", e.Offset, e.Message)
}

// Evaluator walks a parsed expression tree and computes its value. The zero
// value is usable; attach a progress callback for long evaluations.
type Evaluator struct {
	progressCb progress.ProgressCallback
	maxShift   int64

	totalOps int
	doneOps  int
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithProgress attaches a callback receiving the fraction of binary
// operations completed.
func WithProgress(cb progress.ProgressCallback) EvaluatorOption {
	return func(e *Evaluator) { e.progressCb = cb }
}

// WithMaxShift bounds the absolute shift count the evaluator accepts.
// Shifts beyond the bound fail with a RangeError instead of allocating
// arbitrarily large results. Zero means no bound.
func WithMaxShift(limit int64) EvaluatorOption {
	return func(e *Evaluator) { e.maxShift = limit }
}

// NewEvaluator creates an evaluator with the given options.
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate computes the value of a parsed expression. It checks ctx between
// binary operations so evaluations over very large operands remain
// interruptible, and reports progress as the fraction of binary operations
// completed.
//
// Parameters:
//   - ctx: Context for cancellation and deadlines.
//   - root: The parsed expression tree.
//
// Returns:
//   - bigint.Int: The value of the expression.
//   - error: A context error, or a *RangeError for unsupported operands.
func (e *Evaluator) Evaluate(ctx context.Context, root Node) (bigint.Int, error) {
	e.totalOps = countBinaryOps(root)
	e.doneOps = 0
	result, err := e.eval(ctx, root)
	if err != nil {
		return bigint.Int{}, err
	}
	if e.totalOps == 0 {
		e.report(1)
	}
	return result, nil
}

// EvaluateString parses and evaluates input in one call.
func (e *Evaluator) EvaluateString(ctx context.Context, input string) (bigint.Int, error) {
	root, err := Parse(input)
	if err != nil {
		return bigint.Int{}, err
	}
	return e.Evaluate(ctx, root)
}

func (e *Evaluator) eval(ctx context.Context, node Node) (bigint.Int, error) {
	switch n := node.(type) {
	case *LiteralNode:
		return n.Value, nil
	case *UnaryNode:
		operand, err := e.eval(ctx, n.Operand)
		if err != nil {
			return bigint.Int{}, err
		}
		if n.Op == TokenMinus {
			return operand.Neg(), nil
		}
		return operand, nil
	case *BinaryNode:
		return e.evalBinary(ctx, n)
	default:
		return bigint.Int{}, fmt.Errorf("unknown expression node %T", node)
	}
}

func (e *Evaluator) evalBinary(ctx context.Context, n *BinaryNode) (bigint.Int, error) {
	left, err := e.eval(ctx, n.Left)
	if err != nil {
		return bigint.Int{}, err
	}
	right, err := e.eval(ctx, n.Right)
	if err != nil {
		return bigint.Int{}, err
	}
	if err := ctx.Err(); err != nil {
		return bigint.Int{}, err
	}

	var result bigint.Int
	switch n.Op {
	case TokenPlus:
		result = left.Add(right)
	case TokenMinus:
		result = left.Sub(right)
	case TokenStar:
		result = left.Mul(right)
	case TokenShl, TokenShr:
		if !right.IsInt64() {
			return bigint.Int{}, &RangeError{Offset: n.Offset(), Message: "shift count does not fit in 64 bits"}
		}
		amount := right.Int64()
		if e.maxShift > 0 && absInt64(amount) > uint64(e.maxShift) {
			return bigint.Int{}, &RangeError{Offset: n.Offset(), Message: fmt.Sprintf("shift count exceeds limit of %d", e.maxShift)}
		}
		if n.Op == TokenShl {
			result = left.Lsh(amount)
		} else {
			result = left.Rsh(amount)
		}
	case TokenEq:
		result = boolInt(left.Equal(right))
	case TokenNe:
		result = boolInt(!left.Equal(right))
	case TokenLt:
		result = boolInt(left.Less(right))
	case TokenLe:
		result = boolInt(left.LessOrEqual(right))
	case TokenGt:
		result = boolInt(left.Greater(right))
	case TokenGe:
		result = boolInt(left.GreaterOrEqual(right))
	default:
		return bigint.Int{}, fmt.Errorf("unknown binary operator %s", n.Op)
	}

	e.doneOps++
	e.report(float64(e.doneOps) / float64(e.totalOps))
	return result, nil
}

func (e *Evaluator) report(value float64) {
	if e.progressCb != nil {
		e.progressCb(value)
	}
}

func countBinaryOps(node Node) int {
	switch n := node.(type) {
	case *UnaryNode:
		return countBinaryOps(n.Operand)
	case *BinaryNode:
		return 1 + countBinaryOps(n.Left) + countBinaryOps(n.Right)
	default:
		return 0
	}
}

func absInt64(v int64) uint64 {
	if v < 0 {
		return -uint64(v)
	}
	return uint64(v)
}

func boolInt(b bool) bigint.Int {
	if b {
		return bigint.New(1)
	}
	return bigint.New(0)
}
