// Package expr implements the calculator's expression language: a tokenizer,
// a recursive-descent parser, and a context-aware evaluator over
// arbitrary-precision integers.
//
// The language supports decimal literals of any length, the binary operators
// + - * << >>, the comparison operators == != < <= > >= (yielding 0 or 1),
// unary + and -, and parenthesized grouping. Operator precedence follows C:
// comparisons bind loosest, then shifts, then additive, then multiplicative
// operators. Comparisons are non-associative: 1 < 2 < 3 is a syntax error
// and one side must be parenthesized.
//
// Evaluation takes a context.Context and checks for cancellation between
// binary operations, keeping evaluations over very large operands
// interruptible. Syntax errors carry the byte offset of the offending input.
package expr
