// Package bigint implements an arbitrary-precision signed integer.
//
// An Int is a sign-magnitude value: a boolean sign plus an ordered sequence
// of 32-bit unsigned groups holding the magnitude in base 2^32, least
// significant group first. The sequence is kept canonical (no redundant
// most-significant group, zero is a single 0 group with a positive sign),
// so equality and ordering reduce to direct group comparison.
//
// All operations treat their operands as immutable and return a fresh value,
// making Int safe to share between goroutines as long as each value is built
// once and then only read. The package performs no I/O and never uses
// floating point; decimal conversion in both directions is exact for
// magnitudes of any size.
package bigint
