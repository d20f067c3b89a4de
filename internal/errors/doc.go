// Package apperrors defines the error types shared across the
// calculator's surfaces. It distinguishes configuration, syntax,
// evaluation, and timeout failures, maps each class to a process exit
// code, and carries the underlying cause so errors.Is and errors.As
// keep working through the wrapping.
package apperrors
