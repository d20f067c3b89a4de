// Package orchestration coordinates concurrent expression evaluations and
// aggregates their results. It decouples business logic from presentation
// via the ProgressReporter and ResultPresenter interfaces.
package orchestration
