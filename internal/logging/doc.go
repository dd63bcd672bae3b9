// Package logging assembles the structured slog loggers and formatting
// helpers used across the CLI.
//
// It owns the configurable console/JSON handlers and centralizes level and
// output plumbing. Console output goes to stderr in a compact timestamped
// format with the component attribute promoted to a message prefix; the
// json format emits one object per line for machine consumption. An
// optional log file is rotated in place. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape and routing.
package logging
