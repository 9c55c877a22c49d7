// Package logging provides structured logging helpers built on log/slog.
//
// It defines the canonical attribute keys used across the codebase (file,
// label, folder, sheet, operation, ...), helpers for building attributes,
// and a small Logger interface with an slog-backed adapter for packages
// that should not depend on slog directly.
package logging
