// Package logging assembles structured slog loggers and formatting helpers used
// across cadence.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so generator code can tag log
// lines with run identifiers, generator names, and audio source IDs without
// threading them through every call. A no-op logger is provided for tests and
// for library callers that do not want output.
package logging
