// Package heuristics holds the small numeric helpers shared by the beat and
// caption generators: means and variances, windowed local-peak detection,
// clamping, and first-occurrence maximum selection.
//
// Every function is pure and allocation-light. Degenerate input (empty
// slices, NaN, non-positive windows) resolves to documented fallbacks instead
// of errors or NaN propagation.
package heuristics
