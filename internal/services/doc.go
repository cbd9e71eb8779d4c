// Package services defines shared utilities consumed by the generators and the
// CLI surface around them.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and generator names for
//     logging.
//   - Structured error markers plus the Wrap helper so decode, config, and
//     fetch failures classify consistently (validation vs not found vs
//     unavailable) and map onto process exit codes.
//
// The selection algorithms themselves never return errors; only the
// boundaries that read caller input or fetch analysis data use these markers.
package services
