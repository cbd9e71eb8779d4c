// Package main hosts the cadence CLI entrypoint and command graph.
//
// The Cobra command tree loads analysis and transcript documents from local
// files, runs the beat and caption generators through internal/composer, and
// prints the resulting timing data as terminal tables or JSON. It centralizes
// configuration resolution and logger setup so subcommands only translate
// flags into generator requests.
//
// Keep this package lean: generator behavior belongs in the internal
// packages; commands here only surface it.
package main
