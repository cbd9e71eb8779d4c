// Package captions prepares spoken-word transcripts for on-screen rendering.
//
// A transcript is an ordered list of Captions, each holding timed Words.
// Processing runs four pure steps, each usable on its own:
//
//   - SplitWords expands a word whose text holds internal whitespace into
//     evenly timed sub-words that remember their source word.
//   - CloseGaps stretches a caption into the silence before the next one,
//     up to a maximum extension.
//   - Highlight marks the emphasized word, from the author keyword when one
//     is given and from word durations otherwise.
//   - Segment groups words into Parts using author hint phrases or a
//     character budget derived from the line limit.
//
// Process chains them. Every step returns freshly allocated values; caller
// slices are never modified.
package captions
