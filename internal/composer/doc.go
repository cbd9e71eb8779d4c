// Package composer runs the temporal-structure generators as use-cases.
//
// BeatSync fetches the analysis for one audio source, selects impact beats
// (or seeded random beats), and cuts the analyzed window into clip windows.
// A failed fetch degrades to an empty composition so the caller can fall back
// to an edit without beat-synced cuts; the error is still returned for
// reporting. Captions runs the caption pipeline over a transcript and
// summarizes what changed.
//
// Every call is tagged with a fresh run ID that flows into the log context.
// A Composer holds no mutable state and is safe for concurrent use.
package composer
