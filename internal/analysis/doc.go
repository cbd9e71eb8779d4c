// Package analysis defines the pre-computed audio analysis consumed by the beat
// generator and the single upstream boundary through which it is fetched.
//
// An analysis Result is produced by an external feature extractor: a stream of
// scored Events (timestamp, intensity, frequency, optional spectral centroid)
// plus the analyzed duration. Decode validates the document at the boundary so
// downstream selection code can rely on non-negative, strictly increasing
// timestamps.
//
// Source is the fetch contract. FileSource reads JSON documents from a local
// directory; callers needing another transport implement Source themselves.
// Fetches are never retried here: a failed fetch is returned to the caller,
// which decides how to degrade.
package analysis
