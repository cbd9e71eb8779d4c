// Package beats selects impact beats from scored audio-analysis events and
// turns them into clip windows for beat-synced editing.
//
// Selection is a pure function of its inputs. Score rates each event from its
// intensity, how far it rises above its neighbours, its frequency, and its
// spectral centroid. OptimalCount derives a beat budget from the event tempo
// and spread when the caller does not supply one. SelectImpactful then walks
// candidates from best to worst, accepting each one that keeps at least
// MinTimeDiff seconds from every beat already chosen, and returns the result
// in timestamp order.
//
// All weights, thresholds, and tempo tiers live in Profile so callers can tune
// the heuristic without touching the algorithm. SelectRandom is the seeded
// variant used by the "random" mode; it shares the spacing and count rules but
// draws its order from an injected randsource.Source.
package beats
