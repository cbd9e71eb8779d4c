package beats

import (
	"math"
	"sort"

	"cadence/internal/analysis"
	"cadence/internal/randsource"
)

// Options controls one selection call.
type Options struct {
	// MaxCount caps the result; zero or negative derives it with OptimalCount.
	MaxCount int
	// MinTimeDiff is the minimum spacing in seconds between selected beats.
	MinTimeDiff float64
	// Window is the analyzed duration used by OptimalCount.
	Window  float64
	Profile Profile
}

// Selected is a scored event chosen by a selector.
type Selected struct {
	ScoredEvent
}

// SelectImpactful picks the highest-scoring events that respect MinTimeDiff and
// returns them in ascending timestamp order. Equal scores prefer the earlier
// event, which keeps the result independent of input quirks.
func SelectImpactful(events []analysis.Event, opts Options) []Selected {
	if len(events) == 0 {
		return []Selected{}
	}
	profile := opts.Profile.orDefault()
	candidates := Score(events, profile)
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].TotalScore != candidates[j].TotalScore {
			return candidates[i].TotalScore > candidates[j].TotalScore
		}
		return candidates[i].Timestamp < candidates[j].Timestamp
	})

	limit := resolveCount(events, opts, profile)
	admit := func(ScoredEvent) bool { return true }
	if profile.PeaksFirst {
		admit = func(c ScoredEvent) bool { return c.IsLocalPeak }
	}
	return pick(candidates, limit, spacing(opts.MinTimeDiff), admit)
}

// SelectRandom draws candidates in an order shuffled by src and applies the
// same count and spacing rules as SelectImpactful. Equal seeds give equal
// results.
func SelectRandom(events []analysis.Event, opts Options, src randsource.Source) []Selected {
	if len(events) == 0 {
		return []Selected{}
	}
	profile := opts.Profile.orDefault()
	candidates := Score(events, profile)
	if src != nil {
		randsource.Shuffle(src, len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}
	limit := resolveCount(events, opts, profile)
	return pick(candidates, limit, spacing(opts.MinTimeDiff), func(ScoredEvent) bool { return true })
}

func resolveCount(events []analysis.Event, opts Options, p Profile) int {
	if opts.MaxCount > 0 {
		return opts.MaxCount
	}
	return OptimalCount(events, opts.Window, p)
}

func spacing(minTimeDiff float64) float64 {
	if minTimeDiff < 0 || math.IsNaN(minTimeDiff) {
		return 0
	}
	return minTimeDiff
}

// pick runs the greedy primary pass over admitted candidates, then a fill pass
// over whatever is still unused. Both passes enforce the same spacing.
func pick(candidates []ScoredEvent, limit int, minDiff float64, admit func(ScoredEvent) bool) []Selected {
	selected := make([]Selected, 0, min(limit, len(candidates)))
	used := make([]bool, len(candidates))

	pass := func(filter func(ScoredEvent) bool) {
		for i, c := range candidates {
			if len(selected) >= limit {
				return
			}
			if used[i] || !filter(c) || tooClose(selected, c.Timestamp, minDiff) {
				continue
			}
			used[i] = true
			selected = append(selected, Selected{ScoredEvent: c})
		}
	}
	pass(admit)
	if len(selected) < limit {
		pass(func(ScoredEvent) bool { return true })
	}

	sort.SliceStable(selected, func(i, j int) bool { return selected[i].Timestamp < selected[j].Timestamp })
	return selected
}

func tooClose(selected []Selected, ts, minDiff float64) bool {
	for _, s := range selected {
		if math.Abs(s.Timestamp-ts) < minDiff {
			return true
		}
	}
	return false
}
