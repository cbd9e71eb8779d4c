package beats

import (
	"math"

	"cadence/internal/analysis"
	"cadence/internal/heuristics"
)

// OptimalCount derives a beat budget for window seconds of events.
func OptimalCount(events []analysis.Event, window float64, p Profile) int {
	p = p.orDefault()
	window = heuristics.SafeWindow(window, p.DefaultWindow)
	tempo := float64(len(events)) / window * 60

	count := baseCount(tempo, window, p.sortedTiers())
	if heuristics.Variance(analysis.Intensities(events)) > p.IntensityVarianceThreshold {
		count += p.IntensityVarianceBonus
	}
	if heuristics.Variance(analysis.Frequencies(events)) > p.FrequencyVarianceThreshold {
		count += p.FrequencyVarianceBonus
	}
	return heuristics.ClampInt(count, p.MinCount, p.MaxCount)
}

func baseCount(tempo, window float64, tiers []Tier) int {
	tier := tiers[len(tiers)-1]
	for _, candidate := range tiers {
		if tempo > candidate.MinTempo {
			tier = candidate
			break
		}
	}
	return int(min(float64(tier.Cap), math.Floor(window*tier.PerSecond)))
}
