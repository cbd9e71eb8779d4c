package beats

import (
	"math"

	"cadence/internal/analysis"
	"cadence/internal/heuristics"
)

// ScoredEvent is an analysis event annotated with its impact score.
type ScoredEvent struct {
	analysis.Event
	LocalPeakStrength float64 `json:"localPeakStrength"`
	IsLocalPeak       bool    `json:"isLocalPeak"`
	TotalScore        float64 `json:"totalScore"`
}

// Score rates every event. The local peak strength compares an event's
// intensity with the mean of up to NeighborRadius events on each side.
func Score(events []analysis.Event, p Profile) []ScoredEvent {
	p = p.orDefault()
	intensities := analysis.Intensities(events)
	scored := make([]ScoredEvent, len(events))
	for i, e := range events {
		strength, isPeak := heuristics.LocalPeak(intensities, i, p.NeighborRadius, p.PeakThreshold)
		total := p.IntensityWeight * e.Intensity
		if isPeak {
			total += p.PeakWeight * strength
		}
		total += p.FrequencyWeight * math.Min(e.Frequency/p.FrequencyCeiling, 1)
		total += p.CentroidWeight * e.Centroid()
		scored[i] = ScoredEvent{
			Event:             e,
			LocalPeakStrength: strength,
			IsLocalPeak:       isPeak,
			TotalScore:        total,
		}
	}
	return scored
}
