package beats

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Tier maps a tempo threshold (events per minute) to a base beat budget of
// min(Cap, floor(window*PerSecond)).
type Tier struct {
	MinTempo  float64
	Cap       int
	PerSecond float64
}

// Profile is the named heuristic configuration of the selector.
type Profile struct {
	NeighborRadius   int
	PeakThreshold    float64
	IntensityWeight  float64
	PeakWeight       float64
	FrequencyWeight  float64
	FrequencyCeiling float64
	CentroidWeight   float64

	// Tiers are evaluated in descending MinTempo order; the first tier whose
	// MinTempo the tempo exceeds wins, otherwise the lowest tier applies.
	Tiers []Tier

	IntensityVarianceThreshold float64
	IntensityVarianceBonus     int
	FrequencyVarianceThreshold float64
	FrequencyVarianceBonus     int

	MinCount int
	MaxCount int

	// DefaultWindow replaces a zero, negative, or NaN window, in seconds.
	DefaultWindow float64

	// PeaksFirst restricts the primary pass to local peaks and leaves the
	// remaining candidates to the fill pass.
	PeaksFirst bool
}

// DefaultProfile returns the stock weights and tiers.
func DefaultProfile() Profile {
	return Profile{
		NeighborRadius:   10,
		PeakThreshold:    0.05,
		IntensityWeight:  0.3,
		PeakWeight:       0.4,
		FrequencyWeight:  0.2,
		FrequencyCeiling: 3000,
		CentroidWeight:   0.1,
		Tiers: []Tier{
			{MinTempo: 140, Cap: 25, PerSecond: 1.5},
			{MinTempo: 100, Cap: 20, PerSecond: 1.2},
			{MinTempo: 0, Cap: 15, PerSecond: 0.8},
		},
		IntensityVarianceThreshold: 0.04,
		IntensityVarianceBonus:     5,
		FrequencyVarianceThreshold: 250000,
		FrequencyVarianceBonus:     3,
		MinCount:                   5,
		MaxCount:                   30,
		DefaultWindow:              20,
	}
}

// Validate reports the first unusable field.
func (p Profile) Validate() error {
	switch {
	case p.NeighborRadius <= 0:
		return errors.New("neighbor radius must be positive")
	case p.IntensityWeight < 0, p.PeakWeight < 0, p.FrequencyWeight < 0, p.CentroidWeight < 0:
		return errors.New("weights must be non-negative")
	case p.FrequencyCeiling <= 0:
		return errors.New("frequency ceiling must be positive")
	case len(p.Tiers) == 0:
		return errors.New("at least one tempo tier is required")
	case p.MinCount < 0:
		return errors.New("min count must be non-negative")
	case p.MinCount > p.MaxCount:
		return fmt.Errorf("min count %d exceeds max count %d", p.MinCount, p.MaxCount)
	case p.DefaultWindow <= 0 || math.IsNaN(p.DefaultWindow):
		return errors.New("default window must be positive")
	}
	for i, tier := range p.Tiers {
		if tier.Cap < 0 || tier.PerSecond < 0 {
			return fmt.Errorf("tier %d: cap and per_second must be non-negative", i)
		}
	}
	return nil
}

// orDefault substitutes DefaultProfile for an unusable profile, so a zero
// Profile value behaves like the stock one.
func (p Profile) orDefault() Profile {
	if p.Validate() != nil {
		return DefaultProfile()
	}
	return p
}

func (p Profile) sortedTiers() []Tier {
	tiers := append([]Tier(nil), p.Tiers...)
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].MinTempo > tiers[j].MinTempo })
	return tiers
}
