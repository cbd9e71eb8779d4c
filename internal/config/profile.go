package config

import (
	"cadence/internal/beats"
	"cadence/internal/captions"
)

// BeatProfile converts the [beats.profile] section into selector input.
func (c *Config) BeatProfile() beats.Profile {
	p := c.Beats.Profile
	tiers := make([]beats.Tier, len(p.Tiers))
	for i, tier := range p.Tiers {
		tiers[i] = beats.Tier{MinTempo: tier.MinTempo, Cap: tier.Cap, PerSecond: tier.PerSecond}
	}
	return beats.Profile{
		NeighborRadius:             p.NeighborRadius,
		PeakThreshold:              p.PeakThreshold,
		IntensityWeight:            p.IntensityWeight,
		PeakWeight:                 p.PeakWeight,
		FrequencyWeight:            p.FrequencyWeight,
		FrequencyCeiling:           p.FrequencyCeiling,
		CentroidWeight:             p.CentroidWeight,
		Tiers:                      tiers,
		IntensityVarianceThreshold: p.IntensityVarianceThreshold,
		IntensityVarianceBonus:     p.IntensityVarianceBonus,
		FrequencyVarianceThreshold: p.FrequencyVarianceThreshold,
		FrequencyVarianceBonus:     p.FrequencyVarianceBonus,
		MinCount:                   p.MinCount,
		MaxCount:                   p.MaxCount,
		DefaultWindow:              p.DefaultWindowSeconds,
		PeaksFirst:                 p.PeaksFirst,
	}
}

// BeatDefaults returns the selection options configured under [beats]. Window
// is left unset; callers take it from the analysis document.
func (c *Config) BeatDefaults() beats.Options {
	return beats.Options{
		MaxCount:    c.Beats.MaxBeats,
		MinTimeDiff: c.Beats.MinGapSeconds,
		Profile:     c.BeatProfile(),
	}
}

// CaptionOptions converts the [captions] section into processing options.
func (c *Config) CaptionOptions() captions.Options {
	return captions.Options{
		MaxLines:        c.Captions.MaxLines,
		IgnoreMetadata:  c.Captions.IgnoreMetadata,
		PerPartEmphasis: c.Captions.PerPartEmphasis,
		NoGaps: captions.NoGaps{
			Enabled:   c.Captions.NoGaps.Enabled,
			MaxLength: c.Captions.NoGaps.MaxLength,
		},
	}
}
