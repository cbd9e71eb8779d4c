package config

const (
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultAnalysisDir = "~/.local/share/cadence/analysis"
	defaultBeatMode    = "impact"
	defaultMinGap      = 0.5
	defaultMaxLines    = 5
	defaultNoGapsMax   = 1.0

	defaultNeighborRadius    = 10
	defaultPeakThreshold     = 0.05
	defaultIntensityWeight   = 0.3
	defaultPeakWeight        = 0.4
	defaultFrequencyWeight   = 0.2
	defaultFrequencyCeiling  = 3000.0
	defaultCentroidWeight    = 0.1
	defaultIntensityVariance = 0.04
	defaultIntensityBonus    = 5
	defaultFrequencyVariance = 250000.0
	defaultFrequencyBonus    = 3
	defaultMinBeatCount      = 5
	defaultMaxBeatCount      = 30
	defaultWindowSeconds     = 20.0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Analysis: Analysis{
			Dir: defaultAnalysisDir,
		},
		Beats: Beats{
			Mode:          defaultBeatMode,
			MinGapSeconds: defaultMinGap,
			Profile: BeatProfile{
				NeighborRadius:             defaultNeighborRadius,
				PeakThreshold:              defaultPeakThreshold,
				IntensityWeight:            defaultIntensityWeight,
				PeakWeight:                 defaultPeakWeight,
				FrequencyWeight:            defaultFrequencyWeight,
				FrequencyCeiling:           defaultFrequencyCeiling,
				CentroidWeight:             defaultCentroidWeight,
				IntensityVarianceThreshold: defaultIntensityVariance,
				IntensityVarianceBonus:     defaultIntensityBonus,
				FrequencyVarianceThreshold: defaultFrequencyVariance,
				FrequencyVarianceBonus:     defaultFrequencyBonus,
				MinCount:                   defaultMinBeatCount,
				MaxCount:                   defaultMaxBeatCount,
				DefaultWindowSeconds:       defaultWindowSeconds,
				Tiers: []TempoTier{
					{MinTempo: 140, Cap: 25, PerSecond: 1.5},
					{MinTempo: 100, Cap: 20, PerSecond: 1.2},
					{MinTempo: 0, Cap: 15, PerSecond: 0.8},
				},
			},
		},
		Captions: Captions{
			MaxLines: defaultMaxLines,
			NoGaps: NoGaps{
				Enabled:   false,
				MaxLength: defaultNoGapsMax,
			},
		},
	}
}
