package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateBeats(); err != nil {
		return err
	}
	if err := c.validateBeatProfile(); err != nil {
		return err
	}
	if err := c.validateCaptions(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateBeats() error {
	switch c.Beats.Mode {
	case "impact", "random":
	default:
		return fmt.Errorf("beats.mode must be impact or random, got %q", c.Beats.Mode)
	}
	if c.Beats.MaxBeats < 0 {
		return errors.New("beats.max_beats must be >= 0 (0 selects the count automatically)")
	}
	if c.Beats.MinGapSeconds < 0 {
		return errors.New("beats.min_gap_seconds must be >= 0")
	}
	if c.Beats.OverlapSeconds < 0 {
		return errors.New("beats.overlap_seconds must be >= 0")
	}
	return nil
}

func (c *Config) validateBeatProfile() error {
	p := c.Beats.Profile
	if p.NeighborRadius <= 0 {
		return errors.New("beats.profile.neighbor_radius must be positive")
	}
	if err := ensureNonNegative(map[string]float64{
		"beats.profile.peak_threshold":               p.PeakThreshold,
		"beats.profile.intensity_weight":             p.IntensityWeight,
		"beats.profile.peak_weight":                  p.PeakWeight,
		"beats.profile.frequency_weight":             p.FrequencyWeight,
		"beats.profile.centroid_weight":              p.CentroidWeight,
		"beats.profile.intensity_variance_threshold": p.IntensityVarianceThreshold,
		"beats.profile.frequency_variance_threshold": p.FrequencyVarianceThreshold,
	}); err != nil {
		return err
	}
	if p.FrequencyCeiling <= 0 {
		return errors.New("beats.profile.frequency_ceiling must be positive")
	}
	if p.MinCount < 1 {
		return errors.New("beats.profile.min_count must be >= 1")
	}
	if p.MaxCount < p.MinCount {
		return errors.New("beats.profile.max_count must be >= beats.profile.min_count")
	}
	if p.DefaultWindowSeconds <= 0 {
		return errors.New("beats.profile.default_window_seconds must be positive")
	}
	for i, tier := range p.Tiers {
		if tier.Cap <= 0 {
			return fmt.Errorf("beats.profile.tiers[%d].cap must be positive", i)
		}
		if tier.PerSecond <= 0 {
			return fmt.Errorf("beats.profile.tiers[%d].per_second must be positive", i)
		}
	}
	return nil
}

func (c *Config) validateCaptions() error {
	if c.Captions.NoGaps.Enabled && c.Captions.NoGaps.MaxLength <= 0 {
		return errors.New("captions.no_gaps.max_length must be positive when captions.no_gaps.enabled is true")
	}
	return nil
}

func ensureNonNegative(values map[string]float64) error {
	for key, value := range values {
		if value < 0 {
			return fmt.Errorf("%s must be >= 0", key)
		}
	}
	return nil
}
