package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeLogging()
	if err := c.normalizeAnalysis(); err != nil {
		return err
	}
	c.normalizeBeats()
	c.normalizeCaptions()
	return nil
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("CADENCE_LOG_FORMAT"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = value
	}
	if value, ok := os.LookupEnv("CADENCE_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
}

func (c *Config) normalizeAnalysis() error {
	if value, ok := os.LookupEnv("CADENCE_ANALYSIS_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Analysis.Dir = value
	}
	c.Analysis.Dir = strings.TrimSpace(c.Analysis.Dir)
	if c.Analysis.Dir == "" {
		c.Analysis.Dir = defaultAnalysisDir
	}
	var err error
	if c.Analysis.Dir, err = expandPath(c.Analysis.Dir); err != nil {
		return fmt.Errorf("analysis.dir: %w", err)
	}
	if c.Logging.File != "" {
		if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeBeats() {
	c.Beats.Mode = strings.ToLower(strings.TrimSpace(c.Beats.Mode))
	if c.Beats.Mode == "" {
		c.Beats.Mode = defaultBeatMode
	}
	if len(c.Beats.Profile.Tiers) == 0 {
		c.Beats.Profile.Tiers = Default().Beats.Profile.Tiers
	}
	// Tier lookup walks from the fastest tempo down.
	tiers := append([]TempoTier(nil), c.Beats.Profile.Tiers...)
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].MinTempo > tiers[j].MinTempo })
	c.Beats.Profile.Tiers = tiers
}

func (c *Config) normalizeCaptions() {
	if c.Captions.MaxLines <= 0 {
		c.Captions.MaxLines = defaultMaxLines
	}
}
