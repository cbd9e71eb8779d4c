package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Analysis locates pre-computed audio analysis documents.
type Analysis struct {
	Dir string `toml:"dir"`
}

// TempoTier maps an events-per-minute threshold to a base beat count.
type TempoTier struct {
	MinTempo  float64 `toml:"min_tempo"`
	Cap       int     `toml:"cap"`
	PerSecond float64 `toml:"per_second"`
}

// BeatProfile holds the scoring weights and count heuristics of the impact-beat selector.
type BeatProfile struct {
	NeighborRadius             int         `toml:"neighbor_radius"`
	PeakThreshold              float64     `toml:"peak_threshold"`
	IntensityWeight            float64     `toml:"intensity_weight"`
	PeakWeight                 float64     `toml:"peak_weight"`
	FrequencyWeight            float64     `toml:"frequency_weight"`
	FrequencyCeiling           float64     `toml:"frequency_ceiling"`
	CentroidWeight             float64     `toml:"centroid_weight"`
	IntensityVarianceThreshold float64     `toml:"intensity_variance_threshold"`
	IntensityVarianceBonus     int         `toml:"intensity_variance_bonus"`
	FrequencyVarianceThreshold float64     `toml:"frequency_variance_threshold"`
	FrequencyVarianceBonus     int         `toml:"frequency_variance_bonus"`
	MinCount                   int         `toml:"min_count"`
	MaxCount                   int         `toml:"max_count"`
	DefaultWindowSeconds       float64     `toml:"default_window_seconds"`
	PeaksFirst                 bool        `toml:"peaks_first"`
	Tiers                      []TempoTier `toml:"tiers"`
}

// Beats contains defaults for beat-synced clip generation.
type Beats struct {
	// Mode is "impact" (scored, deterministic) or "random" (seeded).
	Mode           string      `toml:"mode"`
	MaxBeats       int         `toml:"max_beats"` // 0 = auto
	MinGapSeconds  float64     `toml:"min_gap_seconds"`
	OverlapSeconds float64     `toml:"overlap_seconds"`
	Seed           uint64      `toml:"seed"`
	Profile        BeatProfile `toml:"profile"`
}

// NoGaps controls caption gap closing.
type NoGaps struct {
	Enabled   bool    `toml:"enabled"`
	MaxLength float64 `toml:"max_length"`
}

// Captions contains defaults for caption segmentation and emphasis.
type Captions struct {
	MaxLines        int    `toml:"max_lines"`
	IgnoreMetadata  bool   `toml:"ignore_metadata"`
	PerPartEmphasis bool   `toml:"per_part_emphasis"`
	NoGaps          NoGaps `toml:"no_gaps"`
}

// Config encapsulates all configuration values for cadence.
//
// Configuration sections:
//   - Logging: log format, level, and optional log file
//   - Analysis: where pre-computed audio analysis documents live
//   - Beats: impact-beat selection defaults and the scoring profile
//   - Captions: caption segmentation, emphasis, and gap closing
type Config struct {
	Logging  Logging  `toml:"logging"`
	Analysis Analysis `toml:"analysis"`
	Beats    Beats    `toml:"beats"`
	Captions Captions `toml:"captions"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/cadence/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("cadence.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
