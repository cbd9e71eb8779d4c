package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"cadence/internal/beats"
	"cadence/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CADENCE_LOG_FORMAT", "CADENCE_LOG_LEVEL", "CADENCE_ANALYSIS_DIR"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	clearEnv(t)
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantDir := filepath.Join(tempHome, ".local", "share", "cadence", "analysis")
	if cfg.Analysis.Dir != wantDir {
		t.Fatalf("unexpected analysis dir: got %q want %q", cfg.Analysis.Dir, wantDir)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Beats.Mode != "impact" {
		t.Fatalf("expected impact mode by default, got %q", cfg.Beats.Mode)
	}
	if cfg.Beats.MaxBeats != 0 {
		t.Fatalf("expected auto beat count by default, got %d", cfg.Beats.MaxBeats)
	}
	if cfg.Beats.MinGapSeconds != 0.5 {
		t.Fatalf("unexpected min gap: %v", cfg.Beats.MinGapSeconds)
	}
	if cfg.Captions.MaxLines != 5 {
		t.Fatalf("unexpected max lines: %d", cfg.Captions.MaxLines)
	}
	if cfg.Captions.NoGaps.Enabled {
		t.Fatal("expected gap closing disabled by default")
	}
}

func TestLoadCustomPath(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "cadence.toml")

	type payload struct {
		Analysis struct {
			Dir string `toml:"dir"`
		} `toml:"analysis"`
		Beats struct {
			Mode     string `toml:"mode"`
			MaxBeats int    `toml:"max_beats"`
			Seed     uint64 `toml:"seed"`
		} `toml:"beats"`
		Captions struct {
			MaxLines int `toml:"max_lines"`
			NoGaps   struct {
				Enabled   bool    `toml:"enabled"`
				MaxLength float64 `toml:"max_length"`
			} `toml:"no_gaps"`
		} `toml:"captions"`
	}
	custom := payload{}
	custom.Analysis.Dir = filepath.Join(tempDir, "analysis")
	custom.Beats.Mode = "Random"
	custom.Beats.MaxBeats = 8
	custom.Beats.Seed = 42
	custom.Captions.MaxLines = 3
	custom.Captions.NoGaps.Enabled = true
	custom.Captions.NoGaps.MaxLength = 2.5
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Analysis.Dir != custom.Analysis.Dir {
		t.Fatalf("expected analysis dir from file, got %q", cfg.Analysis.Dir)
	}
	if cfg.Beats.Mode != "random" {
		t.Fatalf("expected mode to be lower-cased, got %q", cfg.Beats.Mode)
	}
	if cfg.Beats.MaxBeats != 8 || cfg.Beats.Seed != 42 {
		t.Fatalf("unexpected beats section: %+v", cfg.Beats)
	}
	if cfg.Beats.Profile.NeighborRadius != 10 {
		t.Fatalf("expected profile defaults to survive a partial file, got radius %d", cfg.Beats.Profile.NeighborRadius)
	}

	opts := cfg.CaptionOptions()
	if opts.MaxLines != 3 || !opts.NoGaps.Enabled || opts.NoGaps.MaxLength != 2.5 {
		t.Fatalf("unexpected caption options: %+v", opts)
	}
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "cadence.toml")
	contents := "[logging]\nlevel = \"info\"\nformat = \"console\"\n\n[analysis]\ndir = \"/from/file\"\n"
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	envDir := filepath.Join(tempDir, "env-analysis")
	t.Setenv("CADENCE_ANALYSIS_DIR", envDir)
	t.Setenv("CADENCE_LOG_LEVEL", "DEBUG")
	t.Setenv("CADENCE_LOG_FORMAT", "json")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Analysis.Dir != envDir {
		t.Errorf("expected analysis dir from env, got %q", cfg.Analysis.Dir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level from env, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format from env, got %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "cadence.toml")
	if err := os.WriteFile(configPath, []byte("[beats\nmode = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "[beats.profile]") {
		t.Fatalf("sample config missing beat profile section: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	defaults := config.Default()
	if cfg.Beats.Profile.PeakWeight != defaults.Beats.Profile.PeakWeight {
		t.Fatalf("sample peak weight %v differs from default %v", cfg.Beats.Profile.PeakWeight, defaults.Beats.Profile.PeakWeight)
	}
	if len(cfg.Beats.Profile.Tiers) != len(defaults.Beats.Profile.Tiers) {
		t.Fatalf("sample tiers %v differ from defaults", cfg.Beats.Profile.Tiers)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config should validate: %v", err)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"log format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"log level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"mode", func(c *config.Config) { c.Beats.Mode = "chaos" }, "beats.mode"},
		{"max beats", func(c *config.Config) { c.Beats.MaxBeats = -1 }, "beats.max_beats"},
		{"min gap", func(c *config.Config) { c.Beats.MinGapSeconds = -0.1 }, "beats.min_gap_seconds"},
		{"radius", func(c *config.Config) { c.Beats.Profile.NeighborRadius = 0 }, "neighbor_radius"},
		{"weight", func(c *config.Config) { c.Beats.Profile.PeakWeight = -1 }, "peak_weight"},
		{"count bounds", func(c *config.Config) { c.Beats.Profile.MaxCount = 2 }, "max_count"},
		{"tier cap", func(c *config.Config) { c.Beats.Profile.Tiers[0].Cap = 0 }, "tiers[0].cap"},
		{"no gaps", func(c *config.Config) {
			c.Captions.NoGaps.Enabled = true
			c.Captions.NoGaps.MaxLength = 0
		}, "captions.no_gaps.max_length"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestBeatProfileMatchesSelectorDefaults(t *testing.T) {
	cfg := config.Default()
	got := cfg.BeatProfile()
	want := beats.DefaultProfile()
	if got.NeighborRadius != want.NeighborRadius || got.PeakThreshold != want.PeakThreshold ||
		got.FrequencyCeiling != want.FrequencyCeiling || got.DefaultWindow != want.DefaultWindow ||
		got.MinCount != want.MinCount || got.MaxCount != want.MaxCount {
		t.Fatalf("config profile %+v diverges from selector defaults %+v", got, want)
	}
	if len(got.Tiers) != len(want.Tiers) {
		t.Fatalf("tier count mismatch: %d vs %d", len(got.Tiers), len(want.Tiers))
	}
	for i := range got.Tiers {
		if got.Tiers[i] != want.Tiers[i] {
			t.Fatalf("tier %d mismatch: %+v vs %+v", i, got.Tiers[i], want.Tiers[i])
		}
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("projected profile invalid: %v", err)
	}

	defaults := cfg.BeatDefaults()
	if defaults.MaxCount != 0 || defaults.MinTimeDiff != 0.5 {
		t.Fatalf("unexpected beat defaults: %+v", defaults)
	}
}
