package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"cadence/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a config seeded with a unique analysis directory per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Analysis.Dir = filepath.Join(base, "analysis")
	cfgVal.Logging.Format = "json"
	cfgVal.Logging.Level = "debug"

	builder := &configBuilder{
		t:   t,
		cfg: &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithBeatMode overrides the beat selection mode.
func WithBeatMode(mode string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Beats.Mode = mode
	}
}

// WithNoGaps enables caption gap closing with the given cap.
func WithNoGaps(maxLength float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Captions.NoGaps.Enabled = true
		b.cfg.Captions.NoGaps.MaxLength = maxLength
	}
}

// WithAnalysisDirs creates the analysis directory on disk.
func WithAnalysisDirs() ConfigOption {
	return func(b *configBuilder) {
		b.t.Helper()
		if err := os.MkdirAll(b.cfg.Analysis.Dir, 0o755); err != nil {
			b.t.Fatalf("mkdir %s: %v", b.cfg.Analysis.Dir, err)
		}
	}
}
