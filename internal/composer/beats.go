package composer

import (
	"context"
	"fmt"
	"strings"

	"cadence/internal/beats"
	"cadence/internal/heuristics"
	"cadence/internal/logging"
	"cadence/internal/services"
)

// Beat selection modes.
const (
	ModeImpact = "impact"
	ModeRandom = "random"
)

// BeatRequest describes one beat-synced composition.
type BeatRequest struct {
	SourceID string
	// Window overrides the analyzed duration when positive.
	Window float64
	// MaxBeats of zero derives the count from the analysis.
	MaxBeats int
	MinGap   float64
	Overlap  float64
	Mode     string
	Seed     uint64
	Profile  beats.Profile
}

// BeatComposition is the timing skeleton of a beat-synced edit.
type BeatComposition struct {
	RunID    string           `json:"runId"`
	SourceID string           `json:"sourceId"`
	Mode     string           `json:"mode"`
	Window   float64          `json:"window"`
	Beats    []beats.Selected `json:"beats"`
	Clips    []beats.Window   `json:"clips"`
	// Empty reports that no beat-synced cuts are available.
	Empty bool `json:"empty"`
}

// BeatSync fetches the analysis for req.SourceID once and selects beats from
// it. When the fetch fails the composition is empty and the error is returned
// alongside it.
func (c *Composer) BeatSync(ctx context.Context, req BeatRequest) (BeatComposition, error) {
	ctx = services.WithSourceID(ctx, req.SourceID)
	ctx, runID, logger := c.begin(ctx, "beats")

	mode := strings.ToLower(strings.TrimSpace(req.Mode))
	if mode == "" {
		mode = ModeImpact
	}
	comp := BeatComposition{RunID: runID, SourceID: req.SourceID, Mode: mode, Beats: []beats.Selected{}, Empty: true}
	if mode != ModeImpact && mode != ModeRandom {
		return comp, services.Wrap(services.ErrValidation, "composer", "beat sync", fmt.Sprintf("unknown mode %q", req.Mode), nil)
	}
	if c.analysis == nil {
		return comp, services.Wrap(services.ErrConfiguration, "composer", "beat sync", "no analysis source configured", nil)
	}

	result, err := c.analysis.Fetch(ctx, req.SourceID)
	if err != nil {
		logging.WarnWithContext(logger, "audio analysis unavailable; composing without beat-synced cuts", "analysis_fetch_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check analysis.dir and the source id"),
			logging.String(logging.FieldImpact, "clip has no beat-synced cuts"),
		)
		return comp, services.Wrap(services.ErrUnavailable, "composer", "fetch analysis", "analysis fetch failed", err)
	}

	profile := req.Profile
	if profile.Validate() != nil {
		profile = beats.DefaultProfile()
	}
	window := req.Window
	if window <= 0 {
		window = result.DurationInSeconds
	}
	window = heuristics.SafeWindow(window, profile.DefaultWindow)
	comp.Window = window

	opts := beats.Options{
		MaxCount:    req.MaxBeats,
		MinTimeDiff: req.MinGap,
		Window:      window,
		Profile:     profile,
	}
	var selected []beats.Selected
	if mode == ModeRandom {
		selected = beats.SelectRandom(result.Analysis, opts, c.random(req.Seed))
	} else {
		selected = beats.SelectImpactful(result.Analysis, opts)
	}
	comp.Beats = selected
	comp.Clips = beats.ClipWindows(selected, window, req.Overlap)
	comp.Empty = len(selected) == 0

	logger.Info(
		"beat selection decision",
		logging.String(logging.FieldDecisionType, "beat_selection"),
		logging.String("decision_result", mode),
		logging.Int("events", len(result.Analysis)),
		logging.Int("beats", len(selected)),
		logging.Int("clips", len(comp.Clips)),
		logging.Float64("window_seconds", window),
		logging.Bool("auto_count", req.MaxBeats <= 0),
	)
	if comp.Empty {
		logging.WarnWithContext(logger, "analysis has no events; composing without beat-synced cuts", "analysis_empty",
			logging.String(logging.FieldImpact, "clip has no beat-synced cuts"),
		)
	}
	return comp, nil
}
