package composer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"cadence/internal/analysis"
	"cadence/internal/logging"
	"cadence/internal/randsource"
	"cadence/internal/services"
)

// Deps carries the collaborators of a Composer.
type Deps struct {
	Analysis analysis.Source
	Logger   *slog.Logger
	// Random builds the source for random beat mode; nil uses randsource.NewSeeded.
	Random func(seed uint64) randsource.Source
}

// Composer runs generator use-cases.
type Composer struct {
	analysis analysis.Source
	logger   *slog.Logger
	random   func(seed uint64) randsource.Source
}

// New constructs a Composer from deps.
func New(deps Deps) *Composer {
	random := deps.Random
	if random == nil {
		random = randsource.NewSeeded
	}
	return &Composer{
		analysis: deps.Analysis,
		logger:   logging.NewComponentLogger(deps.Logger, "composer"),
		random:   random,
	}
}

// begin tags ctx with a run ID and generator name and returns the scoped logger.
func (c *Composer) begin(ctx context.Context, generator string) (context.Context, string, *slog.Logger) {
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	ctx = services.WithGenerator(ctx, generator)
	return ctx, runID, logging.WithContext(ctx, c.logger)
}
