package composer

import (
	"context"

	"cadence/internal/captions"
	"cadence/internal/logging"
)

// CaptionComposition is a processed transcript with summary counters.
type CaptionComposition struct {
	RunID    string               `json:"runId"`
	Captions []captions.Processed `json:"captions"`
	// Highlighted counts highlighted words across every caption.
	Highlighted int `json:"highlighted"`
	Parts       int `json:"parts"`
	// Extended counts captions stretched by gap closing.
	Extended int `json:"extended"`
}

// Captions processes a transcript with opts.
func (c *Composer) Captions(ctx context.Context, transcript []captions.Caption, opts captions.Options) CaptionComposition {
	_, runID, logger := c.begin(ctx, "captions")

	processed := captions.Process(transcript, opts)
	comp := CaptionComposition{RunID: runID, Captions: processed}
	for i, p := range processed {
		comp.Parts += len(p.Parts)
		for _, w := range p.Caption.Words {
			if w.Metadata.IsHighlight {
				comp.Highlighted++
			}
		}
		if p.Caption.Metadata.ExtendedBy > transcript[i].Metadata.ExtendedBy {
			comp.Extended++
		}
	}

	logger.Info(
		"captions processed",
		logging.Int("captions", len(processed)),
		logging.Int("parts", comp.Parts),
		logging.Int("highlighted", comp.Highlighted),
		logging.Int("extended", comp.Extended),
		logging.Bool("no_gaps", opts.NoGaps.Enabled),
	)
	return comp
}
