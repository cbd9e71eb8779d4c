package captions

// Process runs the full caption pipeline: sub-word split, optional gap
// closing across the list, emphasis, then segmentation. Captions without
// words pass through untouched and get no parts.
func Process(captions []Caption, opts Options) []Processed {
	prepared := make([]Caption, len(captions))
	for i, c := range captions {
		if len(c.Words) == 0 {
			prepared[i] = c.Clone()
			continue
		}
		prepared[i] = presplit(c)
	}
	if opts.NoGaps.Enabled {
		prepared = CloseGaps(prepared, opts.NoGaps.MaxLength)
	}

	out := make([]Processed, len(prepared))
	for i, c := range prepared {
		if len(c.Words) == 0 {
			out[i] = Processed{Caption: c}
			continue
		}
		highlighted := Highlight(c, opts)
		out[i] = Processed{
			Caption: highlighted,
			Parts:   Segment(highlighted, opts),
		}
	}
	return out
}
