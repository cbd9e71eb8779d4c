package captions

// CloseGaps extends each caption into the silence before the next one by at
// most maxExtension seconds. The caption and its last word both grow.
// Captions without words, and captions that already record an extension, are
// left alone, so running the step again changes nothing. maxExtension <= 0
// disables the step.
func CloseGaps(captions []Caption, maxExtension float64) []Caption {
	out := make([]Caption, len(captions))
	for i, c := range captions {
		out[i] = c.Clone()
	}
	if maxExtension <= 0 {
		return out
	}
	for i := 0; i+1 < len(out); i++ {
		cur := &out[i]
		if cur.Metadata.ExtendedBy > 0 || len(cur.Words) == 0 {
			continue
		}
		gap := out[i+1].AbsoluteStart - cur.AbsoluteEnd
		if gap <= 0 {
			continue
		}
		ext := min(gap, maxExtension)
		cur.Duration += ext
		cur.AbsoluteEnd += ext
		cur.Metadata.ExtendedBy = ext
		last := &cur.Words[len(cur.Words)-1]
		last.Duration += ext
		last.AbsoluteEnd += ext
	}
	return out
}
