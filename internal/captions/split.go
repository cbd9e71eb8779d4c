package captions

import "cadence/internal/textutil"

// SplitWords expands every word whose trimmed text contains whitespace into
// one sub-word per field. Sub-words share the original duration evenly and
// carry the index of the word they came from in SourceIndex.
func SplitWords(words []Word) []Word {
	out := make([]Word, 0, len(words))
	for i, w := range words {
		fields := textutil.Fields(w.Text)
		if len(fields) <= 1 {
			w.SourceIndex = i
			out = append(out, w)
			continue
		}
		n := float64(len(fields))
		step := w.Duration / n
		for k, text := range fields {
			offset := float64(k) * step
			out = append(out, Word{
				Text:          text,
				Start:         w.Start + offset,
				Duration:      step,
				AbsoluteStart: w.AbsoluteStart + offset,
				AbsoluteEnd:   w.AbsoluteStart + offset + step,
				Confidence:    w.Confidence,
				SourceIndex:   i,
				Metadata:      w.Metadata,
			})
		}
	}
	return out
}
