package captions

import (
	"strings"

	"cadence/internal/heuristics"
	"cadence/internal/textutil"
)

const (
	meanSignificance = 0.8
	maxSignificance  = 0.7
)

// Highlight returns a copy of c with the emphasized words flagged. Every word
// matching the author keyword is marked; without a keyword match a single
// word, the start of the longest significant source word, is chosen. With opts.PerPartEmphasis that duration
// rule is applied to each part separately.
func Highlight(c Caption, opts Options) Caption {
	out := c.Clone()
	for i := range out.Words {
		out.Words[i].Metadata.IsHighlight = false
	}
	if len(out.Words) == 0 {
		return out
	}

	if !opts.IgnoreMetadata && markKeyword(out.Words, out.Metadata.Keyword) {
		return out
	}

	if !opts.PerPartEmphasis {
		markLongest(out.Words)
		return out
	}
	offset := 0
	for _, part := range Segment(out, opts) {
		n := len(part.Words)
		markLongest(out.Words[offset : offset+n])
		offset += n
	}
	return out
}

func markKeyword(words []Word, keyword string) bool {
	key := textutil.NormalizeWord(keyword)
	if key == "" {
		return false
	}
	matched := false
	for i := range words {
		norm := textutil.NormalizeWord(words[i].Text)
		if norm == "" {
			continue
		}
		if strings.Contains(norm, key) || strings.Contains(key, norm) {
			words[i].Metadata.IsHighlight = true
			matched = true
		}
	}
	return matched
}

// markLongest flags the first sub-word of the longest significant source
// word in words. Durations are summed per SourceIndex so a split word
// competes as a whole.
func markLongest(words []Word) {
	if len(words) == 0 {
		return
	}
	var (
		sources   []int
		firsts    []int
		durations = make([]float64, 0, len(words))
	)
	for i, w := range words {
		if n := len(sources); n > 0 && sources[n-1] == w.SourceIndex {
			durations[n-1] += w.Duration
			continue
		}
		sources = append(sources, w.SourceIndex)
		firsts = append(firsts, i)
		durations = append(durations, w.Duration)
	}

	mean := heuristics.Mean(durations)
	longest := heuristics.Max(durations)
	pick := heuristics.FirstMaxIndex(durations, func(i int) bool {
		return durations[i] >= meanSignificance*mean || durations[i] >= maxSignificance*longest
	})
	if pick < 0 {
		pick = heuristics.FirstMaxIndex(durations, nil)
	}
	words[firsts[pick]].Metadata.IsHighlight = true
}
