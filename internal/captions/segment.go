package captions

import (
	"strings"

	"cadence/internal/textutil"
)

// DefaultMaxLines is the part budget used when Options.MaxLines is unset.
const DefaultMaxLines = 5

// Segment groups the caption's words into parts. Author hint phrases in
// Metadata.SplitParts take precedence unless opts.IgnoreMetadata is set;
// otherwise words are packed against a per-part character budget.
func Segment(c Caption, opts Options) []Part {
	switch len(c.Words) {
	case 0:
		return nil
	case 1:
		return []Part{newPart(c, c.Words)}
	}
	if !opts.IgnoreMetadata && len(c.Metadata.SplitParts) > 0 {
		if parts := segmentByHints(c); parts != nil {
			return parts
		}
	}
	return segmentByBudget(c, opts.maxLines())
}

func newPart(c Caption, words []Word) Part {
	return Part{
		Words:    append([]Word(nil), words...),
		Start:    0,
		Duration: c.Duration,
	}
}

// segmentByHints consumes words greedily against each hint phrase in turn.
// A word belongs to the current phrase while its text can still be found in
// the part of the phrase not yet matched. It returns nil when no phrase
// consumed any word.
func segmentByHints(c Caption) []Part {
	var parts []Part
	next := 0
	for _, hint := range c.Metadata.SplitParts {
		remaining := textutil.Fold(hint)
		if strings.TrimSpace(remaining) == "" {
			continue
		}
		start := next
		for next < len(c.Words) {
			word := textutil.Fold(strings.TrimSpace(c.Words[next].Text))
			if word == "" {
				next++
				continue
			}
			idx := strings.Index(remaining, word)
			if idx < 0 {
				break
			}
			remaining = remaining[idx+len(word):]
			next++
		}
		if next > start {
			parts = append(parts, newPart(c, c.Words[start:next]))
		}
		if next >= len(c.Words) {
			break
		}
	}
	if len(parts) == 0 {
		return nil
	}
	if next < len(c.Words) {
		last := &parts[len(parts)-1]
		last.Words = append(last.Words, c.Words[next:]...)
	}
	return parts
}

// segmentByBudget closes a part once its running rune count reaches
// ceil(total/targetParts), merging the last two parts if the budget still
// produced too many.
func segmentByBudget(c Caption, targetParts int) []Part {
	total := 0
	for _, w := range c.Words {
		total += textutil.RuneLen(w.Text)
	}
	target := (total + targetParts - 1) / targetParts
	if target <= 0 {
		target = 1
	}

	var parts []Part
	start, running := 0, 0
	for i, w := range c.Words {
		running += textutil.RuneLen(w.Text)
		if running >= target {
			parts = append(parts, newPart(c, c.Words[start:i+1]))
			start, running = i+1, 0
		}
	}
	if start < len(c.Words) {
		parts = append(parts, newPart(c, c.Words[start:]))
	}
	if len(parts) > targetParts {
		n := len(parts)
		parts[n-2].Words = append(parts[n-2].Words, parts[n-1].Words...)
		parts = parts[:n-1]
	}
	return parts
}
