package testsupport

import (
	"strings"

	"cadence/internal/analysis"
	"cadence/internal/captions"
)

// Events builds one event per intensity at t = 0, 1, 2, ... seconds.
func Events(intensities ...float64) []analysis.Event {
	return EventsEvery(1, intensities...)
}

// EventsEvery builds one event per intensity spaced step seconds apart.
func EventsEvery(step float64, intensities ...float64) []analysis.Event {
	events := make([]analysis.Event, len(intensities))
	for i, v := range intensities {
		events[i] = analysis.Event{
			Timestamp: float64(i) * step,
			Intensity: v,
			Frequency: 440,
		}
	}
	return events
}

// Word builds a word spanning [start, end) seconds on the absolute timeline.
func Word(text string, start, end float64) captions.Word {
	return captions.Word{
		Text:          text,
		Duration:      end - start,
		AbsoluteStart: start,
		AbsoluteEnd:   end,
		Confidence:    1,
	}
}

// Caption assembles words into a caption whose timing spans them all. Word
// start offsets are made relative to the caption start.
func Caption(words ...captions.Word) captions.Caption {
	c := captions.Caption{Words: make([]captions.Word, len(words))}
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	c.Text = strings.Join(texts, " ")
	if len(words) > 0 {
		c.AbsoluteStart = words[0].AbsoluteStart
		c.AbsoluteEnd = words[len(words)-1].AbsoluteEnd
		c.Duration = c.AbsoluteEnd - c.AbsoluteStart
	}
	for i, w := range words {
		w.Start = w.AbsoluteStart - c.AbsoluteStart
		c.Words[i] = w
	}
	return c
}
