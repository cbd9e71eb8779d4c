package beats

import "cadence/internal/heuristics"

// Window is one clip interval derived from the selected beats.
type Window struct {
	Index int `json:"index"`
	// Start and Duration include the overlap padding.
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	// Base is the un-padded duration between the bounding beats.
	Base float64 `json:"base"`
	// Beat is the timestamp that opens the window; nil for the lead-in.
	Beat *float64 `json:"beat,omitempty"`
}

// ClipWindows cuts [0, window) at every selected beat. A lead-in window covers
// the time before the first beat unless that beat sits at 0. Each window is
// widened by overlap/2 on both sides and clamped to [0, window]. Beats at or
// past the window end are ignored.
func ClipWindows(selected []Selected, window, overlap float64) []Window {
	if window <= 0 {
		return nil
	}
	if overlap < 0 {
		overlap = 0
	}
	cuts := make([]float64, 0, len(selected))
	for _, s := range selected {
		if s.Timestamp < window && s.Timestamp >= 0 {
			cuts = append(cuts, s.Timestamp)
		}
	}

	var out []Window
	add := func(start, end float64, beat *float64) {
		if end <= start {
			return
		}
		lo := heuristics.Clamp(start-overlap/2, 0, window)
		hi := heuristics.Clamp(end+overlap/2, 0, window)
		out = append(out, Window{
			Index:    len(out),
			Start:    lo,
			Duration: hi - lo,
			Base:     end - start,
			Beat:     beat,
		})
	}

	if len(cuts) == 0 {
		add(0, window, nil)
		return out
	}
	if cuts[0] > 0 {
		add(0, cuts[0], nil)
	}
	for i, ts := range cuts {
		end := window
		if i+1 < len(cuts) {
			end = cuts[i+1]
		}
		beat := ts
		add(ts, end, &beat)
	}
	return out
}
