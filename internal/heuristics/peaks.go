package heuristics

// NeighborMean averages values within radius indices of i, excluding i itself.
// The window is clipped at the slice bounds. ok is false when no neighbour exists.
func NeighborMean(values []float64, i, radius int) (mean float64, ok bool) {
	if i < 0 || i >= len(values) || radius <= 0 {
		return 0, false
	}
	lo := max(0, i-radius)
	hi := min(len(values)-1, i+radius)
	var sum float64
	n := 0
	for j := lo; j <= hi; j++ {
		if j == i {
			continue
		}
		sum += values[j]
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// LocalPeak reports how far values[i] rises above its windowed neighbour mean
// and whether that rise exceeds threshold. Without neighbours the strength is 0.
func LocalPeak(values []float64, i, radius int, threshold float64) (strength float64, isPeak bool) {
	mean, ok := NeighborMean(values, i, radius)
	if !ok {
		return 0, false
	}
	strength = values[i] - mean
	return strength, strength > threshold
}

// FirstMaxIndex returns the index of the largest value among eligible indices,
// preferring the earliest index on ties. eligible may be nil to consider every
// index. It returns -1 when nothing is eligible.
func FirstMaxIndex(values []float64, eligible func(i int) bool) int {
	best := -1
	for i, v := range values {
		if eligible != nil && !eligible(i) {
			continue
		}
		if best < 0 || v > values[best] {
			best = i
		}
	}
	return best
}
