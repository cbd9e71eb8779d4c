// Package randsource isolates randomness behind a small interface so variant
// "random" generator modes can be seeded and reproduced in tests while the
// deterministic selectors never touch it.
package randsource

import "math/rand/v2"

// Source is the random surface generators are allowed to use.
type Source interface {
	// IntN returns a value in [0, n). It panics when n <= 0.
	IntN(n int) int
	Float64() float64
}

// NewSeeded returns a deterministic Source; equal seeds yield equal sequences.
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle permutes n elements in place using src (Fisher-Yates).
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		swap(i, j)
	}
}
