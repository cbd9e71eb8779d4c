package randsource

import (
	"slices"
	"testing"
)

func TestNewSeededIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 16; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestShuffleKeepsElements(t *testing.T) {
	values := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(NewSeeded(7), len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	if !slices.Equal(sorted, []int{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Fatalf("shuffle lost elements: %v", values)
	}
}

type fixedSource struct{ draws []int }

func (f *fixedSource) IntN(n int) int {
	v := f.draws[0] % n
	f.draws = f.draws[1:]
	return v
}

func (f *fixedSource) Float64() float64 { return 0 }

func TestShuffleUsesInjectedSource(t *testing.T) {
	values := []string{"a", "b", "c"}
	// i=2 swaps with 0, i=1 swaps with 1.
	Shuffle(&fixedSource{draws: []int{0, 1}}, len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	if !slices.Equal(values, []string{"c", "b", "a"}) {
		t.Fatalf("unexpected order: %v", values)
	}
}
