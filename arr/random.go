package arr

import (
	"math/rand"

	"github.com/hasbyte1/go-collectiones/internal/clone"
)

// Shuffle returns a copy of items in random order drawn from rnd.
// A nil rnd uses the math/rand global source.
func Shuffle[T any](items []T, rnd *rand.Rand) []T {
	out := clone.Slice(items)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if rnd == nil {
		rand.Shuffle(len(out), swap)
	} else {
		rnd.Shuffle(len(out), swap)
	}
	return out
}

// Sample returns one random element of items.
// Returns the zero value and false when items is empty.
func Sample[T any](items []T, rnd *rand.Rand) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	var i int
	if rnd == nil {
		i = rand.Intn(len(items))
	} else {
		i = rnd.Intn(len(items))
	}
	return clone.Value(items[i]), true
}

// SampleN returns n elements of items chosen at random without replacement.
// When n exceeds len(items) every element is returned in shuffled order;
// n <= 0 yields an empty slice.
func SampleN[T any](items []T, n int, rnd *rand.Rand) []T {
	if n <= 0 {
		return []T{}
	}
	out := Shuffle(items, rnd)
	return out[:min(n, len(out))]
}
