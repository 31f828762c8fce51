package dict

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-collectiones/internal/clone"
)

// Merge returns a new map holding every entry of a with every entry of b
// applied on top. On a key collision b's value wins.
func Merge[K comparable, V any](a, b map[K]V) map[K]V {
	out := make(map[K]V, len(a)+len(b))
	for k, v := range a {
		out[clone.Value(k)] = clone.Value(v)
	}
	for k, v := range b {
		out[clone.Value(k)] = clone.Value(v)
	}
	return out
}

// Invert returns a new map from each value of m to its key.
//
// When several keys share a value only one of them survives, and which one
// is unspecified. Callers must not rely on a particular survivor unless the
// values of m are unique.
func Invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[clone.Value(v)] = clone.Value(k)
	}
	return out
}

// Select returns the entries of m whose key appears in keys.
// Keys absent from m are ignored.
func Select[K comparable, V any](m map[K]V, keys []K) map[K]V {
	out := make(map[K]V, min(len(m), len(keys)))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[clone.Value(k)] = clone.Value(v)
		}
	}
	return out
}

// Omit returns the entries of m whose key does not appear in keys.
// Keys absent from m are ignored.
func Omit[K comparable, V any](m map[K]V, keys []K) map[K]V {
	skip := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		skip[k] = struct{}{}
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		if _, found := skip[k]; !found {
			out[clone.Value(k)] = clone.Value(v)
		}
	}
	return out
}

// ToPairs returns every entry of m as a [Pair]. The order of the result is
// unspecified; see [SortedPairs] for a deterministic order.
func ToPairs[K comparable, V any](m map[K]V) []Pair[K, V] {
	out := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, Pair[K, V]{Key: clone.Value(k), Value: clone.Value(v)})
	}
	return out
}

// SortedPairs is [ToPairs] ordered by ascending key. Floating-point NaN
// keys sort first.
func SortedPairs[K constraints.Ordered, V any](m map[K]V) []Pair[K, V] {
	out := ToPairs(m)
	slices.SortStableFunc(out, func(a, b Pair[K, V]) int { return cmp.Compare(a.Key, b.Key) })
	return out
}

// FromPairs builds a map from pairs. When a key repeats, the later pair wins.
func FromPairs[K comparable, V any](pairs []Pair[K, V]) map[K]V {
	out := make(map[K]V, len(pairs))
	for _, p := range pairs {
		out[clone.Value(p.Key)] = clone.Value(p.Value)
	}
	return out
}
