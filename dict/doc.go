// Package dict provides pure, generic helpers that derive a new map from one
// or more existing maps: merging, inverting, selecting or omitting keys, and
// flattening to key/value pairs.
//
// # Immutability
//
// No function mutates its inputs. Every result is a freshly allocated map or
// slice owned by the caller. Keys and values are copied by assignment, or by
// their Clone method when the type provides one:
//
//	type Tags []string
//	func (t Tags) Clone() Tags { return append(Tags(nil), t...) }
//
//	merged := dict.Merge(a, b) // Tags values are deep-copied
//
// # Iteration order
//
// Go randomises map iteration. [ToPairs] therefore returns pairs in no
// particular order, and when [Invert] meets two keys with equal values the
// surviving key is unspecified. Use [SortedPairs] when a stable order is
// required.
//
//	dict.Merge(map[string]int{"a": 1, "b": 2}, map[string]int{"b": 3, "c": 4})
//	// → map[a:1 b:3 c:4]
package dict
