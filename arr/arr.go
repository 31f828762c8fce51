package arr

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-collectiones/hashkey"
	"github.com/hasbyte1/go-collectiones/internal/clone"
)

// ─────────────────────────────────────────────────────────────────────────────
// Adding & removing
// ─────────────────────────────────────────────────────────────────────────────

// Append returns a copy of items with values added at the end.
func Append[T any](items []T, values ...T) []T {
	out := make([]T, 0, len(items)+len(values))
	out = append(out, clone.Slice(items)...)
	return append(out, clone.Slice(values)...)
}

// Prepend returns a copy of items with values added at the front.
func Prepend[T any](items []T, values ...T) []T {
	out := make([]T, 0, len(values)+len(items))
	out = append(out, clone.Slice(values)...)
	return append(out, clone.Slice(items)...)
}

// Pop returns the last element together with a copy of the remaining items.
// Returns the zero value, an empty slice and false when items is empty.
func Pop[T any](items []T) (T, []T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, []T{}, false
	}
	n := len(items) - 1
	return clone.Value(items[n]), clone.Slice(items[:n]), true
}

// Shift returns the first element together with a copy of the remaining
// items. Returns the zero value, an empty slice and false when items is empty.
func Shift[T any](items []T) (T, []T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, []T{}, false
	}
	return clone.Value(items[0]), clone.Slice(items[1:]), true
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Sorted returns a copy of items in ascending order.
// The sort is stable: equal elements keep their input order. Floating-point
// NaNs sort before every other value.
func Sorted[T constraints.Ordered](items []T) []T {
	out := clone.Slice(items)
	slices.SortStableFunc(out, cmp.Compare[T])
	return out
}

// SortedFunc returns a copy of items ordered by less.
// The sort is stable: equal elements keep their input order.
func SortedFunc[T any](items []T, less func(a, b T) bool) []T {
	out := clone.Slice(items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = clone.Value(item)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Deduplication
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns items with duplicates removed, keeping the first occurrence
// of each element in its original position.
func Unique[T comparable](items []T) []T {
	return UniqueBy(items, func(item T) T { return item })
}

// UniqueBy is like [Unique] but two elements count as duplicates when fn
// maps them to the same key. fn is called exactly once per element, in
// order, and the kept elements are clones of the first element seen for
// each key.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	out := make([]T, 0, len(items))
	seen := make(map[K]struct{}, len(items))
	for _, item := range items {
		k := fn(item)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, clone.Value(item))
	}
	return out
}

// UniqueHashed is like [Unique] for element types that are not comparable,
// such as slices, maps or structs holding them. Two elements are duplicates
// when their [hashkey.Of] keys match, which covers unexported fields and the
// dynamic type behind interfaces. Nothing is returned if any element cannot
// be hashed.
func UniqueHashed[T any](items []T) ([]T, error) {
	keys := make([]hashkey.Key, len(items))
	for i, item := range items {
		k, err := hashkey.Of(item)
		if err != nil {
			return nil, fmt.Errorf("arr: unique element %d: %w", i, err)
		}
		keys[i] = k
	}
	seen := make(map[hashkey.Key]struct{}, len(items))
	out := make([]T, 0, len(items))
	for i, item := range items {
		if _, ok := seen[keys[i]]; !ok {
			seen[keys[i]] = struct{}{}
			out = append(out, clone.Value(item))
		}
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & restructuring
// ─────────────────────────────────────────────────────────────────────────────

// LastN returns the final n elements of items in their original order.
// When n exceeds len(items) the whole slice is returned; n <= 0 yields an
// empty slice.
func LastN[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	start := max(len(items)-n, 0)
	return clone.Slice(items[start:])
}

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunks = append(chunks, clone.Slice(items[i:end]))
	}
	return chunks
}

// GroupBy buckets clones of items under the key fn returns for each one.
// Every bucket is non-empty and lists its elements in their original
// relative order. An empty input yields an empty, non-nil map.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		bucket := fn(item)
		groups[bucket] = append(groups[bucket], clone.Value(item))
	}
	return groups
}

// Partition returns clones of the elements satisfying fn, then clones of
// those that do not. Both results keep original relative order, together
// hold every element exactly once, and are non-nil even when empty.
func Partition[T any](items []T, fn func(T) bool) (matched, rest []T) {
	matched, rest = []T{}, []T{}
	for _, item := range items {
		if fn(item) {
			matched = append(matched, clone.Value(item))
			continue
		}
		rest = append(rest, clone.Value(item))
	}
	return matched, rest
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & formatting
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	return FindIndex(items, func(item T) bool { return item == value })
}

// FindIndex returns the index of the first element satisfying fn, or -1.
func FindIndex[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// Join formats every element with fmt.Sprint and joins them with sep.
func Join[T any](items []T, sep string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprint(&b, item)
	}
	return b.String()
}
