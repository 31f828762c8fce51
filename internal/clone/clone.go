// Package clone implements the cloning capability shared by the dict, set
// and arr packages.
package clone

// Cloner is implemented by types that own mutable state (slices, maps,
// pointers) and want every copied element to be independent of its source.
type Cloner[T any] interface {
	Clone() T
}

// Value returns v.Clone() when T implements [Cloner], otherwise v itself.
func Value[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// Slice returns a freshly allocated copy of items with every element passed
// through [Value]. A nil input yields an empty, non-nil slice.
func Slice[T any](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = Value(item)
	}
	return out
}
