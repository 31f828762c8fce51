package set

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-collectiones/internal/clone"
)

// Set is an unordered collection of unique comparable elements.
type Set[T comparable] map[T]struct{}

// Of creates a Set containing elems. Duplicates collapse to one element.
func Of[T comparable](elems ...T) Set[T] {
	return FromSlice(elems)
}

// FromSlice creates a Set from the elements of items.
func FromSlice[T comparable](items []T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[clone.Value(item)] = struct{}{}
	}
	return s
}

// Contains reports whether elem is in s.
func (s Set[T]) Contains(elem T) bool {
	_, ok := s[elem]
	return ok
}

// Len returns the number of elements in s.
func (s Set[T]) Len() int { return len(s) }

// Equal reports whether a and b hold exactly the same elements.
func Equal[T comparable](a, b Set[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for e := range a {
		if _, ok := b[e]; !ok {
			return false
		}
	}
	return true
}

// Union returns the elements present in a or b.
func Union[T comparable](a, b Set[T]) Set[T] {
	out := make(Set[T], len(a)+len(b))
	for e := range a {
		out[clone.Value(e)] = struct{}{}
	}
	for e := range b {
		out[clone.Value(e)] = struct{}{}
	}
	return out
}

// Intersection returns the elements present in both a and b.
func Intersection[T comparable](a, b Set[T]) Set[T] {
	small, large := a, b
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set[T], len(small))
	for e := range small {
		if _, ok := large[e]; ok {
			out[clone.Value(e)] = struct{}{}
		}
	}
	return out
}

// Difference returns the elements of a that are not in b.
func Difference[T comparable](a, b Set[T]) Set[T] {
	out := make(Set[T], len(a))
	for e := range a {
		if _, ok := b[e]; !ok {
			out[clone.Value(e)] = struct{}{}
		}
	}
	return out
}

// SymmetricDifference returns the elements present in exactly one of a and b.
func SymmetricDifference[T comparable](a, b Set[T]) Set[T] {
	out := Difference(a, b)
	for e := range b {
		if _, ok := a[e]; !ok {
			out[clone.Value(e)] = struct{}{}
		}
	}
	return out
}

// IsSubset reports whether every element of a is also in b.
func IsSubset[T comparable](a, b Set[T]) bool {
	if len(a) > len(b) {
		return false
	}
	for e := range a {
		if _, ok := b[e]; !ok {
			return false
		}
	}
	return true
}

// IsSuperset reports whether a contains every element of b.
func IsSuperset[T comparable](a, b Set[T]) bool { return IsSubset(b, a) }

// ToList returns the elements of s as a slice. The order is unspecified.
func ToList[T comparable](s Set[T]) []T {
	out := make([]T, 0, len(s))
	for e := range s {
		out = append(out, clone.Value(e))
	}
	return out
}

// SortedList is [ToList] in ascending order. Floating-point NaNs sort first.
func SortedList[T constraints.Ordered](s Set[T]) []T {
	out := ToList(s)
	slices.SortFunc(out, cmp.Compare[T])
	return out
}
