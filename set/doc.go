// Package set provides a generic unordered set built on a plain Go map and
// the usual set algebra over it.
//
// A [Set] is just map[T]struct{}, so it can be ranged over, measured with
// len and indexed directly. The algebra functions ([Union], [Intersection],
// [Difference], [SymmetricDifference]) never mutate their arguments and
// always return a fresh set:
//
//	a := set.Of(1, 2, 3)
//	b := set.Of(2, 3, 4)
//	set.Union(a, b)               // {1, 2, 3, 4}
//	set.Intersection(a, b)        // {2, 3}
//	set.Difference(a, b)          // {1}
//	set.SymmetricDifference(a, b) // {1, 4}
//
// [ToList] returns elements in no particular order. Call [SortedList], or
// sort the result yourself, when order matters.
package set
