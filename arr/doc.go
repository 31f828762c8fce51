// Package arr provides pure, generic helpers that derive a new slice (or a
// map of slices) from an existing one: appending, prepending, sorting,
// deduplicating, taking a tail, grouping and partitioning.
//
// All helpers operate on plain []T values; no wrapper type is required:
//
//	arr.LastN([]int{1, 2, 3}, 2)                                 // → [2 3]
//	arr.Unique([]string{"a", "b", "a"})                          // → [a b]
//	evens, odds := arr.Partition([]int{1, 2, 3, 4, 5}, isEven)   // → [2 4] [1 3 5]
//	byLen := arr.GroupBy([]string{"a", "bb", "cc", "d"}, length) // → {1:[a d] 2:[bb cc]}
//
// # Immutability
//
// The input slice is never modified and the result never aliases it, even
// when nothing changes (LastN with a large n returns a copy). Elements whose
// type has a Clone method are copied through it.
//
// # Randomness
//
// [Shuffle], [Sample] and [SampleN] take a *rand.Rand so tests and callers
// can make them deterministic. Passing nil uses the math/rand global source.
package arr
