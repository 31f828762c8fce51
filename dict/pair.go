package dict

import "fmt"

// Pair is a single map entry. It is the element type produced by [ToPairs].
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// String returns "(key, value)".
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}
