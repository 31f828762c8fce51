package hashkey

import (
	"encoding/hex"
	"fmt"
	"reflect"

	"golang.org/x/crypto/blake2b"
)

// Size is the length of a [Key] in bytes.
const Size = blake2b.Size256

// Key is a comparable digest identifying a value by content.
type Key [Size]byte

// String returns the lowercase hex encoding of k.
func (k Key) String() string {
	return hex.EncodeToString(k[:])
}

// Of returns the content key of v.
func Of[T any](v T) (Key, error) {
	h, _ := blake2b.New256(nil)
	e := newEncoder(h)
	// Go through a pointer so an interface-typed T keeps its static type.
	if err := e.encode(reflect.ValueOf(&v).Elem()); err != nil {
		return Key{}, fmt.Errorf("%w: %T: %v", ErrUnhashable, v, err)
	}
	var k Key
	h.Sum(k[:0])
	return k, nil
}

// MustOf is like [Of] but panics if v cannot be hashed.
// Use it only where the value type is known to be hashable.
func MustOf[T any](v T) Key {
	k, err := Of(v)
	if err != nil {
		panic(err)
	}
	return k
}
