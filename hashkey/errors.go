package hashkey

import "errors"

// ErrUnhashable is returned when a value has no canonical encoding.
var ErrUnhashable = errors.New("hashkey: value cannot be hashed")
