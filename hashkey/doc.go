// Package hashkey gives non-comparable values (slices, maps, structs holding
// them) a comparable identity so they can be deduplicated or used as map
// keys.
//
// A [Key] is the BLAKE2b-256 digest of a canonical encoding produced by
// walking the value with reflection. The encoding includes unexported struct
// fields and the dynamic type behind every interface, so any(1) and any(1.0)
// hash differently. Map entries are written in an order derived from their
// content, so two maps with the same entries always produce the same Key:
//
//	k1, _ := hashkey.Of(map[string]int{"a": 1, "b": 2})
//	k2, _ := hashkey.Of(map[string]int{"b": 2, "a": 1})
//	k1 == k2 // true
//
// Pointers are followed, so two distinct pointers to equal values share a
// Key. Channels, functions, unsafe pointers and cyclic values return
// [ErrUnhashable].
package hashkey
