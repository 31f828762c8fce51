package hashkey

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"sort"

	"golang.org/x/crypto/blake2b"
)

// Tags prefix every encoded value so that values of different shapes can
// never produce the same byte stream.
const (
	tagNil byte = iota
	tagBool
	tagInt
	tagUint
	tagFloat
	tagComplex
	tagString
	tagSeq
	tagMap
	tagStruct
	tagPtr
	tagIface
)

var errCycle = errors.New("cyclic value")

type visit struct {
	ptr uintptr
	typ reflect.Type
	n   int
}

// encoder writes a canonical, type-aware byte stream for a value. Unexported
// struct fields are included, and map entries are ordered by the digest of
// their encoded key.
type encoder struct {
	w    io.Writer
	buf  [binary.MaxVarintLen64]byte
	seen map[visit]struct{}
}

func newEncoder(w io.Writer) *encoder {
	return &encoder{w: w, seen: make(map[visit]struct{})}
}

func (e *encoder) tag(t byte) { e.w.Write([]byte{t}) }

func (e *encoder) uvarint(n uint64) {
	e.w.Write(e.buf[:binary.PutUvarint(e.buf[:], n)])
}

func (e *encoder) str(s string) {
	e.uvarint(uint64(len(s)))
	io.WriteString(e.w, s)
}

func (e *encoder) float(f float64) {
	if f == 0 {
		f = 0 // -0 and +0 compare equal
	}
	e.uvarint(math.Float64bits(f))
}

// enter guards reference kinds against cycles. The returned func must be
// called once the value has been written.
func (e *encoder) enter(v reflect.Value, n int) (func(), error) {
	if v.Pointer() == 0 {
		return func() {}, nil
	}
	k := visit{ptr: v.Pointer(), typ: v.Type(), n: n}
	if _, ok := e.seen[k]; ok {
		return nil, errCycle
	}
	e.seen[k] = struct{}{}
	return func() { delete(e.seen, k) }, nil
}

func (e *encoder) encode(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Bool:
		e.tag(tagBool)
		if v.Bool() {
			e.uvarint(1)
		} else {
			e.uvarint(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.tag(tagInt)
		e.uvarint(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		e.tag(tagUint)
		e.uvarint(v.Uint())
	case reflect.Float32, reflect.Float64:
		e.tag(tagFloat)
		e.float(v.Float())
	case reflect.Complex64, reflect.Complex128:
		e.tag(tagComplex)
		c := v.Complex()
		e.float(real(c))
		e.float(imag(c))
	case reflect.String:
		e.tag(tagString)
		e.str(v.String())
	case reflect.Array:
		return e.seq(v)
	case reflect.Slice:
		if v.IsNil() {
			e.tag(tagNil)
			return nil
		}
		leave, err := e.enter(v, v.Len())
		if err != nil {
			return err
		}
		defer leave()
		return e.seq(v)
	case reflect.Map:
		if v.IsNil() {
			e.tag(tagNil)
			return nil
		}
		leave, err := e.enter(v, 0)
		if err != nil {
			return err
		}
		defer leave()
		return e.mapping(v)
	case reflect.Struct:
		e.tag(tagStruct)
		e.str(v.Type().String())
		for i := 0; i < v.NumField(); i++ {
			e.str(v.Type().Field(i).Name)
			if err := e.encode(v.Field(i)); err != nil {
				return err
			}
		}
	case reflect.Pointer:
		if v.IsNil() {
			e.tag(tagNil)
			return nil
		}
		leave, err := e.enter(v, 0)
		if err != nil {
			return err
		}
		defer leave()
		e.tag(tagPtr)
		return e.encode(v.Elem())
	case reflect.Interface:
		if v.IsNil() {
			e.tag(tagNil)
			return nil
		}
		e.tag(tagIface)
		e.str(v.Elem().Type().String())
		return e.encode(v.Elem())
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}

func (e *encoder) seq(v reflect.Value) error {
	e.tag(tagSeq)
	e.uvarint(uint64(v.Len()))
	for i := 0; i < v.Len(); i++ {
		if err := e.encode(v.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

type entry struct {
	key, value []byte
}

func (e *encoder) mapping(v reflect.Value) error {
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		var kb, vb bytes.Buffer
		if err := e.sub(&kb).encode(iter.Key()); err != nil {
			return err
		}
		if err := e.sub(&vb).encode(iter.Value()); err != nil {
			return err
		}
		kd := blake2b.Sum256(kb.Bytes())
		entries = append(entries, entry{key: kd[:], value: vb.Bytes()})
	}
	// Distinct keys may still encode alike (NaN), so ties fall back to the value.
	sort.Slice(entries, func(i, j int) bool {
		if c := bytes.Compare(entries[i].key, entries[j].key); c != 0 {
			return c < 0
		}
		return bytes.Compare(entries[i].value, entries[j].value) < 0
	})

	e.tag(tagMap)
	e.uvarint(uint64(len(entries)))
	for _, en := range entries {
		e.w.Write(en.key)
		e.uvarint(uint64(len(en.value)))
		e.w.Write(en.value)
	}
	return nil
}

// sub returns an encoder writing to w that shares e's cycle tracking.
func (e *encoder) sub(w io.Writer) *encoder {
	return &encoder{w: w, seen: e.seen}
}
