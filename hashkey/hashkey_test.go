package hashkey_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collectiones/hashkey"
)

func TestOfEqualContent(t *testing.T) {
	k1, err := hashkey.Of([]int{1, 2, 3})
	require.NoError(t, err)
	k2, err := hashkey.Of([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
}

func TestOfDifferentContent(t *testing.T) {
	assert.NotEqual(t, hashkey.MustOf([]int{1, 2}), hashkey.MustOf([]int{2, 1}))
}

func TestOfMapOrderIndependent(t *testing.T) {
	a := map[string]int{"a": 1, "b": 2, "c": 3}
	b := map[string]int{"c": 3, "b": 2, "a": 1}
	assert.Equal(t, hashkey.MustOf(a), hashkey.MustOf(b))
}

type point struct{ x, y int }

type node struct {
	name string
	next *node
}

func TestOfUnexportedFields(t *testing.T) {
	a, b := hashkey.MustOf(point{1, 2}), hashkey.MustOf(point{3, 4})
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, hashkey.MustOf(point{1, 2}))
}

func TestOfInterfaceDynamicType(t *testing.T) {
	keys := map[hashkey.Key]any{}
	for _, v := range []any{1, 1.0, "1", int64(1), uint(1), true, nil} {
		k := hashkey.MustOf(v)
		require.NotContains(t, keys, k, "%#v collides with %#v", v, keys[k])
		keys[k] = v
	}
}

func TestOfNilAndEmptySlice(t *testing.T) {
	assert.NotEqual(t, hashkey.MustOf([]int(nil)), hashkey.MustOf([]int{}))
}

func TestOfSequenceBoundaries(t *testing.T) {
	assert.NotEqual(t, hashkey.MustOf([]string{"ab", "c"}), hashkey.MustOf([]string{"a", "bc"}))
	assert.NotEqual(t, hashkey.MustOf([][]int{{1}, {2}}), hashkey.MustOf([][]int{{1, 2}}))
}

func TestOfNegativeZero(t *testing.T) {
	assert.Equal(t, hashkey.MustOf(0.0), hashkey.MustOf(math.Copysign(0, -1)))
}

func TestOfFollowsPointers(t *testing.T) {
	a, b := &point{1, 2}, &point{1, 2}
	assert.Equal(t, hashkey.MustOf(a), hashkey.MustOf(b))
	assert.NotEqual(t, hashkey.MustOf(a), hashkey.MustOf(&point{2, 1}))
}

func TestOfSharedPointerIsNotACycle(t *testing.T) {
	p := &point{1, 2}
	_, err := hashkey.Of([]*point{p, p})
	require.NoError(t, err)
}

func TestOfCycle(t *testing.T) {
	n := &node{name: "loop"}
	n.next = n
	_, err := hashkey.Of(n)
	require.ErrorIs(t, err, hashkey.ErrUnhashable)

	s := []any{nil}
	s[0] = s
	_, err = hashkey.Of(s)
	require.ErrorIs(t, err, hashkey.ErrUnhashable)
}

func TestOfMapWithInterfaceKeys(t *testing.T) {
	a := map[any]string{1: "int", 1.0: "float"}
	b := map[any]string{1.0: "float", 1: "int"}
	c := map[any]string{1: "float", 1.0: "int"}
	assert.Equal(t, hashkey.MustOf(a), hashkey.MustOf(b))
	assert.NotEqual(t, hashkey.MustOf(a), hashkey.MustOf(c))
}

func TestOfUnhashable(t *testing.T) {
	_, err := hashkey.Of(make(chan int))
	require.ErrorIs(t, err, hashkey.ErrUnhashable)
}

func TestMustOfPanics(t *testing.T) {
	assert.Panics(t, func() { hashkey.MustOf(func() {}) })
}

func TestKeyString(t *testing.T) {
	s := hashkey.MustOf("x").String()
	assert.Len(t, s, hashkey.Size*2)
}
