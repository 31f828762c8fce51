package arr_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collectiones/arr"
)

func TestShuffleIsPermutation(t *testing.T) {
	src := []int{1, 2, 3, 4, 5, 6, 7, 8}
	got := arr.Shuffle(src, rand.New(rand.NewSource(11)))
	assert.ElementsMatch(t, src, got)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, src)
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	src := []int{1, 2, 3, 4, 5, 6, 7, 8}
	a := arr.Shuffle(src, rand.New(rand.NewSource(42)))
	b := arr.Shuffle(src, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestShuffleNilSource(t *testing.T) {
	src := []string{"a", "b", "c"}
	assert.ElementsMatch(t, src, arr.Shuffle(src, nil))
}

func TestSample(t *testing.T) {
	src := []int{10, 20, 30}
	v, ok := arr.Sample(src, rand.New(rand.NewSource(1)))
	require.True(t, ok)
	assert.Contains(t, src, v)

	_, ok = arr.Sample([]int{}, nil)
	assert.False(t, ok)
}

func TestSampleN(t *testing.T) {
	src := []int{1, 2, 3, 4, 5}
	rnd := rand.New(rand.NewSource(9))

	got := arr.SampleN(src, 3, rnd)
	require.Len(t, got, 3)
	assert.Len(t, arr.Unique(got), 3, "sampling is without replacement")
	for _, v := range got {
		assert.Contains(t, src, v)
	}

	assert.ElementsMatch(t, src, arr.SampleN(src, 10, rnd))
	assert.Empty(t, arr.SampleN(src, 0, rnd))
}
