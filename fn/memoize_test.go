package fn_test

import (
	"testing"

	"github.com/on-the-ground/support_ive_go/fn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoizeI2O1_ComputesOnce(t *testing.T) {
	count := 0
	add := fn.MemoizeI2O1(func(a, b int) int {
		count++
		return a + b
	})

	assert.Equal(t, 5, add(2, 3))
	assert.Equal(t, 5, add(2, 3)) // cached
	assert.Equal(t, 1, count)
}

func TestMemoizeI1O1_DistinctArgsDistinctEntries(t *testing.T) {
	count := 0
	double := fn.MemoizeI1O1(func(i int) int {
		count++
		return i * 2
	})

	assert.Equal(t, 4, double(2))
	assert.Equal(t, 6, double(3))
	assert.Equal(t, 4, double(2))
	assert.Equal(t, 2, count)
}

func TestMemoizeI3O1(t *testing.T) {
	count := 0
	mul := fn.MemoizeI3O1(func(a, b, c int) int {
		count++
		return a * b * c
	})

	assert.Equal(t, 24, mul(2, 3, 4))
	assert.Equal(t, 24, mul(2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestMemoizeI1O2(t *testing.T) {
	count := 0
	split := fn.MemoizeI1O2(func(i int) (int, string) {
		count++
		return i, "val"
	})

	a, b := split(10)
	assert.Equal(t, 10, a)
	assert.Equal(t, "val", b)
	a2, b2 := split(10)
	assert.Equal(t, 10, a2)
	assert.Equal(t, "val", b2)
	assert.Equal(t, 1, count)
}

func TestMemoize_CachesEvenImpureResults(t *testing.T) {
	next := 0
	impure := fn.MemoizeI1O1(func(string) int {
		next++
		return next
	})

	assert.Equal(t, 1, impure("k"))
	assert.Equal(t, 1, impure("k")) // stale by design
}

func TestMemoize_StructuredArgs(t *testing.T) {
	type point struct{ X, Y int }
	count := 0
	norm := fn.MemoizeI1O1(func(p point) int {
		count++
		return p.X*p.X + p.Y*p.Y
	})

	assert.Equal(t, 25, norm(point{3, 4}))
	assert.Equal(t, 25, norm(point{3, 4}))
	assert.Equal(t, 1, count)
}

func TestMemoize_MapArgsKeyIsStable(t *testing.T) {
	count := 0
	size := fn.MemoizeI1O1(func(m map[string]int) int {
		count++
		return len(m)
	})

	arg := map[string]int{
		"a": 1, "b": 2, "c": 3, "d": 4,
		"e": 5, "f": 6, "g": 7, "h": 8,
	}
	for i := 0; i < 20; i++ {
		assert.Equal(t, 8, size(arg))
	}
	assert.Equal(t, 1, count)
}

func TestMemoize_UnserializableArgsPanic(t *testing.T) {
	wrapped := fn.MemoizeI1O1(func(ch chan int) int { return 0 })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, fn.ErrUnserializableArgs)
	}()
	wrapped(make(chan int))
}

func TestMemoize_WithMaxEntriesRotates(t *testing.T) {
	count := 0
	double := fn.MemoizeI1O1(func(i int) int {
		count++
		return i * 2
	}, fn.WithMaxEntries(1))

	assert.Equal(t, 2, double(1)) // miss, live {1}
	assert.Equal(t, 4, double(2)) // miss, rotation: fallback {1}, live {2}
	assert.Equal(t, 2, double(1)) // hit via fallback
	assert.Equal(t, 6, double(3)) // miss, rotation drops {1}
	assert.Equal(t, 3, count)

	assert.Equal(t, 2, double(1)) // evicted, recomputed
	assert.Equal(t, 4, count)
}
