// Package seqtest holds the behaviour every collection.Sequence must share,
// so each implementation runs the same suite against its own constructor.
package seqtest

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/ddirect/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Factory func() collection.Sequence[int]

func Run(t *testing.T, newSeq Factory) {
	t.Run("AddRemove", func(t *testing.T) { testAddRemove(t, newSeq) })
	t.Run("Put", func(t *testing.T) { testPut(t, newSeq) })
	t.Run("Set", func(t *testing.T) { testSet(t, newSeq) })
	t.Run("Bounds", func(t *testing.T) { testBounds(t, newSeq) })
	t.Run("RemoveFirstDuplicate", func(t *testing.T) { testRemoveFirstDuplicate(t, newSeq) })
	t.Run("AtIsMutable", func(t *testing.T) { testAtIsMutable(t, newSeq) })
	t.Run("Shift", func(t *testing.T) { testShift(t, newSeq) })
	t.Run("Clear", func(t *testing.T) { testClear(t, newSeq) })
	t.Run("Scenario", func(t *testing.T) { testScenario(t, newSeq) })
	t.Run("RemovedNotFound", func(t *testing.T) { testRemovedNotFound(t, newSeq) })
}

// Contents reads s back through At only.
func Contents(t *testing.T, s collection.Sequence[int]) []int {
	res := make([]int, 0, s.Size())
	for i := range s.Size() {
		v, err := s.At(i)
		require.NoError(t, err)
		res = append(res, *v)
	}
	return res
}

var values = []int{1, 2, 3, 4, 5, 5}

func testAddRemove(t *testing.T, newSeq Factory) {
	s := newSeq()
	assert.Zero(t, s.Size())
	assert.True(t, s.Empty())

	s.Add(5)
	assert.Equal(t, 1, s.Size())
	assert.True(t, s.Contains(5))
	require.NoError(t, s.RemoveAt(0))
	assert.Zero(t, s.Size())
	assert.False(t, s.Contains(5))

	s.Add(5)
	assert.True(t, s.Remove(5))
	assert.True(t, s.Empty())
	assert.False(t, s.Remove(5))

	for i, v := range values {
		s.Add(v)
		assert.Equal(t, i+1, s.Size())
		assert.True(t, s.Contains(v))
		last, err := s.At(s.Size() - 1)
		require.NoError(t, err)
		assert.Equal(t, v, *last)
	}
	for i, v := range values {
		assert.True(t, s.Remove(v))
		assert.Equal(t, len(values)-1-i, s.Size())
	}

	for _, v := range values {
		s.Add(v)
	}
	for i := range values {
		require.NoError(t, s.RemoveAt(0))
		assert.Equal(t, len(values)-1-i, s.Size())
	}
	assert.True(t, s.Empty())
}

func testPut(t *testing.T, newSeq Factory) {
	front := newSeq()
	for i := len(values) - 1; i >= 0; i-- {
		require.NoError(t, front.Put(0, values[i]))
		assert.Equal(t, len(values)-i, front.Size())
		assert.True(t, front.Contains(values[i]))
	}
	assert.Equal(t, values, Contents(t, front))

	back := newSeq()
	for i, v := range values {
		require.NoError(t, back.Put(i, v))
		assert.Equal(t, i+1, back.Size())
	}
	assert.Equal(t, values, Contents(t, back))
}

func testSet(t *testing.T, newSeq Factory) {
	s := newSeq()
	exp := []int{1, 2, 3, 4, 5}
	for range exp {
		s.Add(0)
	}
	for i, v := range exp {
		require.NoError(t, s.Set(i, v))
	}
	assert.Equal(t, exp, Contents(t, s))
}

func testBounds(t *testing.T, newSeq Factory) {
	isRange := func(err error) bool {
		return errors.Is(err, collection.ErrIndexOutOfRange)
	}

	s := newSeq()
	_, err := s.At(0)
	assert.True(t, isRange(err))
	assert.True(t, isRange(s.Set(0, 1)))
	assert.True(t, isRange(s.RemoveAt(0)))
	assert.True(t, isRange(s.Put(-1, 1)))
	assert.True(t, isRange(s.Put(1, 1)))
	assert.NoError(t, s.Put(0, 1))

	s.Add(2)
	for _, i := range []int{-1, 2, 100} {
		_, err := s.At(i)
		assert.True(t, isRange(err), "at %d", i)
		assert.True(t, isRange(s.Set(i, 0)), "set %d", i)
		assert.True(t, isRange(s.RemoveAt(i)), "removeAt %d", i)
	}
	assert.True(t, isRange(s.Put(3, 3)))
	assert.NoError(t, s.Put(2, 3))
	assert.Equal(t, []int{1, 2, 3}, Contents(t, s))
}

func testRemoveFirstDuplicate(t *testing.T, newSeq Factory) {
	s := newSeq()
	for _, v := range []int{7, 1, 7, 2, 7} {
		s.Add(v)
	}
	assert.True(t, s.Remove(7))
	assert.Equal(t, []int{1, 7, 2, 7}, Contents(t, s))
	assert.False(t, s.Remove(3))
	assert.Equal(t, []int{1, 7, 2, 7}, Contents(t, s))
	assert.True(t, s.Remove(7))
	assert.True(t, s.Remove(7))
	assert.False(t, s.Remove(7))
	assert.Equal(t, []int{1, 2}, Contents(t, s))
}

func testAtIsMutable(t *testing.T, newSeq Factory) {
	s := newSeq()
	s.Add(1)
	s.Add(2)
	p, err := s.At(1)
	require.NoError(t, err)
	*p = 20
	assert.Equal(t, []int{1, 20}, Contents(t, s))
	assert.True(t, s.Contains(20))
}

func testShift(t *testing.T, newSeq Factory) {
	const n = 20
	s := newSeq()
	var ref []int
	for i := range n {
		s.Add(i)
		ref = append(ref, i)
	}
	for _, i := range []int{0, 7, n / 2, n + 2, 1} {
		require.NoError(t, s.Put(i, -i))
		ref = slices.Insert(ref, i, -i)
		assert.Equal(t, ref, Contents(t, s))
	}
	for _, i := range []int{0, 5, 21, 11} {
		require.NoError(t, s.RemoveAt(i))
		ref = slices.Delete(ref, i, i+1)
		assert.Equal(t, ref, Contents(t, s))
	}
	assert.Equal(t, ref, slices.Collect(s.Values()))
}

func testClear(t *testing.T, newSeq Factory) {
	s := newSeq()
	for i := range 10 {
		s.Add(i)
	}
	s.Clear()
	assert.True(t, s.Empty())
	assert.False(t, s.Contains(3))
	s.Add(42)
	assert.Equal(t, []int{42}, Contents(t, s))
}

func testScenario(t *testing.T, newSeq Factory) {
	s := newSeq()
	s.Add(5)
	require.NoError(t, s.Put(0, 4))
	s.Add(7)
	require.NoError(t, s.Put(2, 6))
	assert.Equal(t, []int{4, 5, 6, 7}, Contents(t, s))
}

// testRemovedNotFound checks that slots vacated by shifting are never matched.
func testRemovedNotFound(t *testing.T, newSeq Factory) {
	s := newSeq()
	for _, v := range []int{1, 9, 13, 3, 1, 14} {
		s.Add(v)
	}
	require.NoError(t, s.RemoveAt(3))
	assert.Equal(t, []int{1, 9, 13, 1, 14}, Contents(t, s))
	assert.False(t, s.Contains(3))
	assert.False(t, s.Remove(3))

	assert.True(t, s.Remove(14))
	assert.False(t, s.Contains(14))
	assert.False(t, s.Remove(14))
	assert.Equal(t, []int{1, 9, 13, 1}, Contents(t, s))
}
