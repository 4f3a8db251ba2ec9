// Package heap implements a binary heap stored 1-indexed in a growable
// buffer: slot 0 is never used, the parent of i is i/2 and its children are
// 2i and 2i+1.
//
// The ordering relation is fixed at construction. before(a, b) reports
// whether a must end up above b; the item at the top is the one no other item
// is before.
package heap

import (
	"cmp"
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/ddirect/collection"
	"github.com/ddirect/collection/internal/bounds"
	"github.com/ddirect/collection/internal/growbuf"
	"github.com/ddirect/collection/internal/opts"
)

const DefaultInitialCapacity = 5

var _ collection.Queue[int] = (*Heap[int])(nil)

type Heap[T any] struct {
	buf    growbuf.Buffer[T]
	n      int
	before func(a, b T) bool
}

func New[T any](before func(a, b T) bool, options ...collection.Option) *Heap[T] {
	if before == nil {
		panic(errors.AssertionFailedf("heap: nil ordering relation"))
	}
	o := opts.Apply(DefaultInitialCapacity, options...)
	return &Heap[T]{
		buf:    growbuf.New[T](o.InitialCapacity + 1),
		before: before,
	}
}

// NewOrdered returns a min-heap: the smallest item is on top.
func NewOrdered[T cmp.Ordered](options ...collection.Option) *Heap[T] {
	return New(cmp.Less[T], options...)
}

// NewComparer orders the items by their Before method.
func NewComparer[T collection.Comparer[T]](options ...collection.Option) *Heap[T] {
	return New(func(a, b T) bool {
		return a.Before(b)
	}, options...)
}

func (h *Heap[T]) Size() int {
	return h.n
}

func (h *Heap[T]) Empty() bool {
	return h.n == 0
}

// Capacity is the number of items the heap holds without growing.
func (h *Heap[T]) Capacity() int {
	return max(h.buf.Cap()-1, 0)
}

func (h *Heap[T]) Add(x T) {
	// one more item plus the unused slot 0
	h.buf.Ensure(h.n + 2)
	h.n++
	h.buf.Slots()[h.n] = x
	h.up(h.n)
}

// Peek returns the top item. The pointer is invalidated by Add and Drop;
// changing the item through it must not change its position in the ordering.
func (h *Heap[T]) Peek() (*T, error) {
	if h.n == 0 {
		return nil, bounds.Empty("peek")
	}
	return &h.buf.Slots()[1], nil
}

// Drop removes the top item.
func (h *Heap[T]) Drop() error {
	if h.n == 0 {
		return bounds.Empty("drop")
	}
	h.drop()
	return nil
}

// Pop removes and returns the top item.
func (h *Heap[T]) Pop() (T, error) {
	if h.n == 0 {
		var zero T
		return zero, bounds.Empty("pop")
	}
	x := h.buf.Slots()[1]
	h.drop()
	return x, nil
}

// PopAll yields the items in order, removing each one as it goes.
func (h *Heap[T]) PopAll() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h.n > 0 {
			x := h.buf.Slots()[1]
			h.drop()
			if !yield(x) {
				return
			}
		}
	}
}

// Clone returns an independent copy using the same ordering relation.
func (h *Heap[T]) Clone() *Heap[T] {
	return &Heap[T]{
		buf:    h.buf.Clone(),
		n:      h.n,
		before: h.before,
	}
}

// Move returns a heap owning h's items. h keeps its ordering relation and is
// left empty with zero capacity.
func (h *Heap[T]) Move() *Heap[T] {
	m := &Heap[T]{
		buf:    h.buf.Take(),
		n:      h.n,
		before: h.before,
	}
	h.n = 0
	return m
}

// Clear empties the heap and keeps its capacity.
func (h *Heap[T]) Clear() {
	if h.buf.Cap() > 0 {
		h.buf.Zero(1, h.n+1)
	}
	h.n = 0
}

func (h *Heap[T]) drop() {
	s := h.buf.Slots()
	s[1] = s[h.n]
	h.buf.Zero(h.n, h.n+1)
	h.n--
	h.down(1)
}

func (h *Heap[T]) up(j int) {
	for j > 1 {
		i := j / 2 // parent
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *Heap[T]) down(i int) {
	for {
		j1 := 2 * i
		if j1 > h.n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 <= h.n && h.less(j2, j1) {
			j = j2 // right child
		}
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
}

func (h *Heap[T]) swap(i, j int) {
	s := h.buf.Slots()
	s[i], s[j] = s[j], s[i]
}

func (h *Heap[T]) less(i, j int) bool {
	s := h.buf.Slots()
	return h.before(s[i], s[j])
}
