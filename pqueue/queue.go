// Package pqueue exposes heap ordering through collection.Queue.
package pqueue

import (
	"cmp"
	"iter"

	"github.com/ddirect/collection"
	"github.com/ddirect/collection/heap"
)

var _ collection.Queue[int] = (*Queue[int])(nil)

type Queue[T any] struct {
	h *heap.Heap[T]
}

// New returns a queue handing out first the item no other item is before.
func New[T any](before func(a, b T) bool, options ...collection.Option) *Queue[T] {
	return &Queue[T]{heap.New(before, options...)}
}

// NewOrdered returns a queue handing out the smallest item first.
func NewOrdered[T cmp.Ordered](options ...collection.Option) *Queue[T] {
	return &Queue[T]{heap.NewOrdered[T](options...)}
}

func NewComparer[T collection.Comparer[T]](options ...collection.Option) *Queue[T] {
	return &Queue[T]{heap.NewComparer[T](options...)}
}

func (q *Queue[T]) Add(item T) {
	q.h.Add(item)
}

func (q *Queue[T]) Peek() (*T, error) {
	return q.h.Peek()
}

func (q *Queue[T]) Drop() error {
	return q.h.Drop()
}

func (q *Queue[T]) Pop() (T, error) {
	return q.h.Pop()
}

func (q *Queue[T]) Size() int {
	return q.h.Size()
}

func (q *Queue[T]) Empty() bool {
	return q.h.Empty()
}

// Drain yields the items in priority order, removing each one as it goes.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return q.h.PopAll()
}

func (q *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{q.h.Clone()}
}

// Move returns a queue owning q's items; q is left empty and usable.
func (q *Queue[T]) Move() *Queue[T] {
	return &Queue[T]{q.h.Move()}
}
