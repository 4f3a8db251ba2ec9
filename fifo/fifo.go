// Package fifo implements collection.Queue in insertion order on top of a
// linked list.
package fifo

import (
	"iter"

	"github.com/ddirect/collection"
	"github.com/ddirect/collection/internal/bounds"
	"github.com/ddirect/collection/linkedlist"
)

var _ collection.Queue[int] = (*Fifo[int])(nil)

// Fifo stores its items in a linkedlist.List, hence T comparable even though
// it never compares them.
type Fifo[T comparable] struct {
	l *linkedlist.List[T]
}

func New[T comparable](options ...collection.Option) *Fifo[T] {
	return &Fifo[T]{linkedlist.New[T](options...)}
}

func (f *Fifo[T]) Add(t T) {
	f.l.AddLast(t)
}

func (f *Fifo[T]) Peek() (*T, error) {
	t, err := f.l.First()
	if err != nil {
		return nil, bounds.Empty("peek")
	}
	return t, nil
}

func (f *Fifo[T]) Drop() error {
	if f.l.Empty() {
		return bounds.Empty("drop")
	}
	return f.l.RemoveFirst()
}

func (f *Fifo[T]) Dequeue() (T, bool) {
	t, err := f.l.PopFirst()
	return t, err == nil
}

func (f *Fifo[T]) Size() int {
	return f.l.Size()
}

func (f *Fifo[T]) Empty() bool {
	return f.l.Empty()
}

// Drain yields the items in insertion order, removing each one as it goes.
func (f *Fifo[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			t, ok := f.Dequeue()
			if !ok || !yield(t) {
				return
			}
		}
	}
}
