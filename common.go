package collection

import "iter"

type Comparer[T any] interface {
	Before(T) bool
}

// Sequence is an index-addressable ordered container. Positions are zero based.
// Pointers returned by At are invalidated by any later mutation of the sequence.
type Sequence[T comparable] interface {
	Add(item T)
	Put(index int, item T) error
	Set(index int, item T) error
	Remove(item T) bool
	RemoveAt(index int) error
	At(index int) (*T, error)
	Contains(item T) bool
	Size() int
	Empty() bool
	Values() iter.Seq[T]
	Clear()
}

// Queue hands out items one at a time from its front. Peek and Drop fail
// with ErrEmpty when there is nothing to hand out.
type Queue[T any] interface {
	Add(item T)
	Peek() (*T, error)
	Drop() error
	Size() int
	Empty() bool
}
