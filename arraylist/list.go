// Package arraylist implements collection.Sequence over a contiguous buffer.
// Random access is O(1); inserting or removing away from the end shifts the
// following items.
package arraylist

import (
	"iter"

	"github.com/ddirect/collection"
	"github.com/ddirect/collection/internal/bounds"
	"github.com/ddirect/collection/internal/growbuf"
	"github.com/ddirect/collection/internal/opts"
)

const DefaultInitialCapacity = 5

var _ collection.Sequence[int] = (*List[int])(nil)

type List[T comparable] struct {
	buf growbuf.Buffer[T]
	n   int
}

func New[T comparable](options ...collection.Option) *List[T] {
	o := opts.Apply(DefaultInitialCapacity, options...)
	return &List[T]{
		buf: growbuf.New[T](o.InitialCapacity),
	}
}

func (l *List[T]) Size() int {
	return l.n
}

func (l *List[T]) Empty() bool {
	return l.n == 0
}

func (l *List[T]) Capacity() int {
	return l.buf.Cap()
}

func (l *List[T]) Add(item T) {
	l.buf.Ensure(l.n + 1)
	l.buf.Slots()[l.n] = item
	l.n++
}

func (l *List[T]) Put(index int, item T) error {
	if err := bounds.CheckInsert(index, l.n); err != nil {
		return err
	}
	l.buf.Ensure(l.n + 1)
	s := l.buf.Slots()
	copy(s[index+1:l.n+1], s[index:l.n])
	s[index] = item
	l.n++
	return nil
}

func (l *List[T]) Set(index int, item T) error {
	if err := bounds.Check(index, l.n); err != nil {
		return err
	}
	l.buf.Slots()[index] = item
	return nil
}

func (l *List[T]) Remove(item T) bool {
	i := l.find(item)
	if i < 0 {
		return false
	}
	l.removeAt(i)
	return true
}

func (l *List[T]) RemoveAt(index int) error {
	if err := bounds.Check(index, l.n); err != nil {
		return err
	}
	l.removeAt(index)
	return nil
}

func (l *List[T]) At(index int) (*T, error) {
	if err := bounds.Check(index, l.n); err != nil {
		return nil, err
	}
	return &l.buf.Slots()[index], nil
}

func (l *List[T]) Contains(item T) bool {
	return l.find(item) >= 0
}

func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range l.n {
			if !yield(l.buf.Slots()[i]) {
				return
			}
		}
	}
}

// Clear empties the list and keeps its capacity.
func (l *List[T]) Clear() {
	l.buf.Zero(0, l.n)
	l.n = 0
}

// Clone returns a deep copy with the same capacity.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{
		buf: l.buf.Clone(),
		n:   l.n,
	}
}

// Move returns a list owning l's items. l is left empty with zero capacity
// and can be reused.
func (l *List[T]) Move() *List[T] {
	m := &List[T]{
		buf: l.buf.Take(),
		n:   l.n,
	}
	l.n = 0
	return m
}

func (l *List[T]) find(item T) int {
	s := l.buf.Slots()
	for i := range l.n {
		if s[i] == item {
			return i
		}
	}
	return -1
}

func (l *List[T]) removeAt(index int) {
	s := l.buf.Slots()
	copy(s[index:l.n-1], s[index+1:l.n])
	l.n--
	l.buf.Zero(l.n, l.n+1)
}
