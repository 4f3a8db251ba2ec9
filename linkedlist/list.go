// Package linkedlist implements collection.Sequence as a doubly linked chain.
//
// The nodes live in an arena owned by the list and refer to their neighbours
// by position, so the whole chain is released, cloned or moved together with
// the arena. Released slots are kept on a free list and handed out again
// before the arena grows. Inserting or removing at either end is O(1);
// positional access walks from the nearer end.
package linkedlist

import (
	"iter"

	"github.com/ddirect/collection"
	"github.com/ddirect/collection/internal/bounds"
	"github.com/ddirect/collection/internal/growbuf"
	"github.com/ddirect/collection/internal/opts"
)

var _ collection.Sequence[int] = (*List[int])(nil)

type List[T comparable] struct {
	nodes  growbuf.Buffer[node[T]]
	used   int // arena slots handed out at least once
	freeP1 int
	headP1 int
	tailP1 int
	n      int
}

func New[T comparable](options ...collection.Option) *List[T] {
	o := opts.Apply(0, options...)
	return &List[T]{
		nodes: growbuf.New[node[T]](o.InitialCapacity),
	}
}

func (l *List[T]) Size() int {
	return l.n
}

func (l *List[T]) Empty() bool {
	return l.n == 0
}

func (l *List[T]) Add(item T) {
	l.AddLast(item)
}

func (l *List[T]) AddFirst(item T) {
	i := l.alloc()
	s := l.nodes.Slots()
	s[i] = node[T]{value: item, nextP1: l.headP1}
	if l.headP1 != 0 {
		s[l.headP1-1].prevP1 = i + 1
	} else {
		l.tailP1 = i + 1
	}
	l.headP1 = i + 1
	l.n++
}

func (l *List[T]) AddLast(item T) {
	i := l.alloc()
	s := l.nodes.Slots()
	s[i] = node[T]{value: item, prevP1: l.tailP1}
	if l.tailP1 != 0 {
		s[l.tailP1-1].nextP1 = i + 1
	} else {
		l.headP1 = i + 1
	}
	l.tailP1 = i + 1
	l.n++
}

func (l *List[T]) Put(index int, item T) error {
	if err := bounds.CheckInsert(index, l.n); err != nil {
		return err
	}
	switch index {
	case 0:
		l.AddFirst(item)
	case l.n:
		l.AddLast(item)
	default:
		l.insertBefore(l.locate(index), item)
	}
	return nil
}

func (l *List[T]) Set(index int, item T) error {
	if err := bounds.Check(index, l.n); err != nil {
		return err
	}
	l.nodes.Slots()[l.locate(index)].value = item
	return nil
}

func (l *List[T]) Remove(item T) bool {
	i := l.find(item)
	if i < 0 {
		return false
	}
	l.unlink(i)
	return true
}

func (l *List[T]) RemoveAt(index int) error {
	if err := bounds.Check(index, l.n); err != nil {
		return err
	}
	l.unlink(l.locate(index))
	return nil
}

func (l *List[T]) RemoveFirst() error {
	if l.n == 0 {
		return bounds.Empty("remove first")
	}
	l.unlink(l.headP1 - 1)
	return nil
}

func (l *List[T]) RemoveLast() error {
	if l.n == 0 {
		return bounds.Empty("remove last")
	}
	l.unlink(l.tailP1 - 1)
	return nil
}

// PopFirst removes the first item and returns it.
func (l *List[T]) PopFirst() (T, error) {
	if l.n == 0 {
		var zero T
		return zero, bounds.Empty("pop first")
	}
	i := l.headP1 - 1
	t := l.nodes.Slots()[i].value
	l.unlink(i)
	return t, nil
}

func (l *List[T]) At(index int) (*T, error) {
	if err := bounds.Check(index, l.n); err != nil {
		return nil, err
	}
	return &l.nodes.Slots()[l.locate(index)].value, nil
}

func (l *List[T]) First() (*T, error) {
	if l.n == 0 {
		return nil, bounds.Empty("first")
	}
	return &l.nodes.Slots()[l.headP1-1].value, nil
}

func (l *List[T]) Last() (*T, error) {
	if l.n == 0 {
		return nil, bounds.Empty("last")
	}
	return &l.nodes.Slots()[l.tailP1-1].value, nil
}

func (l *List[T]) Contains(item T) bool {
	return l.find(item) >= 0
}

func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p1 := l.headP1; p1 != 0; {
			nd := &l.nodes.Slots()[p1-1]
			if !yield(nd.value) {
				return
			}
			p1 = nd.nextP1
		}
	}
}

// Backward yields the items from last to first.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p1 := l.tailP1; p1 != 0; {
			nd := &l.nodes.Slots()[p1-1]
			if !yield(nd.value) {
				return
			}
			p1 = nd.prevP1
		}
	}
}

// Clear drops every node and keeps the arena for reuse.
func (l *List[T]) Clear() {
	l.nodes.Zero(0, l.used)
	l.used = 0
	l.freeP1 = 0
	l.headP1 = 0
	l.tailP1 = 0
	l.n = 0
}

// Clone returns a deep copy. The copy shares no node with l.
func (l *List[T]) Clone() *List[T] {
	c := *l
	c.nodes = l.nodes.Clone()
	return &c
}

// Move returns a list owning the whole chain of l. l is left empty with no
// arena and can be reused.
func (l *List[T]) Move() *List[T] {
	m := *l
	m.nodes = l.nodes.Take()
	*l = List[T]{}
	return &m
}

// locate returns the arena slot of the node at index, which must be in range.
func (l *List[T]) locate(index int) int {
	s := l.nodes.Slots()
	if index < l.n/2 {
		p1 := l.headP1
		for range index {
			p1 = s[p1-1].nextP1
		}
		return p1 - 1
	}
	p1 := l.tailP1
	for range l.n - 1 - index {
		p1 = s[p1-1].prevP1
	}
	return p1 - 1
}

func (l *List[T]) find(item T) int {
	s := l.nodes.Slots()
	for p1 := l.headP1; p1 != 0; p1 = s[p1-1].nextP1 {
		if s[p1-1].value == item {
			return p1 - 1
		}
	}
	return -1
}

// insertBefore splices a new node in front of the interior slot at.
func (l *List[T]) insertBefore(at int, item T) {
	i := l.alloc()
	s := l.nodes.Slots()
	prevP1 := s[at].prevP1
	s[i] = node[T]{value: item, prevP1: prevP1, nextP1: at + 1}
	s[prevP1-1].nextP1 = i + 1
	s[at].prevP1 = i + 1
	l.n++
}

func (l *List[T]) unlink(i int) {
	s := l.nodes.Slots()
	prevP1, nextP1 := s[i].prevP1, s[i].nextP1
	if prevP1 == 0 {
		l.headP1 = nextP1
	} else {
		s[prevP1-1].nextP1 = nextP1
	}
	if nextP1 == 0 {
		l.tailP1 = prevP1
	} else {
		s[nextP1-1].prevP1 = prevP1
	}
	l.release(i)
	l.n--
}

func (l *List[T]) alloc() int {
	if l.freeP1 != 0 {
		i := l.freeP1 - 1
		l.freeP1 = l.nodes.Slots()[i].nextP1
		return i
	}
	l.nodes.Ensure(l.used + 1)
	i := l.used
	l.used++
	return i
}

func (l *List[T]) release(i int) {
	l.nodes.Slots()[i] = node[T]{nextP1: l.freeP1}
	l.freeP1 = i + 1
}
