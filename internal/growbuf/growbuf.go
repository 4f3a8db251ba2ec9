// Package growbuf owns a contiguous buffer whose capacity only grows, by
// doubling until a requirement fits.
package growbuf

import "math"

// Buffer keeps every allocated slot addressable: len(s) is the capacity.
type Buffer[T any] struct {
	s []T
}

func New[T any](capacity int) Buffer[T] {
	return Buffer[T]{s: make([]T, capacity)}
}

func (b *Buffer[T]) Cap() int {
	return len(b.s)
}

// Slots returns the whole buffer. The slice is invalidated by Ensure.
func (b *Buffer[T]) Slots() []T {
	return b.s
}

// Target returns the capacity Ensure would settle on: current doubled until
// it is at least required.
func Target(current, required int) int {
	if required <= current {
		return current
	}
	if current == 0 {
		return required
	}
	target := current
	for target < required {
		if target > math.MaxInt/2 {
			return required
		}
		target *= 2
	}
	return target
}

// Ensure guarantees Cap() >= required. Existing slots keep their position.
func (b *Buffer[T]) Ensure(required int) {
	target := Target(len(b.s), required)
	if target == len(b.s) {
		return
	}
	resized := make([]T, target)
	copy(resized, b.s)
	b.s = resized
}

// Clone returns an independent copy with the same capacity.
func (b *Buffer[T]) Clone() Buffer[T] {
	return Buffer[T]{s: append(make([]T, 0, len(b.s)), b.s...)}
}

// Take hands the storage over to the returned buffer and leaves b with zero capacity.
func (b *Buffer[T]) Take() Buffer[T] {
	t := Buffer[T]{s: b.s}
	b.s = nil
	return t
}

// Zero releases the values held in [from, to).
func (b *Buffer[T]) Zero(from, to int) {
	clear(b.s[from:to])
}
