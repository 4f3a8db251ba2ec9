package linkedlist

// node links are indexes into the arena plus one: zero means no neighbour.
// Free slots are chained through nextP1.
type node[T any] struct {
	value  T
	prevP1 int
	nextP1 int
}
