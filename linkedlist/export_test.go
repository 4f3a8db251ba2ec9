package linkedlist

import "fmt"

func (l *List[T]) ArenaCap() int {
	return l.nodes.Cap()
}

// CheckLinks walks the chain both ways and verifies every back link.
func (l *List[T]) CheckLinks() error {
	s := l.nodes.Slots()
	count := 0
	prevP1 := 0
	for p1 := l.headP1; p1 != 0; p1 = s[p1-1].nextP1 {
		if s[p1-1].prevP1 != prevP1 {
			return fmt.Errorf("slot %d: previous link %d, expected %d", p1-1, s[p1-1].prevP1, prevP1)
		}
		prevP1 = p1
		count++
		if count > l.n {
			return fmt.Errorf("chain longer than size %d", l.n)
		}
	}
	if prevP1 != l.tailP1 {
		return fmt.Errorf("chain ends at %d, tail is %d", prevP1, l.tailP1)
	}
	if count != l.n {
		return fmt.Errorf("chain holds %d nodes, size is %d", count, l.n)
	}
	return nil
}
