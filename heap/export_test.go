package heap

import "fmt"

// CheckHeap verifies that no item is before its parent.
func (h *Heap[T]) CheckHeap() error {
	for i := 2; i <= h.n; i++ {
		if h.less(i, i/2) {
			return fmt.Errorf("slot %d is before its parent %d", i, i/2)
		}
	}
	return nil
}
