// Package bounds builds the errors containers return for bad positions and
// empty reads.
package bounds

import (
	"github.com/cockroachdb/errors"
	"github.com/ddirect/collection"
)

// Index reports index as outside of a container holding size items.
func Index(index, size int) error {
	return errors.Wrapf(collection.ErrIndexOutOfRange, "index %d, size %d", index, size)
}

// Check fails unless 0 <= index < size.
func Check(index, size int) error {
	if index < 0 || index >= size {
		return Index(index, size)
	}
	return nil
}

// CheckInsert fails unless 0 <= index <= size: inserting at the end is legal.
func CheckInsert(index, size int) error {
	if index < 0 || index > size {
		return Index(index, size)
	}
	return nil
}

func Empty(op string) error {
	return errors.Wrapf(collection.ErrEmpty, "%s", op)
}
