package collection

import "github.com/cockroachdb/errors"

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmpty           = errors.New("container is empty")
)
