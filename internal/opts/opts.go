// Package opts holds the construction settings shared by every container.
package opts

import "github.com/cockroachdb/errors"

type Options struct {
	InitialCapacity int
}

type Option func(*Options)

// Apply applies opts over the given default capacity.
func Apply(defaultCapacity int, opts ...Option) Options {
	o := Options{InitialCapacity: defaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.InitialCapacity < 0 {
		panic(errors.Newf("collection: invalid initial capacity %d", o.InitialCapacity))
	}
	return o
}
