package collection

import "github.com/ddirect/collection/internal/opts"

type Option = opts.Option

// WithInitialCapacity sets the number of slots allocated at construction.
// Zero is allowed; the storage then grows on first use.
func WithInitialCapacity(n int) Option {
	return func(o *opts.Options) {
		o.InitialCapacity = n
	}
}
