package vec

import "log/slog"

// options holds the configuration of a Buffer.
type options struct {
	allocator Allocator
	logger    *slog.Logger
}

// Option is a functional option for configuring a Buffer or Vec.
type Option func(*options)

// WithAllocator sets the allocator that backs the buffer.
// If allocator is nil, HeapAllocator is used.
func WithAllocator(allocator Allocator) Option {
	return func(opts *options) {
		opts.allocator = allocator
	}
}

// WithLogger configures the buffer with a logger for growth events.
// If logger is nil, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func defaultOptions() *options {
	return &options{
		allocator: HeapAllocator{},
		logger:    nil, // No default logger
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.allocator == nil {
		o.allocator = HeapAllocator{}
	}
	return o
}
