package avl

const (
	defaultCapacity = 16
)

type options struct {
	// The number of nodes the arena is sized for up front. The default value is 16.
	// The arena still grows past it on demand.
	capacity int

	// Receives structural events such as rotations. Nothing is logged by default.
	logger Logger
}

func defaultOptions() *options {
	return &options{
		capacity: defaultCapacity,
		logger:   &nopLogger{},
	}
}

type Option interface {
	apply(*options)
}

type funcOption struct {
	fn func(*options)
}

func (funcOpt funcOption) apply(o *options) {
	funcOpt.fn(o)
}

func newFuncOption(fn func(*options)) *funcOption {
	return &funcOption{
		fn: fn,
	}
}

// WithCapacity set the number of nodes to allocate room for. Negative
// values are ignored.
func WithCapacity(capacity int) Option {
	return newFuncOption(func(o *options) {
		if capacity < 0 {
			return
		}
		o.capacity = capacity
	})
}

// WithLogger set the logger for structural events, nil disables logging.
func WithLogger(logger Logger) Option {
	return newFuncOption(func(o *options) {
		if logger == nil {
			logger = &nopLogger{}
		}
		o.logger = logger
	})
}
