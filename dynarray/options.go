package dynarray

// DefaultGrowthFactor is the capacity multiplier applied when Add finds
// the buffer full.
const DefaultGrowthFactor = 2

const (
	panicCapacityInvalid = "dynarray: New: capacity must be > 0"
	panicGrowthInvalid   = "dynarray: WithGrowthFactor: factor must be >= 2"
)

// Option configures an Array at construction.
type Option func(*options)

type options struct {
	growth int
}

// WithGrowthFactor sets the capacity multiplier used on overflow.
// Panics if factor < 2.
func WithGrowthFactor(factor int) Option {
	if factor < 2 {
		panic(panicGrowthInvalid)
	}

	return func(o *options) { o.growth = factor }
}

func gatherOptions(opts []Option) options {
	o := options{growth: DefaultGrowthFactor}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
