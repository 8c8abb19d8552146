package connindex

// DEFAULTS - single source of truth for Store construction.
const (
	// DefaultMaxStops is the highest supported stop count (0 = direct).
	DefaultMaxStops = 2

	// DefaultMaxDays is the supported horizon, in days, from a Store's
	// start date.
	DefaultMaxDays = 360
)

// config holds the resolved construction parameters for a Store.
type config struct {
	maxStops int
	maxDays  int
}

// Option configures a Store at construction time.
type Option func(*config)

// WithMaxStops overrides DefaultMaxStops. maxStops must be >= 0; a
// negative override is ignored.
func WithMaxStops(maxStops int) Option {
	return func(c *config) {
		if maxStops >= 0 {
			c.maxStops = maxStops
		}
	}
}

// WithMaxDays overrides DefaultMaxDays. maxDays must be > 0; a
// non-positive override is ignored.
func WithMaxDays(maxDays int) Option {
	return func(c *config) {
		if maxDays > 0 {
			c.maxDays = maxDays
		}
	}
}

// newConfig resolves opts against the documented defaults.
func newConfig(opts ...Option) config {
	c := config{
		maxStops: DefaultMaxStops,
		maxDays:  DefaultMaxDays,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
