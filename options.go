package neighborgo

type options struct {
	skin            float64
	sorted          bool
	selfInteraction bool
	bothways        bool
	workers         int
	logger          *Logger
	metrics         MetricsCollector
}

// Option configures NeighborList construction.
type Option func(*options)

// WithSkin sets the skin margin added to every cutoff radius. As long as no
// particle has moved farther than skin since the last build, Update reuses
// the cached list. Larger skins mean fewer rebuilds but more pairs beyond
// the nominal cutoff. Default: 0.3.
func WithSkin(skin float64) Option {
	return func(o *options) {
		o.skin = skin
	}
}

// WithSorted controls whether the stored pair list is fully sorted by
// (first, second) index instead of by first index only. Default: false.
func WithSorted(sorted bool) Option {
	return func(o *options) {
		o.sorted = sorted
	}
}

// WithSelfInteraction controls whether a particle appears as its own
// zero-shift neighbor. Periodic self images are unaffected. Default: true.
func WithSelfInteraction(selfInteraction bool) Option {
	return func(o *options) {
		o.selfInteraction = selfInteraction
	}
}

// WithBothways controls whether the full symmetric list is stored. By
// default only half of the neighbors are kept: if b is listed for a, a is
// not listed for b, and callers symmetrize manually.
func WithBothways(bothways bool) Option {
	return func(o *options) {
		o.bothways = bothways
	}
}

// WithWorkers sets the number of goroutines used by the enumerator's bin
// search. The result is identical for any value. Default: 1.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithLogger configures structured logging for build/update decisions.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// rebuild behavior.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		skin:            0.3,
		selfInteraction: true,
		workers:         1,
		logger:          NoopLogger(),
		metrics:         NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers < 1 {
		o.workers = 1
	}
	return o
}
