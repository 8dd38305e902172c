package fn

import "go.uber.org/zap"

type config struct {
	logger     *zap.Logger
	collector  *Collector
	maxEntries uint32
}

// Option configures a combinator instance at construction time.
type Option func(*config)

func newConfig(opts []Option) config {
	conf := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&conf)
	}
	return conf
}

// WithLogger attaches a zap logger; instances log at debug level with their
// instance id as a field. Default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithCollector attaches a metrics collector shared across instances.
func WithCollector(collector *Collector) Option {
	return func(c *config) { c.collector = collector }
}

// WithMaxEntries bounds a memoizer's cache. Once max entries are live the
// cache rotates: the current generation becomes a read-only fallback and a
// fresh generation takes writes, so entries survive at most two rotations.
// Zero (the default) means the cache grows without bound and never evicts.
func WithMaxEntries(max uint32) Option {
	return func(c *config) { c.maxEntries = max }
}
