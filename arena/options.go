package arena

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option is an arena configuration option.
type Option interface {
	apply(*arenaOptions)
}

type arenaOptions struct {
	logger   logrus.FieldLogger
	capacity int
}

func newDefaultArenaOptions() arenaOptions {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return arenaOptions{
		logger:   l,
		capacity: 0,
	}
}

// WithCapacity option preallocates room for capacity slots.
//
// The zero value allocates lazily.
func WithCapacity(capacity int) Option {
	return funcOption(func(opts *arenaOptions) {
		if capacity < 0 {
			panic("arena: negative capacity")
		}
		opts.capacity = capacity
	})
}

// WithLogger option configures the logger for slot table events.
// Entries are emitted at debug level.
//
// The nil value discards all entries.
func WithLogger(logger logrus.FieldLogger) Option {
	return funcOption(func(opts *arenaOptions) {
		if logger != nil {
			opts.logger = logger
		}
	})
}

type funcOption func(*arenaOptions)

func (o funcOption) apply(opts *arenaOptions) {
	o(opts)
}
