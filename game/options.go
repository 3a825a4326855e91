package game

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/setgame/internal/randutil"
)

// Option configures a Game during creation.
type Option func(*options)

type options struct {
	rng    *rand.Rand
	logger *log.Logger
}

// WithRNG shuffles the deck with rng.
func WithRNG(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed shuffles the deck with a deterministic RNG built from seed.
func WithSeed(seed int64) Option {
	return WithRNG(randutil.New(seed))
}

// WithLogger sets the logger used for debug events. By default nothing is
// logged.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = randutil.New(randutil.NewSeed())
	}
	if o.logger == nil {
		o.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return o
}
