package generate

import (
	"math/rand/v2"
)

// Option customizes a generator call.
type Option func(*config)

type config struct {
	rng         *rand.Rand
	undirected  bool
	maxAttempts int // 0 means unbounded
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return c
}

// WithRand uses r for every random draw. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed uses a PCG source seeded with seed, making output reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// WithUndirected makes the generated graph undirected. [StrangersBanquet]
// is always undirected and ignores it.
func WithUndirected() Option {
	return func(c *config) { c.undirected = true }
}

// WithMaxAttempts bounds the number of samples drawn by the rejection
// samplers ([Random], [StrangersBanquet]). When the bound is hit the partial
// graph is returned together with [ErrNotConverged]. Panics on n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("generate: WithMaxAttempts(n<1)")
	}
	return func(c *config) { c.maxAttempts = n }
}

// exhausted reports whether attempt (1-based) exceeds the configured bound.
func (c config) exhausted(attempt int) bool {
	return c.maxAttempts > 0 && attempt > c.maxAttempts
}
