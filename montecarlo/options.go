package montecarlo

import (
	"math/rand/v2"

	"go.uber.org/zap"
)

// Option configures an Engine. Option constructors panic on meaningless
// values; New never does.
type Option func(*engineConfig)

type engineConfig struct {
	params    Params
	rng       *rand.Rand
	workers   int
	logger    *zap.Logger
	retention int
}

func newEngineConfig(opts ...Option) engineConfig {
	cfg := engineConfig{
		params:  Defaults(),
		workers: 1,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return cfg
}

// WithParams sets the rule parameters used by the Simulate helpers.
func WithParams(p Params) Option {
	return func(c *engineConfig) { c.params = p }
}

// WithSeed makes the engine's random source deterministic.
func WithSeed(seed uint64) Option {
	return func(c *engineConfig) { c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithRand hands the engine an explicit random source. The engine becomes
// its only user. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("montecarlo: WithRand(nil)")
	}
	return func(c *engineConfig) { c.rng = r }
}

// WithWorkers sets how many goroutines evaluate a step. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("montecarlo: WithWorkers(n<1)")
	}
	return func(c *engineConfig) { c.workers = n }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("montecarlo: WithLogger(nil)")
	}
	return func(c *engineConfig) { c.logger = l }
}

// WithRetention keeps only the newest n snapshots. Time indices stay
// absolute; older ones become unavailable. Panics if n < 1.
func WithRetention(n int) Option {
	if n < 1 {
		panic("montecarlo: WithRetention(n<1)")
	}
	return func(c *engineConfig) { c.retention = n }
}
