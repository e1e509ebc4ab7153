package graphgen

import "math/rand"

// config aggregates the knobs Generate resolves from Option values.
type config struct {
	rng      *rand.Rand
	weightFn func(*rand.Rand, int64) int64
	directed bool
}

func defaultWeightFn(r *rand.Rand, maxWeight int64) int64 {
	if maxWeight == 0 {
		return 0
	}
	return r.Int63n(maxWeight + 1)
}

func newConfig(opts ...Option) config {
	cfg := config{
		rng:      nil,
		weightFn: defaultWeightFn,
		directed: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option customizes a Generate call.
type Option func(*config)

// WithRand supplies an explicit RNG, for callers that already own one or
// need draws interleaved with other randomness. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("graphgen: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a new *rand.Rand from seed, for deterministic, repeatable
// graphs in tests and benchmarks.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight draw. fn receives the RNG in
// use and the caller's maxWeight bound; it must return a value in
// [0, maxWeight] to keep Generate's output consistent with its contract.
// Panics on nil.
func WithWeightFn(fn func(r *rand.Rand, maxWeight int64) int64) Option {
	if fn == nil {
		panic("graphgen: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn = fn }
}

// WithUndirected makes Generate mirror every sampled arc, so the result is
// symmetric (u->v implies v->u at the same weight). Default is directed,
// matching the reference generator this package is grounded on.
func WithUndirected() Option {
	return func(c *config) { c.directed = false }
}
