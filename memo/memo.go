package memo

// Fn is the uniform shape of every function a Memoizer can wrap.
// Arguments and the result travel as `any`; typed fronts are expected to
// live one layer above (see the selectors package).
type Fn func(args ...any) (any, error)

// Equality decides whether a newly observed value can be served by the
// cache entry produced for a previous one. The new value comes first so
// custom predicates can diff against the last-known-good value and stop
// on the first mismatch.
type Equality func(next, prev any) bool

// Memoized is a wrapped function together with its cache.
// Call behaves observably like the wrapped Fn but may skip invoking it.
// Clear drops the cache contents without touching the wrapped Fn.
type Memoized interface {
	Call(args ...any) (any, error)
	Clear()
}

// Memoizer is the capability the selector engine depends on: wrap a Fn,
// get back a Memoized. Implementations decide their own caching policy;
// the engine never looks behind this seam.
type Memoizer func(fn Fn, opts ...Option) Memoized

type config struct {
	equals Equality
}

// Option configures a single Wrap call.
type Option func(*config)

// WithEquality replaces the default Identical predicate.
// The predicate must be an equivalence relation for the cache to stay
// coherent; this is not verified.
func WithEquality(eq Equality) Option {
	return func(c *config) {
		c.equals = eq
	}
}

func newConfig(opts ...Option) config {
	cfg := config{equals: Identical}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
