package selectors

import (
	"github.com/google/uuid"
)

// Factory builds selectors with a pre-bound cache policy. The zero-config
// factory behind the package-level Compose uses memo.Single on both
// tiers; NewFactory exists so a host can pin a different policy once and
// construct many selectors against it.
type Factory struct {
	cfg config
}

// NewFactory returns a Factory whose defaults are the package defaults
// overridden by opts. Every Compose call on the factory may override them
// again for that one selector.
func NewFactory(opts ...Option) *Factory {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Factory{cfg: cfg}
}

// Compose builds a selector from extractors and a trailing combiner,
// accepted either variadically or with the extractors gathered in a
// sequence as the first element. Option values may trail the combiner.
// Validation is fatal here, at construction time; no selector is produced
// on error.
func (f *Factory) Compose(args ...any) (*Selector, error) {
	cfg := f.cfg
	rest := make([]any, 0, len(args))
	for _, arg := range args {
		if opt, ok := arg.(Option); ok {
			opt(&cfg)
			continue
		}
		rest = append(rest, arg)
	}
	deps, combine, err := resolve(rest)
	if err != nil {
		return nil, err
	}
	return build(deps, combine, cfg), nil
}

// MustCompose is the panic-on-failure variant of Compose.
func (f *Factory) MustCompose(args ...any) *Selector {
	sel, err := f.Compose(args...)
	if err != nil {
		panic(err)
	}
	return sel
}

func build(deps []Extractor, combine Combiner, cfg config) *Selector {
	s := &Selector{
		id:         uuid.New().String(),
		deps:       deps,
		resultFunc: combine,
		checks:     newDiagnostics(cfg),
	}
	counted := func(results ...any) (any, error) {
		s.recomputations++
		res, err := combine(results...)
		if err != nil {
			return nil, err
		}
		s.lastResult = res
		return res, nil
	}
	s.memoizedResult = cfg.memoize(counted, cfg.memoizeOpts...)
	s.memoizedArgs = cfg.argsMemoize(s.rawBody, cfg.argsMemoizeOpts...)
	return s
}

var defaultFactory = NewFactory()

// Compose builds a selector with the default cache policy, memo.Single on
// both tiers. See (*Factory).Compose.
func Compose(args ...any) (*Selector, error) {
	return defaultFactory.Compose(args...)
}

// MustCompose is the panic-on-failure variant of Compose.
func MustCompose(args ...any) *Selector {
	return defaultFactory.MustCompose(args...)
}
