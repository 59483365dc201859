package selectors

import (
	"go.uber.org/zap"

	"github.com/on-the-ground/select_ive_go/memo"
)

// diagnostics are the development-mode consistency checks. They observe a
// call, never participate in it: no cache slot, counter or returned
// result changes because a check ran, and a failing check degrades to a
// warning at worst.
type diagnostics struct {
	memoize       memo.Memoizer
	memoizeOpts   []memo.Option
	stability     CheckFrequency
	identity      CheckFrequency
	logger        *zap.Logger
	stabilityDone bool
	identityDone  bool
}

func newDiagnostics(cfg config) diagnostics {
	return diagnostics{
		memoize:     cfg.memoize,
		memoizeOpts: cfg.memoizeOpts,
		stability:   cfg.stabilityCheck,
		identity:    cfg.identityCheck,
		logger:      cfg.logger,
	}
}

func (d *diagnostics) run(s *Selector, state any, params, results []any) {
	logger := d.sink()
	if logger == nil {
		return
	}
	if due(d.stability, &d.stabilityDone) {
		d.checkStability(s, logger, state, params, results)
	}
	if due(d.identity, &d.identityDone) {
		checkIdentity(s, logger)
	}
}

func (d *diagnostics) sink() *zap.Logger {
	if d.logger != nil {
		return d.logger
	}
	return warnLogger.Load()
}

func due(freq CheckFrequency, done *bool) bool {
	switch freq {
	case CheckAlways:
		return true
	case CheckOnce:
		if *done {
			return false
		}
		*done = true
		return true
	}
	return false
}

// checkStability re-invokes every extractor with the same arguments and
// compares the two result sequences under the result-tier memoizer's own
// equality semantics: both sequences go through a throwaway memoized
// identity function, and if the second pass comes back as a fresh
// reference the extractors defeated the result-tier cache.
// The second pass runs extractors the engine would not otherwise run;
// if one of them panics, impure exactly as this check suspects, the
// panic stays inside the check.
func (d *diagnostics) checkStability(s *Selector, logger *zap.Logger, state any, params, results []any) {
	defer func() {
		_ = recover()
	}()
	second := make([]any, len(s.deps))
	for i, dep := range s.deps {
		v, err := dep(state, params...)
		if err != nil {
			return
		}
		second[i] = v
	}

	identity := d.memoize(func(results ...any) (any, error) {
		return results, nil
	}, d.memoizeOpts...)
	firstPass, err := identity.Call(results...)
	if err != nil {
		return
	}
	secondPass, err := identity.Call(second...)
	if err != nil {
		return
	}
	if memo.Identical(firstPass, secondPass) {
		return
	}
	logger.Warn("an extractor returned a different result when passed same arguments; this means your output selector will likely run more frequently than intended",
		zap.String("selector", s.id),
		zap.Any("firstInputs", results),
		zap.Any("secondInputs", second),
	)
}

// identityProbe carries one byte so every probe allocation has a distinct
// address; zero-size values all share one.
type identityProbe struct{ _ byte }

// checkIdentity probes the combiner with a sentinel value. A combiner
// that hands its sole input back unchanged is an identity pass-through;
// transformation logic belongs in the combiner, not the extractors. The
// probe may fail in arbitrary ways against combiners expecting another
// input shape, and any such failure is swallowed.
func checkIdentity(s *Selector, logger *zap.Logger) {
	defer func() {
		_ = recover()
	}()
	sentinel := &identityProbe{}
	res, err := s.resultFunc(sentinel)
	if err != nil {
		return
	}
	if res == any(sentinel) {
		logger.Warn("the combiner returned its own inputs without modification; this could lead to inefficient memoization and unnecessary re-renders",
			zap.String("selector", s.id),
		)
	}
}
