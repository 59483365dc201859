package selectors

import (
	"github.com/on-the-ground/select_ive_go/memo"
)

// Extractor reads one fragment of an externally supplied state value.
// Extractors are pure by contract; the engine only holds a reference and
// its caching is only correct when they really are.
type Extractor func(state any, params ...any) (any, error)

// Combiner produces the derived value from the extractor outputs, one
// positional argument per extractor in dependency order.
type Combiner func(results ...any) (any, error)

// Selector is the composed, cache-aware artifact produced by Compose.
// It owns two independent memoizer slots: the result tier caches the
// combiner behind the equality of the extracted values, and the args tier
// caches the whole extractor pass behind the equality of the raw call
// arguments. The args tier is purely an optimization; it changes whether
// extractors run, never what the selector returns.
//
// A Selector is not safe for concurrent use. Hosts calling one selector
// from several goroutines must synchronize around it, exactly as they
// would around a memo.Single.
type Selector struct {
	id             string
	deps           []Extractor
	resultFunc     Combiner
	memoizedResult memo.Memoized
	memoizedArgs   memo.Memoized
	recomputations uint64
	lastResult     any

	checks diagnostics
}

// Call evaluates the selector against state. Additional params are passed
// through to every extractor after the state argument. Errors from
// extractors and the combiner propagate unwrapped; a failing call is
// never cached, so the next call re-attempts.
func (s *Selector) Call(state any, params ...any) (any, error) {
	args := make([]any, 0, len(params)+1)
	args = append(args, state)
	args = append(args, params...)
	return s.memoizedArgs.Call(args...)
}

// Dependencies returns the extractor list captured at construction time.
func (s *Selector) Dependencies() []Extractor {
	return append([]Extractor(nil), s.deps...)
}

// ResultFunc returns the original, unmemoized combiner.
func (s *Selector) ResultFunc() Combiner {
	return s.resultFunc
}

// MemoizedResultFunc returns the result-tier memoized combiner.
func (s *Selector) MemoizedResultFunc() memo.Memoized {
	return s.memoizedResult
}

// Recomputations reports how many times the combiner has been invoked,
// failed attempts included.
func (s *Selector) Recomputations() uint64 {
	return s.recomputations
}

// ResetRecomputations zeroes the counter and clears both memoizer slots,
// so the very next call recomputes regardless of argument equality. A
// reset counter next to a still-warm cache would count recomputations
// that never happen.
func (s *Selector) ResetRecomputations() {
	s.recomputations = 0
	s.memoizedResult.Clear()
	s.memoizedArgs.Clear()
}

// LastResult returns the most recently produced combiner output, or nil
// before the first successful computation.
func (s *Selector) LastResult() any {
	return s.lastResult
}

// rawBody is the uncached selector body: one extractor pass feeding the
// result-tier memoized combiner. The args-tier memoizer wraps this.
func (s *Selector) rawBody(args ...any) (any, error) {
	state, params := args[0], args[1:]
	results := make([]any, len(s.deps))
	for i, dep := range s.deps {
		v, err := dep(state, params...)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	s.checks.run(s, state, params, results)
	return s.memoizedResult.Call(results...)
}
