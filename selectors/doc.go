// Package selectors composes pure state readers into memoized derived
// values.
//
// A selector is built from extractors, each reading one fragment of an
// externally supplied state value, and a combiner turning those fragments
// into the derived result. Callers in state-driven hosts invoke selectors
// on every state change; the point of the composition is that a call
// whose relevant fragments did not change costs two equality walks and no
// recomputation.
//
// # Two cache tiers
//
// Caching happens twice, with the same memo primitive on both tiers:
//   - The result tier gates the combiner on the equality of the extracted
//     values. This is the tier that defines observable behavior.
//   - The args tier gates the whole extractor pass on the equality of the
//     raw call arguments. It only decides whether extractors run at all,
//     never what the selector returns.
//
// The tiers are two independent instances of the same memo.Memoizer
// capability, and either can be swapped per factory or per selector, see
// WithMemoizer and WithArgsMemoizer.
//
// # Purity is the contract
//
// Extractors and combiners must be referentially transparent. The engine
// does not enforce this, but every cache decision assumes it. In return
// the engine promises: extractors run in declared order, at most once per
// args-tier miss, and a failing call is never cached.
//
// Selectors chain: a *Selector is itself accepted as an extractor, so
// derived values compose into a directed acyclic graph. Cycles are the
// caller's responsibility to avoid; the engine does not detect them.
//
// # Development diagnostics
//
// With a warn logger installed (SetWarnLogger or WithWarnLogger), the
// engine can verify that extractors return stable references for equal
// inputs and that the combiner is not a bare identity function. Both
// checks are non-fatal observers of the call path.
package selectors
