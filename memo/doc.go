// Package memo provides equality-gated memoization for pure functions.
//
// The primitive is a capability, not a cache: a Memoizer wraps a function
// and returns something that behaves like it, except that calls the
// memoizer judges "equal enough" to a previous one skip the function
// entirely. Everything above this seam, the selectors package included,
// depends only on that behavior.
//
// Three implementations ship here:
//   - Single: one cache slot, compared against the immediately preceding
//     call. The default, and the one whose semantics the selector engine
//     is specified against.
//   - TableMemoizer: a bounded trie table with dual-map rotation, for
//     call sites that bounce between many recurring argument sets.
//   - BoundedMemoizer: a ristretto-backed, hash-keyed cache for large or
//     concurrent working sets.
//
// Memoizing an impure function does not make it pure; it makes it wrong.
// Every guarantee in this package assumes the wrapped function is
// referentially transparent.
package memo
