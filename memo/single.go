package memo

// Single is the default Memoizer: a cache of depth exactly one, keyed by
// positional equality against the immediately preceding call. Most derived
// value call patterns only ever repeat the most recent arguments, so one
// slot covers them without any eviction machinery.
//
// A call misses when no entry exists yet, when the arity differs from the
// previous call, or when any positional argument fails the equality
// predicate. A failing invocation of the wrapped Fn is never cached and
// leaves the previous entry intact.
//
// Single is not safe for concurrent use; callers that share a Memoized
// across goroutines must synchronize around it.
func Single(fn Fn, opts ...Option) Memoized {
	cfg := newConfig(opts...)
	return &singleSlot{fn: fn, equals: cfg.equals}
}

var _ Memoizer = Single

type singleSlot struct {
	fn         Fn
	equals     Equality
	lastArgs   []any
	lastResult any
	hasValue   bool
}

func (s *singleSlot) Call(args ...any) (any, error) {
	if s.hit(args) {
		return s.lastResult, nil
	}
	res, err := s.fn(args...)
	if err != nil {
		return nil, err
	}
	// args may share a backing array owned by the caller
	s.lastArgs = append([]any(nil), args...)
	s.lastResult = res
	s.hasValue = true
	return res, nil
}

func (s *singleSlot) hit(args []any) bool {
	if !s.hasValue || len(args) != len(s.lastArgs) {
		return false
	}
	for i, arg := range args {
		if !s.equals(arg, s.lastArgs[i]) {
			return false
		}
	}
	return true
}

func (s *singleSlot) Clear() {
	s.lastArgs = nil
	s.lastResult = nil
	s.hasValue = false
}
