package selectors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDependencies reports a candidate extractor that is not
	// callable as one.
	ErrInvalidDependencies = errors.New("selectors: dependencies must be extractor functions")
	// ErrInvalidCombiner reports a trailing element that is not callable
	// as a combiner.
	ErrInvalidCombiner = errors.New("selectors: combiner must be a variadic result function")
	// ErrInvalidShape reports a structured-selector shape whose fields
	// are not extractor functions.
	ErrInvalidShape = errors.New("selectors: shape must map field names to extractor functions")
)

// resolve normalizes the raw Compose arguments into a dependency list and
// a combiner. Two forms are accepted: array form, where the first element
// is itself a sequence of extractors followed by the combiner, and
// variadic form, where every element but the last is an extractor. All
// validation happens here, once, at construction time; the call path
// never re-checks.
func resolve(raw []any) ([]Extractor, Combiner, error) {
	if len(raw) < 2 {
		return nil, nil, fmt.Errorf("%w: need at least one extractor and a combiner, got [%s]",
			ErrInvalidDependencies, describeTypes(raw))
	}

	combine, ok := asCombiner(raw[len(raw)-1])
	if !ok {
		return nil, nil, fmt.Errorf("%w: trailing element is %T, got [%s]",
			ErrInvalidCombiner, raw[len(raw)-1], describeTypes(raw))
	}

	candidates := raw[:len(raw)-1]
	if seq, ok := asExtractorSlice(candidates[0]); ok {
		if len(candidates) != 1 {
			return nil, nil, fmt.Errorf("%w: array form takes exactly one sequence before the combiner, got [%s]",
				ErrInvalidDependencies, describeTypes(raw))
		}
		candidates = seq
	}
	if len(candidates) == 0 {
		return nil, nil, fmt.Errorf("%w: the extractor sequence is empty, got [%s]",
			ErrInvalidDependencies, describeTypes(raw))
	}

	deps := make([]Extractor, len(candidates))
	for i, candidate := range candidates {
		dep, ok := asExtractor(candidate)
		if !ok {
			return nil, nil, fmt.Errorf("%w: element %d is %T, got [%s]",
				ErrInvalidDependencies, i, candidate, describeTypes(candidates))
		}
		deps[i] = dep
	}
	return deps, combine, nil
}

// asExtractor adapts the accepted extractor forms. A *Selector adapts
// through its Call method, which is how selectors chain.
func asExtractor(v any) (Extractor, bool) {
	switch fn := v.(type) {
	case Extractor:
		return fn, fn != nil
	case func(state any, params ...any) (any, error):
		return fn, fn != nil
	case func(state any) (any, error):
		if fn == nil {
			return nil, false
		}
		return func(state any, _ ...any) (any, error) { return fn(state) }, true
	case func(state any) any:
		if fn == nil {
			return nil, false
		}
		return func(state any, _ ...any) (any, error) { return fn(state), nil }, true
	case *Selector:
		if fn == nil {
			return nil, false
		}
		return fn.Call, true
	}
	return nil, false
}

func asCombiner(v any) (Combiner, bool) {
	switch fn := v.(type) {
	case Combiner:
		return fn, fn != nil
	case func(results ...any) (any, error):
		return fn, fn != nil
	case func(results ...any) any:
		if fn == nil {
			return nil, false
		}
		return func(results ...any) (any, error) { return fn(results...), nil }, true
	}
	return nil, false
}

func asExtractorSlice(v any) ([]any, bool) {
	switch seq := v.(type) {
	case []any:
		return seq, true
	case []Extractor:
		out := make([]any, len(seq))
		for i, e := range seq {
			out[i] = e
		}
		return out, true
	case []*Selector:
		out := make([]any, len(seq))
		for i, s := range seq {
			out[i] = s
		}
		return out, true
	}
	return nil, false
}

func describeTypes(raw []any) string {
	kinds := make([]string, len(raw))
	for i, v := range raw {
		kinds[i] = fmt.Sprintf("%T", v)
	}
	return strings.Join(kinds, ", ")
}
