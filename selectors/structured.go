package selectors

import (
	"fmt"
	"sort"
	"strings"
)

// ComposeStructured builds a selector whose result is a map with one
// field per shape key, each computed by the corresponding extractor. It
// is a convenience composition, not a separate caching mechanism: the
// shape's extractors become the dependency list and the combiner re-zips
// the keys onto the results, so both cache tiers behave exactly as they
// do for Compose. With every extracted value equal, the second call
// returns the very same map.
//
// Go maps carry no order, so the dependency order is the shape's keys in
// ascending lexical order.
func ComposeStructured(shape map[string]any, opts ...Option) (*Selector, error) {
	return defaultFactory.ComposeStructured(shape, opts...)
}

// MustComposeStructured is the panic-on-failure variant of ComposeStructured.
func MustComposeStructured(shape map[string]any, opts ...Option) *Selector {
	return defaultFactory.MustComposeStructured(shape, opts...)
}

// ComposeStructured builds a structured selector under this factory's
// cache policy. See the package-level ComposeStructured.
func (f *Factory) ComposeStructured(shape map[string]any, opts ...Option) (*Selector, error) {
	cfg := f.cfg
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: shape is empty", ErrInvalidShape)
	}
	keys := make([]string, 0, len(shape))
	for k := range shape {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	deps := make([]Extractor, len(keys))
	for i, k := range keys {
		dep, ok := asExtractor(shape[k])
		if !ok {
			return nil, fmt.Errorf("%w: field %q is %T, got {%s}",
				ErrInvalidShape, k, shape[k], describeShape(shape, keys))
		}
		deps[i] = dep
	}

	combine := func(results ...any) (any, error) {
		out := make(map[string]any, len(keys))
		for i, k := range keys {
			out[k] = results[i]
		}
		return out, nil
	}
	return build(deps, combine, cfg), nil
}

// MustComposeStructured is the panic-on-failure variant of ComposeStructured.
func (f *Factory) MustComposeStructured(shape map[string]any, opts ...Option) *Selector {
	sel, err := f.ComposeStructured(shape, opts...)
	if err != nil {
		panic(err)
	}
	return sel
}

func describeShape(shape map[string]any, keys []string) string {
	kinds := make([]string, len(keys))
	for i, k := range keys {
		kinds[i] = fmt.Sprintf("%s: %T", k, shape[k])
	}
	return strings.Join(kinds, ", ")
}
