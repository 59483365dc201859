package selectors

import (
	"github.com/on-the-ground/select_ive_go/shared/helper"
)

// SelectorI1 to SelectorI4 are typed fronts over Compose for selectors
// whose extractors take the state alone and cannot fail. They trade the
// introspection surface of *Selector for a plain function with the exact
// signature of the composition.

func SelectorI1[S, R1, T any](
	e1 func(S) R1,
	combine func(R1) T,
	opts ...Option,
) func(S) T {
	sel := MustCompose(withOptions(opts,
		func(state any) any { return e1(state.(S)) },
		func(results ...any) any {
			return combine(results[0].(R1))
		},
	)...)
	return typedFront[S, T](sel)
}

func SelectorI2[S, R1, R2, T any](
	e1 func(S) R1,
	e2 func(S) R2,
	combine func(R1, R2) T,
	opts ...Option,
) func(S) T {
	sel := MustCompose(withOptions(opts,
		func(state any) any { return e1(state.(S)) },
		func(state any) any { return e2(state.(S)) },
		func(results ...any) any {
			return combine(results[0].(R1), results[1].(R2))
		},
	)...)
	return typedFront[S, T](sel)
}

func SelectorI3[S, R1, R2, R3, T any](
	e1 func(S) R1,
	e2 func(S) R2,
	e3 func(S) R3,
	combine func(R1, R2, R3) T,
	opts ...Option,
) func(S) T {
	sel := MustCompose(withOptions(opts,
		func(state any) any { return e1(state.(S)) },
		func(state any) any { return e2(state.(S)) },
		func(state any) any { return e3(state.(S)) },
		func(results ...any) any {
			return combine(results[0].(R1), results[1].(R2), results[2].(R3))
		},
	)...)
	return typedFront[S, T](sel)
}

func SelectorI4[S, R1, R2, R3, R4, T any](
	e1 func(S) R1,
	e2 func(S) R2,
	e3 func(S) R3,
	e4 func(S) R4,
	combine func(R1, R2, R3, R4) T,
	opts ...Option,
) func(S) T {
	sel := MustCompose(withOptions(opts,
		func(state any) any { return e1(state.(S)) },
		func(state any) any { return e2(state.(S)) },
		func(state any) any { return e3(state.(S)) },
		func(state any) any { return e4(state.(S)) },
		func(results ...any) any {
			return combine(results[0].(R1), results[1].(R2), results[2].(R3), results[3].(R4))
		},
	)...)
	return typedFront[S, T](sel)
}

func typedFront[S, T any](sel *Selector) func(S) T {
	return func(state S) T {
		return helper.MustGetTypedValue[T](func() (any, error) {
			return sel.Call(state)
		})
	}
}

func withOptions(opts []Option, args ...any) []any {
	for _, opt := range opts {
		args = append(args, opt)
	}
	return args
}
