package selectors_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/select_ive_go/selectors"

	"github.com/stretchr/testify/assert"
)

func TestSelectorI1(t *testing.T) {
	count := 0
	sel := selectors.SelectorI1(
		func(s int) int { return s * 2 },
		func(d int) string {
			count++
			return fmt.Sprint(d)
		},
	)

	assert.Equal(t, "4", sel(2))
	assert.Equal(t, "4", sel(2)) // cached
	assert.Equal(t, 1, count)
}

func TestSelectorI2(t *testing.T) {
	count := 0
	sel := selectors.SelectorI2(
		func(s appState) int { return s.a },
		func(s appState) int { return s.b },
		func(a, b int) int {
			count++
			return a + b
		},
	)

	assert.Equal(t, 3, sel(appState{a: 1, b: 2}))
	assert.Equal(t, 3, sel(appState{a: 1, b: 2}))
	assert.Equal(t, 1, count)

	assert.Equal(t, 5, sel(appState{a: 3, b: 2}))
	assert.Equal(t, 2, count)
}

func TestSelectorI3(t *testing.T) {
	count := 0
	sel := selectors.SelectorI3(
		func(s [3]int) int { return s[0] },
		func(s [3]int) int { return s[1] },
		func(s [3]int) int { return s[2] },
		func(a, b, c int) int {
			count++
			return a * b * c
		},
	)

	assert.Equal(t, 24, sel([3]int{2, 3, 4}))
	assert.Equal(t, 24, sel([3]int{2, 3, 4}))
	assert.Equal(t, 1, count)
}

func TestSelectorI4(t *testing.T) {
	count := 0
	sel := selectors.SelectorI4(
		func(s [4]int) int { return s[0] },
		func(s [4]int) int { return s[1] },
		func(s [4]int) int { return s[2] },
		func(s [4]int) int { return s[3] },
		func(a, b, c, d int) int {
			count++
			return a + b + c + d
		},
	)

	assert.Equal(t, 10, sel([4]int{1, 2, 3, 4}))
	assert.Equal(t, 10, sel([4]int{1, 2, 3, 4}))
	assert.Equal(t, 1, count)
}

func TestSelectorI2_ForwardsOptions(t *testing.T) {
	count := 0
	sel := selectors.SelectorI2(
		func(s appState) int { return s.a },
		func(s appState) int { return s.b },
		func(a, b int) int {
			count++
			return a + b
		},
		selectors.WithIdentityFunctionCheck(selectors.CheckNever),
	)

	assert.Equal(t, 3, sel(appState{a: 1, b: 2}))
	assert.Equal(t, 1, count)
}
