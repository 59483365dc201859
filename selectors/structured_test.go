package selectors_test

import (
	"testing"

	"github.com/on-the-ground/select_ive_go/memo"
	"github.com/on-the-ground/select_ive_go/selectors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeStructured_ShapeLaw(t *testing.T) {
	sel, err := selectors.ComposeStructured(map[string]any{
		"a": selectors.Extractor(extractA),
		"b": selectors.Extractor(extractB),
	})
	require.NoError(t, err)

	res, err := sel.Call(&appState{a: 1, b: 2})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, res)

	// equal extracted values: the very same map comes back
	again, err := sel.Call(&appState{a: 1, b: 2})
	require.NoError(t, err)
	assert.True(t, memo.Identical(res, again))
	assert.Equal(t, uint64(1), sel.Recomputations())

	changed, err := sel.Call(&appState{a: 3, b: 2})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 3, "b": 2}, changed)
	assert.Equal(t, uint64(2), sel.Recomputations())
}

func TestComposeStructured_RejectsEmptyShape(t *testing.T) {
	_, err := selectors.ComposeStructured(map[string]any{})
	require.ErrorIs(t, err, selectors.ErrInvalidShape)
}

func TestComposeStructured_RejectsNonCallableField(t *testing.T) {
	_, err := selectors.ComposeStructured(map[string]any{
		"a": selectors.Extractor(extractA),
		"b": "not an extractor",
	})
	require.ErrorIs(t, err, selectors.ErrInvalidShape)
	assert.Contains(t, err.Error(), `field "b" is string`)
	assert.Contains(t, err.Error(), "a: selectors.Extractor")
}

func TestComposeStructured_AcceptsSelectors(t *testing.T) {
	double := selectors.MustCompose(
		selectors.Extractor(extractA),
		func(results ...any) any { return results[0].(int) * 2 },
	)
	sel, err := selectors.ComposeStructured(map[string]any{
		"raw":     selectors.Extractor(extractA),
		"doubled": double,
	})
	require.NoError(t, err)

	res, err := sel.Call(&appState{a: 3})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"raw": 3, "doubled": 6}, res)
}

func TestComposeStructured_UnderFactoryPolicy(t *testing.T) {
	factory := selectors.NewFactory(
		selectors.WithArgsMemoizer(memo.Single, memo.WithEquality(memo.DeepEqual)),
	)
	extractorCalls := 0
	sel, err := factory.ComposeStructured(map[string]any{
		"a": func(state any) any {
			extractorCalls++
			return state.(map[string]int)["a"]
		},
	})
	require.NoError(t, err)

	_, err = sel.Call(map[string]int{"a": 1})
	require.NoError(t, err)
	_, err = sel.Call(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, 1, extractorCalls)
}

func TestMustComposeStructured_PanicsOnInvalidShape(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on invalid shape, but didn't panic")
		}
	}()
	selectors.MustComposeStructured(map[string]any{"a": 1})
}
