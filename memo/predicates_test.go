package memo_test

import (
	"testing"

	"github.com/on-the-ground/select_ive_go/memo"

	"github.com/stretchr/testify/assert"
)

func TestIdentical(t *testing.T) {
	shared := []int{1, 2}
	m := map[string]int{"a": 1}
	p := &struct{ n int }{n: 1}

	assert.True(t, memo.Identical(1, 1))
	assert.False(t, memo.Identical(1, 2))
	assert.False(t, memo.Identical(1, int64(1)))
	assert.True(t, memo.Identical("x", "x"))
	assert.True(t, memo.Identical(nil, nil))
	assert.False(t, memo.Identical(nil, 0))

	assert.True(t, memo.Identical(p, p))
	assert.False(t, memo.Identical(p, &struct{ n int }{n: 1}))

	assert.True(t, memo.Identical(shared, shared))
	assert.False(t, memo.Identical(shared, []int{1, 2}))
	assert.False(t, memo.Identical(shared, shared[:1]))

	assert.True(t, memo.Identical(m, m))
	assert.False(t, memo.Identical(m, map[string]int{"a": 1}))
}

func TestDeepEqual(t *testing.T) {
	assert.True(t, memo.DeepEqual([]int{1, 2}, []int{1, 2}))
	assert.False(t, memo.DeepEqual([]int{1, 2}, []int{2, 1}))
	assert.True(t, memo.DeepEqual(map[string]int{"a": 1}, map[string]int{"a": 1}))
}
