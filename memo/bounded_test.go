package memo_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/select_ive_go/memo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundedMemoizer_CachesByArgumentHash(t *testing.T) {
	count := 0
	fn := memo.BoundedMemoizer(128)(func(args ...any) (any, error) {
		count++
		return args[0].(int) * args[1].(int), nil
	})

	res, err := fn.Call(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, res)

	res, err = fn.Call(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, res)
	assert.Equal(t, 1, count)

	res, err = fn.Call(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 12, res)
	assert.Equal(t, 2, count)
}

func TestBoundedMemoizer_ErrorIsNotCached(t *testing.T) {
	errBoom := errors.New("boom")
	count := 0
	fn := memo.BoundedMemoizer(128)(func(args ...any) (any, error) {
		count++
		return nil, errBoom
	})

	_, err := fn.Call(1)
	require.ErrorIs(t, err, errBoom)
	_, err = fn.Call(1)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 2, count)
}

func TestBoundedMemoizer_Clear(t *testing.T) {
	count := 0
	fn := memo.BoundedMemoizer(128)(func(args ...any) (any, error) {
		count++
		return args[0], nil
	})

	_, _ = fn.Call(1)
	fn.Clear()
	_, _ = fn.Call(1)
	assert.Equal(t, 2, count)
}

func TestBoundedMemoizer_NonPositiveCapacityPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on non-positive capacity, but didn't panic")
		}
	}()
	memo.BoundedMemoizer(0)
}
