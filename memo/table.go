package memo

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// TableMemoizer returns a Memoizer with a bounded multi-entry cache:
// results are stored in a trie keyed by the argument sequence, with two
// maps rotated once maxSize entries accumulate, so the table never holds
// more than 2*maxSize results. Lookup is key-based, not predicate-based;
// a WithEquality option is ignored by this implementation.
//
// Arguments must be comparable, or implement fmt.Stringer as a fallback
// key. Anything else panics at call time, the same contract map keys have.
//
// Panics if maxSize is 0.
func TableMemoizer(maxSize uint32) Memoizer {
	if maxSize == 0 {
		panic("memo: table size should be greater than 0")
	}
	return func(fn Fn, _ ...Option) Memoized {
		return &table{
			fn:      fn,
			memos:   [2]*sync.Map{{}, {}},
			maxSize: maxSize,
		}
	}
}

type table struct {
	fn      Fn
	memos   [2]*sync.Map
	headIdx uint32
	size    atomic.Uint32
	maxSize uint32
}

// zeroArity keys calls made with no arguments at all.
type zeroArity struct{}

func (t *table) Call(args ...any) (any, error) {
	keys := make([]any, 0, len(args)+1)
	for _, arg := range args {
		keys = append(keys, tableKey(arg))
	}
	if len(keys) == 0 {
		keys = append(keys, zeroArity{})
	}

	if v, ok := t.load(keys); ok {
		return v, nil
	}
	res, err := t.fn(args...)
	if err != nil {
		return nil, err
	}
	t.store(keys, res)
	return res, nil
}

func (t *table) Clear() {
	t.memos = [2]*sync.Map{{}, {}}
	t.headIdx = 0
	t.size.Store(0)
}

func (t *table) load(keys []any) (any, bool) {
	headIdx := t.headIdx
	m, k := traverse(t.memos[headIdx], keys)
	v, ok := m.Load(k)
	if !ok {
		m, k = traverse(t.memos[1-headIdx], keys)
		v, ok = m.Load(k)
		if !ok {
			return nil, false
		}
	}
	return v, true
}

func (t *table) store(keys []any, value any) {
	if swapped := t.size.CompareAndSwap(t.maxSize, 0); swapped {
		t.headIdx = 1 - t.headIdx
		t.memos[t.headIdx] = &sync.Map{}
	}
	m, k := traverse(t.memos[t.headIdx], keys)
	m.Store(k, value)
	t.size.Add(1)
}

// traverse walks all but the last key, materializing the path, and
// returns the leaf map together with the final key.
func traverse(targetMap *sync.Map, keys []any) (*sync.Map, any) {
	length := len(keys)
	for _, k := range keys[:length-1] {
		v, ok := targetMap.Load(k)
		if !ok {
			newMap := &sync.Map{}
			targetMap.Store(k, newMap)
			v = newMap
		}
		targetMap = v.(*sync.Map)
	}
	return targetMap, keys[length-1]
}

func tableKey(arg any) any {
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringer.String()
	}
	return arg
}
