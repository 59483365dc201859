package memo

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	ristretto "github.com/dgraph-io/ristretto/v2"
)

// BoundedMemoizer returns a Memoizer backed by a ristretto cache holding
// up to capacity results. The cache key is an xxhash digest of the
// argument sequence, so lookup is hash-based rather than predicate-based;
// a WithEquality option is ignored by this implementation. Arguments are
// keyed through fmt.Stringer when implemented and their printed form
// otherwise, the same fallback TableMemoizer uses for non-comparable
// values.
//
// Unlike Single, the underlying store is safe for concurrent readers and
// writers.
//
// Panics if capacity is not positive or the cache cannot be built.
func BoundedMemoizer(capacity int64) Memoizer {
	if capacity <= 0 {
		panic("memo: capacity should be greater than 0")
	}
	return func(fn Fn, _ ...Option) Memoized {
		cache, err := ristretto.NewCache(&ristretto.Config[uint64, any]{
			NumCounters: 10 * capacity,
			MaxCost:     capacity,
			BufferItems: 64,
		})
		if err != nil {
			panic(fmt.Sprintf("memo: fail to build ristretto cache: %v", err))
		}
		return &bounded{fn: fn, cache: cache}
	}
}

type bounded struct {
	fn    Fn
	cache *ristretto.Cache[uint64, any]
}

func (b *bounded) Call(args ...any) (any, error) {
	key := sumArgs(args)
	if v, ok := b.cache.Get(key); ok {
		return v, nil
	}
	res, err := b.fn(args...)
	if err != nil {
		return nil, err
	}
	b.cache.Set(key, res, 1)
	// Set is buffered; the next equal call should already see the entry.
	b.cache.Wait()
	return res, nil
}

func (b *bounded) Clear() {
	b.cache.Clear()
}

func sumArgs(args []any) uint64 {
	digest := xxhash.New()
	for _, arg := range args {
		if stringer, ok := arg.(fmt.Stringer); ok {
			_, _ = digest.WriteString(stringer.String())
		} else {
			_, _ = fmt.Fprintf(digest, "%T:%v", arg, arg)
		}
		_, _ = digest.Write([]byte{0})
	}
	return digest.Sum64()
}
