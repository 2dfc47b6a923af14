package memo

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

var _ Store[int] = BoundedStore[int]{}

type tupleKey [MaxArity]ComparableOrString

func toTupleKey(keys []ComparableOrString) tupleKey {
	if len(keys) == 0 || len(keys) > MaxArity {
		panic(fmt.Sprintf("tupleKey: key path of length %d", len(keys)))
	}
	var tk tupleKey
	copy(tk[:], keys)
	return tk
}

// BoundedStore keeps at most maxEntries results, evicting the least recently
// used one. An evicted key is computed again on its next call.
type BoundedStore[O any] struct {
	cache *lru.Cache[tupleKey, O]
}

// NewBoundedStore panics if maxEntries is not positive. onEvict, if not nil,
// is called once per evicted entry.
func NewBoundedStore[O any](maxEntries int, onEvict func()) BoundedStore[O] {
	if maxEntries <= 0 {
		panic("maxEntries should be greater than 0")
	}
	var evictFn func(tupleKey, O)
	if onEvict != nil {
		evictFn = func(tupleKey, O) { onEvict() }
	}
	cache, err := lru.NewWithEvict[tupleKey, O](maxEntries, evictFn)
	if err != nil {
		panic(fmt.Sprintf("fail to create bounded store: %v", err))
	}
	return BoundedStore[O]{cache: cache}
}

func (s BoundedStore[O]) Load(keys []ComparableOrString) (O, bool) {
	return s.cache.Get(toTupleKey(keys))
}

func (s BoundedStore[O]) InsertIfAbsent(keys []ComparableOrString, value O) (O, bool) {
	tk := toTupleKey(keys)
	if ok, _ := s.cache.ContainsOrAdd(tk, value); !ok {
		return value, true
	}
	if actual, ok := s.cache.Get(tk); ok {
		return actual, false
	}
	// evicted between the two calls
	return value, false
}

func (s BoundedStore[O]) Len() int {
	return s.cache.Len()
}
