package memo

import (
	"sync"
	"sync/atomic"
)

var _ Store[int] = (*Trie[int])(nil)

// Trie is an unbounded Store made of nested sync.Maps, one level per
// argument. Reads never lock.
type Trie[O any] struct {
	root *sync.Map
	size atomic.Int64
}

func NewTrie[O any]() *Trie[O] {
	return &Trie[O]{root: &sync.Map{}}
}

func (t *Trie[O]) Load(keys []ComparableOrString) (O, bool) {
	var zero O
	m, k, ok := t.lookup(keys)
	if !ok {
		return zero, false
	}
	v, ok := m.Load(k)
	if !ok {
		return zero, false
	}
	return asValue[O](v), true
}

func (t *Trie[O]) InsertIfAbsent(keys []ComparableOrString, value O) (O, bool) {
	m, k := t.traverse(keys)
	actual, loaded := m.LoadOrStore(k, value)
	if loaded {
		return asValue[O](actual), false
	}
	t.size.Add(1)
	return value, true
}

func (t *Trie[O]) Len() int {
	return int(t.size.Load())
}

// lookup walks the inner levels without creating them.
func (t *Trie[O]) lookup(keys []ComparableOrString) (*sync.Map, any, bool) {
	length := len(keys)
	if length == 0 {
		panic("lookup: empty keys")
	}

	targetMap := t.root
	for _, k := range keys[:length-1] {
		v, ok := targetMap.Load(k)
		if !ok {
			return nil, nil, false
		}
		targetMap = v.(*sync.Map)
	}
	return targetMap, keys[length-1], true
}

// traverse walks the inner levels, creating missing ones.
func (t *Trie[O]) traverse(keys []ComparableOrString) (*sync.Map, any) {
	length := len(keys)
	if length == 0 {
		panic("traverse: empty keys")
	}

	targetMap := t.root
	for _, k := range keys[:length-1] {
		v, ok := targetMap.Load(k)
		if !ok {
			v, _ = targetMap.LoadOrStore(k, &sync.Map{})
		}
		targetMap = v.(*sync.Map)
	}
	return targetMap, keys[length-1]
}

// asValue undoes the boxing of sync.Map, where a nil interface result is
// stored as a plain nil.
func asValue[O any](v any) O {
	if v == nil {
		var zero O
		return zero
	}
	return v.(O)
}
