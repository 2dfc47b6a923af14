package memo

// Store keeps results by key path. Entries are write-once: a present key is
// never overwritten.
type Store[O any] interface {
	Load(keys []ComparableOrString) (O, bool)
	// InsertIfAbsent stores value unless keys is already present, and
	// returns whichever value the store holds afterwards.
	InsertIfAbsent(keys []ComparableOrString, value O) (actual O, inserted bool)
	Len() int
}

func newStore[O any](config Config, onEvict func()) Store[O] {
	if config.Bounded() {
		return NewBoundedStore[O](config.MaxEntries, onEvict)
	}
	return NewTrie[O]()
}
