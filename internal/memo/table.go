package memo

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/on-the-ground/lambda_ive_go/internal/logging"
)

// Table memoizes one computation. Each distinct key path is computed at most
// once while it stays in the store; failed computations are not stored.
//
// A Table is owned by exactly one memoized value and is never shared.
type Table[O any] struct {
	TableId string
	config  Config
	store   Store[O]

	mu      sync.Mutex
	stripes []sync.Mutex
	flights singleflight.Group
}

func NewTable[O any](config Config) *Table[O] {
	t := &Table[O]{
		TableId: uuid.New().String(),
		config:  config,
	}
	t.store = newStore[O](config, t.logEviction)
	if config.Locking == Striped {
		t.stripes = make([]sync.Mutex, config.Stripes)
	}
	logging.Logger().Sugar().Debugf(
		"created memo table: tableId: %v, locking: %v, maxEntries: %v",
		t.TableId, config.Locking, config.MaxEntries,
	)
	return t
}

func (t *Table[O]) Config() Config {
	return t.config
}

// Len returns the number of stored results.
func (t *Table[O]) Len() int {
	return t.store.Len()
}

// Get returns the stored result for args, or runs compute and stores its
// result if it succeeds. Hits never lock.
func (t *Table[O]) Get(
	args []ComparableOrStringer,
	compute func() (O, error),
) (O, error) {
	keys := Keys(args)
	if v, ok := t.store.Load(keys); ok {
		return v, nil
	}

	switch t.config.Locking {
	case Coarse:
		t.mu.Lock()
		defer t.mu.Unlock()
		return t.computeIfAbsent(keys, compute)

	case Striped:
		mu := &t.stripes[partitionOf(flatKey(keys), len(t.stripes))]
		mu.Lock()
		defer mu.Unlock()
		return t.computeIfAbsent(keys, compute)

	case Coalesced:
		v, err, _ := t.flights.Do(flatKey(keys), func() (any, error) {
			return t.computeIfAbsent(keys, compute)
		})
		if err != nil {
			var zero O
			return zero, err
		}
		return asValue[O](v), nil

	case Optimistic:
		v, err := compute()
		if err != nil {
			return v, err
		}
		actual, _ := t.store.InsertIfAbsent(keys, v)
		return actual, nil

	default:
		panic("exhaustive match fallback, locking: " + t.config.Locking.String())
	}
}

// computeIfAbsent must run under the guard of the key.
func (t *Table[O]) computeIfAbsent(
	keys []ComparableOrString,
	compute func() (O, error),
) (O, error) {
	if v, ok := t.store.Load(keys); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return v, err
	}
	actual, _ := t.store.InsertIfAbsent(keys, v)
	return actual, nil
}

func (t *Table[O]) logEviction() {
	logging.Logger().Debug("memo entry evicted",
		zap.String("tableId", t.TableId),
		zap.Int("maxEntries", t.config.MaxEntries),
	)
}
