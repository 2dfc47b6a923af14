package memo

import "fmt"

// Locking selects how a table serializes the computation of missing keys.
type Locking int

const (
	// Coarse holds one mutex per table across check-compute-store.
	// Unrelated keys wait for each other. Not reentrant.
	Coarse Locking = iota

	// Striped hashes each key onto one of Config.Stripes mutexes.
	// Keys sharing a stripe wait for each other. Not reentrant.
	Striped

	// Coalesced runs one computation per key at a time and hands its result
	// to every concurrent caller of that key. Unrelated keys never wait.
	Coalesced

	// Optimistic takes no lock. Concurrent misses of one key may compute
	// twice, but only the first stored result is ever returned.
	Optimistic
)

const (
	DefaultStripes = 16
)

func (l Locking) String() string {
	switch l {
	case Coarse:
		return "coarse"
	case Striped:
		return "striped"
	case Coalesced:
		return "coalesced"
	case Optimistic:
		return "optimistic"
	default:
		return fmt.Sprintf("locking(%d)", int(l))
	}
}

type Config struct {
	Locking    Locking // default: Coarse
	Stripes    int     // default: DefaultStripes, used by Striped only
	MaxEntries int     // default: 0 (unbounded, entries are never evicted)
}

// NewConfig normalizes out-of-range values to their defaults.
func NewConfig(locking Locking, stripes, maxEntries int) Config {
	if locking < Coarse || locking > Optimistic {
		locking = Coarse
	}
	if stripes <= 0 {
		stripes = DefaultStripes
	}
	if maxEntries < 0 {
		maxEntries = 0
	}
	return Config{
		Locking:    locking,
		Stripes:    stripes,
		MaxEntries: maxEntries,
	}
}

// DefaultConfig is the unbounded, coarse-locked table.
func DefaultConfig() Config {
	return NewConfig(Coarse, DefaultStripes, 0)
}

func (c Config) Bounded() bool {
	return c.MaxEntries > 0
}
