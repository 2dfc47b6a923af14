package pure

import (
	"go.uber.org/zap"

	"github.com/on-the-ground/lambda_ive_go/internal/logging"
	"github.com/on-the-ground/lambda_ive_go/internal/memo"
)

// MemoConfig selects the locking strategy and the bound of a memoized
// computation's table.
type MemoConfig = memo.Config

// Locking is how a memoized computation serializes cache misses.
type Locking = memo.Locking

const (
	// Coarse is the default: one lock per memoized value, held while a
	// missing result is computed and stored. Unrelated keys are serialized.
	Coarse = memo.Coarse
	// Striped spreads keys over a fixed number of locks.
	Striped = memo.Striped
	// Coalesced lets concurrent callers of one key share a single
	// computation without blocking callers of other keys.
	Coalesced = memo.Coalesced
	// Optimistic takes no lock; the first stored result wins.
	Optimistic = memo.Optimistic
)

// NewMemoConfig returns a config with out-of-range values replaced by
// defaults. maxEntries == 0 means unbounded.
func NewMemoConfig(locking Locking, stripes, maxEntries int) MemoConfig {
	return memo.NewConfig(locking, stripes, maxEntries)
}

// DefaultMemoConfig is what Memoized uses: coarse locking, unbounded.
func DefaultMemoConfig() MemoConfig {
	return memo.DefaultConfig()
}

// UseLogger sets the logger used by this module. Logging is off (zap.NewNop)
// until it is called; nil switches it off again.
func UseLogger(logger *zap.Logger) {
	logging.Set(logger)
}

func memoGet[R any](table *memo.Table[R], compute func() R, args ...memo.ComparableOrStringer) R {
	v, _ := table.Get(args, func() (R, error) {
		return compute(), nil
	})
	return v
}
