package logging

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// Logger returns the logger shared by every package of this module.
// It is a no-op logger until Set is called.
func Logger() *zap.Logger {
	return current.Load()
}

// Set replaces the shared logger. A nil logger restores the no-op logger.
func Set(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	current.Store(logger)
}
