package checked

import (
	"go.uber.org/zap"

	"github.com/on-the-ground/lambda_ive_go/internal/logging"
	"github.com/on-the-ground/lambda_ive_go/internal/memo"
	"github.com/on-the-ground/lambda_ive_go/pure"
)

// Func0 is a computation without arguments that may fail.
type Func0[R any] struct {
	call  func() (R, error)
	table *memo.Table[R]
}

// Func1 is a computation of one argument that may fail.
type Func1[A, R any] struct {
	call  func(A) (R, error)
	table *memo.Table[R]
}

// Func2 is a computation of two arguments that may fail.
type Func2[A, B, R any] struct {
	call  func(A, B) (R, error)
	table *memo.Table[R]
}

// Func3 is a computation of three arguments that may fail.
type Func3[A, B, C, R any] struct {
	call  func(A, B, C) (R, error)
	table *memo.Table[R]
}

func F0[R any](f func() (R, error)) Func0[R] {
	requireFunc(f != nil, "F0")
	return Func0[R]{call: f}
}

func F1[A, R any](f func(A) (R, error)) Func1[A, R] {
	requireFunc(f != nil, "F1")
	return Func1[A, R]{call: f}
}

func F2[A, B, R any](f func(A, B) (R, error)) Func2[A, B, R] {
	requireFunc(f != nil, "F2")
	return Func2[A, B, R]{call: f}
}

func F3[A, B, C, R any](f func(A, B, C) (R, error)) Func3[A, B, C, R] {
	requireFunc(f != nil, "F3")
	return Func3[A, B, C, R]{call: f}
}

// --- Func0 ---

func (f Func0[R]) Apply() (R, error) {
	return f.call()
}

func (Func0[R]) Arity() int {
	return 0
}

func (f Func0[R]) IsZero() bool {
	return f.call == nil
}

func (f Func0[R]) IsMemoized() bool {
	return f.table != nil
}

// Nest returns the pure counterpart of f. See Func1.Nest.
func (f Func0[R]) Nest() pure.Func0[R] {
	requireFunc(f.call != nil, "Func0.Nest")
	call := f.call
	return pure.F0(func() R {
		v, err := call()
		if err != nil {
			panic(nest(err))
		}
		return v
	})
}

func (f Func0[R]) Recover(handler func(error) pure.Func0[R]) pure.Func0[R] {
	requireFunc(f.call != nil, "Func0.Recover")
	requireFunc(handler != nil, "Func0.Recover: handler")
	call := f.call
	return pure.F0(func() R {
		v, err := call()
		if err == nil {
			return v
		}
		if IsUnchecked(err) {
			panic(err)
		}
		fallback := handler(err)
		if fallback.IsZero() {
			panic(invalidHandler("Func0.Recover", err))
		}
		logging.Logger().Warn("recovering from failure", zap.String("computation", "Func0"), zap.Error(err))
		return fallback.Apply()
	})
}

func (f Func0[R]) Lift() pure.Func0[Result[R]] {
	requireFunc(f.call != nil, "Func0.Lift")
	call := f.call
	return pure.F0(func() Result[R] {
		return ResultOf[R](call())
	})
}

func (f Func0[R]) Memoized() Func0[R] {
	return f.MemoizedWith(pure.DefaultMemoConfig())
}

func (f Func0[R]) MemoizedWith(config pure.MemoConfig) Func0[R] {
	if f.table != nil {
		return f
	}
	requireFunc(f.call != nil, "Func0.Memoized")
	table := memo.NewTable[R](config)
	call := f.call
	return Func0[R]{
		call: func() (R, error) {
			return table.Get(nil, call)
		},
		table: table,
	}
}

// --- Func1 ---

func (f Func1[A, R]) Apply(a A) (R, error) {
	return f.call(a)
}

func (Func1[A, R]) Arity() int {
	return 1
}

func (f Func1[A, R]) IsZero() bool {
	return f.call == nil
}

func (f Func1[A, R]) IsMemoized() bool {
	return f.table != nil
}

// Nest returns the pure counterpart of f. A failure panics with a
// *NestedError whose Cause is the failure, unless the failure is unchecked,
// in which case it panics with the failure itself.
func (f Func1[A, R]) Nest() pure.Func1[A, R] {
	requireFunc(f.call != nil, "Func1.Nest")
	call := f.call
	return pure.F1(func(a A) R {
		v, err := call(a)
		if err != nil {
			panic(nest(err))
		}
		return v
	})
}

// Recover returns the pure counterpart of f that answers a failure with
// handler(failure) applied to the same argument. Unchecked failures panic
// as they are. A handler returning a zero-value computation panics with an
// error wrapping ErrInvalidHandler.
func (f Func1[A, R]) Recover(handler func(error) pure.Func1[A, R]) pure.Func1[A, R] {
	requireFunc(f.call != nil, "Func1.Recover")
	requireFunc(handler != nil, "Func1.Recover: handler")
	call := f.call
	return pure.F1(func(a A) R {
		v, err := call(a)
		if err == nil {
			return v
		}
		if IsUnchecked(err) {
			panic(err)
		}
		fallback := handler(err)
		if fallback.IsZero() {
			panic(invalidHandler("Func1.Recover", err))
		}
		logging.Logger().Warn("recovering from failure", zap.String("computation", "Func1"), zap.Error(err))
		return fallback.Apply(a)
	})
}

// Lift returns the pure counterpart of f that reports every outcome as a
// Result and never panics on failure.
func (f Func1[A, R]) Lift() pure.Func1[A, Result[R]] {
	requireFunc(f.call != nil, "Func1.Lift")
	call := f.call
	return pure.F1(func(a A) Result[R] {
		return ResultOf[R](call(a))
	})
}

func (f Func1[A, R]) Partial(a A) Func0[R] {
	requireFunc(f.call != nil, "Func1.Partial")
	call := f.call
	return Func0[R]{call: func() (R, error) {
		return call(a)
	}}
}

// Memoized caches the successful results of f, one per argument, the way
// pure.Func1.Memoized does. Failures are returned but never cached, so a
// failed argument is computed again on its next call.
func (f Func1[A, R]) Memoized() Func1[A, R] {
	return f.MemoizedWith(pure.DefaultMemoConfig())
}

func (f Func1[A, R]) MemoizedWith(config pure.MemoConfig) Func1[A, R] {
	if f.table != nil {
		return f
	}
	requireFunc(f.call != nil, "Func1.Memoized")
	table := memo.NewTable[R](config)
	call := f.call
	return Func1[A, R]{
		call: func(a A) (R, error) {
			return table.Get([]memo.ComparableOrStringer{a}, func() (R, error) {
				return call(a)
			})
		},
		table: table,
	}
}

// --- Func2 ---

func (f Func2[A, B, R]) Apply(a A, b B) (R, error) {
	return f.call(a, b)
}

func (Func2[A, B, R]) Arity() int {
	return 2
}

func (f Func2[A, B, R]) IsZero() bool {
	return f.call == nil
}

func (f Func2[A, B, R]) IsMemoized() bool {
	return f.table != nil
}

func (f Func2[A, B, R]) Nest() pure.Func2[A, B, R] {
	requireFunc(f.call != nil, "Func2.Nest")
	call := f.call
	return pure.F2(func(a A, b B) R {
		v, err := call(a, b)
		if err != nil {
			panic(nest(err))
		}
		return v
	})
}

func (f Func2[A, B, R]) Recover(handler func(error) pure.Func2[A, B, R]) pure.Func2[A, B, R] {
	requireFunc(f.call != nil, "Func2.Recover")
	requireFunc(handler != nil, "Func2.Recover: handler")
	call := f.call
	return pure.F2(func(a A, b B) R {
		v, err := call(a, b)
		if err == nil {
			return v
		}
		if IsUnchecked(err) {
			panic(err)
		}
		fallback := handler(err)
		if fallback.IsZero() {
			panic(invalidHandler("Func2.Recover", err))
		}
		logging.Logger().Warn("recovering from failure", zap.String("computation", "Func2"), zap.Error(err))
		return fallback.Apply(a, b)
	})
}

func (f Func2[A, B, R]) Lift() pure.Func2[A, B, Result[R]] {
	requireFunc(f.call != nil, "Func2.Lift")
	call := f.call
	return pure.F2(func(a A, b B) Result[R] {
		return ResultOf[R](call(a, b))
	})
}

func (f Func2[A, B, R]) Partial(a A) Func1[B, R] {
	requireFunc(f.call != nil, "Func2.Partial")
	call := f.call
	return Func1[B, R]{call: func(b B) (R, error) {
		return call(a, b)
	}}
}

func (f Func2[A, B, R]) Tupled() Func1[pure.Tuple2[A, B], R] {
	requireFunc(f.call != nil, "Func2.Tupled")
	call := f.call
	return Func1[pure.Tuple2[A, B], R]{call: func(t pure.Tuple2[A, B]) (R, error) {
		return call(t.First, t.Second)
	}}
}

func (f Func2[A, B, R]) Reversed() Func2[B, A, R] {
	requireFunc(f.call != nil, "Func2.Reversed")
	call := f.call
	return Func2[B, A, R]{call: func(b B, a A) (R, error) {
		return call(a, b)
	}}
}

func (f Func2[A, B, R]) Memoized() Func2[A, B, R] {
	return f.MemoizedWith(pure.DefaultMemoConfig())
}

func (f Func2[A, B, R]) MemoizedWith(config pure.MemoConfig) Func2[A, B, R] {
	if f.table != nil {
		return f
	}
	requireFunc(f.call != nil, "Func2.Memoized")
	table := memo.NewTable[R](config)
	call := f.call
	return Func2[A, B, R]{
		call: func(a A, b B) (R, error) {
			return table.Get([]memo.ComparableOrStringer{a, b}, func() (R, error) {
				return call(a, b)
			})
		},
		table: table,
	}
}

// --- Func3 ---

func (f Func3[A, B, C, R]) Apply(a A, b B, c C) (R, error) {
	return f.call(a, b, c)
}

func (Func3[A, B, C, R]) Arity() int {
	return 3
}

func (f Func3[A, B, C, R]) IsZero() bool {
	return f.call == nil
}

func (f Func3[A, B, C, R]) IsMemoized() bool {
	return f.table != nil
}

func (f Func3[A, B, C, R]) Nest() pure.Func3[A, B, C, R] {
	requireFunc(f.call != nil, "Func3.Nest")
	call := f.call
	return pure.F3(func(a A, b B, c C) R {
		v, err := call(a, b, c)
		if err != nil {
			panic(nest(err))
		}
		return v
	})
}

func (f Func3[A, B, C, R]) Recover(handler func(error) pure.Func3[A, B, C, R]) pure.Func3[A, B, C, R] {
	requireFunc(f.call != nil, "Func3.Recover")
	requireFunc(handler != nil, "Func3.Recover: handler")
	call := f.call
	return pure.F3(func(a A, b B, c C) R {
		v, err := call(a, b, c)
		if err == nil {
			return v
		}
		if IsUnchecked(err) {
			panic(err)
		}
		fallback := handler(err)
		if fallback.IsZero() {
			panic(invalidHandler("Func3.Recover", err))
		}
		logging.Logger().Warn("recovering from failure", zap.String("computation", "Func3"), zap.Error(err))
		return fallback.Apply(a, b, c)
	})
}

func (f Func3[A, B, C, R]) Lift() pure.Func3[A, B, C, Result[R]] {
	requireFunc(f.call != nil, "Func3.Lift")
	call := f.call
	return pure.F3(func(a A, b B, c C) Result[R] {
		return ResultOf[R](call(a, b, c))
	})
}

func (f Func3[A, B, C, R]) Partial(a A) Func2[B, C, R] {
	requireFunc(f.call != nil, "Func3.Partial")
	call := f.call
	return Func2[B, C, R]{call: func(b B, c C) (R, error) {
		return call(a, b, c)
	}}
}

func (f Func3[A, B, C, R]) Tupled() Func1[pure.Tuple3[A, B, C], R] {
	requireFunc(f.call != nil, "Func3.Tupled")
	call := f.call
	return Func1[pure.Tuple3[A, B, C], R]{call: func(t pure.Tuple3[A, B, C]) (R, error) {
		return call(t.First, t.Second, t.Third)
	}}
}

// Reversed swaps the first and the third argument.
func (f Func3[A, B, C, R]) Reversed() Func3[C, B, A, R] {
	requireFunc(f.call != nil, "Func3.Reversed")
	call := f.call
	return Func3[C, B, A, R]{call: func(c C, b B, a A) (R, error) {
		return call(a, b, c)
	}}
}

func (f Func3[A, B, C, R]) Memoized() Func3[A, B, C, R] {
	return f.MemoizedWith(pure.DefaultMemoConfig())
}

func (f Func3[A, B, C, R]) MemoizedWith(config pure.MemoConfig) Func3[A, B, C, R] {
	if f.table != nil {
		return f
	}
	requireFunc(f.call != nil, "Func3.Memoized")
	table := memo.NewTable[R](config)
	call := f.call
	return Func3[A, B, C, R]{
		call: func(a A, b B, c C) (R, error) {
			return table.Get([]memo.ComparableOrStringer{a, b, c}, func() (R, error) {
				return call(a, b, c)
			})
		},
		table: table,
	}
}
