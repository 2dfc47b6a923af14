package pure

import "github.com/on-the-ground/lambda_ive_go/internal/memo"

// Func0 is a pure computation without arguments (a supplier).
// The zero value is not usable; build one with F0.
type Func0[R any] struct {
	call  func() R
	table *memo.Table[R]
}

// Func1 is a pure computation of one argument.
type Func1[A, R any] struct {
	call  func(A) R
	table *memo.Table[R]
}

// Func2 is a pure computation of two arguments.
type Func2[A, B, R any] struct {
	call  func(A, B) R
	table *memo.Table[R]
}

// Func3 is a pure computation of three arguments.
type Func3[A, B, C, R any] struct {
	call  func(A, B, C) R
	table *memo.Table[R]
}

func F0[R any](f func() R) Func0[R] {
	requireFunc(f != nil, "F0")
	return Func0[R]{call: f}
}

func F1[A, R any](f func(A) R) Func1[A, R] {
	requireFunc(f != nil, "F1")
	return Func1[A, R]{call: f}
}

func F2[A, B, R any](f func(A, B) R) Func2[A, B, R] {
	requireFunc(f != nil, "F2")
	return Func2[A, B, R]{call: f}
}

func F3[A, B, C, R any](f func(A, B, C) R) Func3[A, B, C, R] {
	requireFunc(f != nil, "F3")
	return Func3[A, B, C, R]{call: f}
}

// --- Func0 ---

func (f Func0[R]) Apply() R {
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

// Func returns the underlying Go function.
func (f Func0[R]) Func() func() R {
	return f.call
}

func (f Func0[R]) Boxed() Func0[any] {
	requireFunc(f.call != nil, "Func0.Boxed")
	call := f.call
	return Func0[any]{call: func() any { return call() }}
}

// Memoized computes the value on first use only. See Func1.Memoized.
func (f Func0[R]) Memoized() Func0[R] {
	return f.MemoizedWith(DefaultMemoConfig())
}

func (f Func0[R]) MemoizedWith(config MemoConfig) Func0[R] {
	if f.table != nil {
		return f
	}
	requireFunc(f.call != nil, "Func0.Memoized")
	table := memo.NewTable[R](config)
	call := f.call
	return Func0[R]{
		call:  func() R { return memoGet(table, call) },
		table: table,
	}
}

// --- Func1 ---

func (f Func1[A, R]) Apply(a A) R {
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

func (f Func1[A, R]) Func() func(A) R {
	return f.call
}

// Partial fixes the argument, yielding a supplier.
func (f Func1[A, R]) Partial(a A) Func0[R] {
	requireFunc(f.call != nil, "Func1.Partial")
	call := f.call
	return Func0[R]{call: func() R { return call(a) }}
}

// Boxed erases the slot types. Calling the result with an argument that is
// not an A panics with ErrUnboxedType.
func (f Func1[A, R]) Boxed() Func1[any, any] {
	requireFunc(f.call != nil, "Func1.Boxed")
	call := f.call
	return Func1[any, any]{call: func(a any) any {
		return call(unbox[A](a))
	}}
}

// Memoized returns a computation that caches one result per distinct
// argument and never calls f again for an argument it has seen. The cache is
// unbounded and lives as long as the returned value.
//
// Misses are computed under a single lock per memoized value, so unrelated
// arguments wait for each other and f must not call the memoized value
// recursively; use MemoizedWith for the alternatives.
// Memoizing an already memoized computation returns it unchanged.
//
// Hashable arguments key the cache by value, so only equal arguments share
// a result. A non-hashable fmt.Stringer is keyed by its dynamic type and
// String(); other non-hashable arguments panic.
func (f Func1[A, R]) Memoized() Func1[A, R] {
	return f.MemoizedWith(DefaultMemoConfig())
}

func (f Func1[A, R]) MemoizedWith(config MemoConfig) Func1[A, R] {
	if f.table != nil {
		return f
	}
	requireFunc(f.call != nil, "Func1.Memoized")
	table := memo.NewTable[R](config)
	call := f.call
	return Func1[A, R]{
		call: func(a A) R {
			return memoGet(table, func() R { return call(a) }, a)
		},
		table: table,
	}
}

// --- Func2 ---

func (f Func2[A, B, R]) Apply(a A, b B) R {
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

func (f Func2[A, B, R]) Func() func(A, B) R {
	return f.call
}

func (f Func2[A, B, R]) Partial(a A) Func1[B, R] {
	requireFunc(f.call != nil, "Func2.Partial")
	call := f.call
	return Func1[B, R]{call: func(b B) R { return call(a, b) }}
}

func (f Func2[A, B, R]) Partial2(a A, b B) Func0[R] {
	requireFunc(f.call != nil, "Func2.Partial2")
	call := f.call
	return Func0[R]{call: func() R { return call(a, b) }}
}

func (f Func2[A, B, R]) Tupled() Func1[Tuple2[A, B], R] {
	requireFunc(f.call != nil, "Func2.Tupled")
	call := f.call
	return Func1[Tuple2[A, B], R]{call: func(t Tuple2[A, B]) R {
		return call(t.First, t.Second)
	}}
}

func (f Func2[A, B, R]) Reversed() Func2[B, A, R] {
	requireFunc(f.call != nil, "Func2.Reversed")
	call := f.call
	return Func2[B, A, R]{call: func(b B, a A) R { return call(a, b) }}
}

func (f Func2[A, B, R]) Boxed() Func2[any, any, any] {
	requireFunc(f.call != nil, "Func2.Boxed")
	call := f.call
	return Func2[any, any, any]{call: func(a, b any) any {
		return call(unbox[A](a), unbox[B](b))
	}}
}

// Memoized caches one result per argument pair. See Func1.Memoized.
func (f Func2[A, B, R]) Memoized() Func2[A, B, R] {
	return f.MemoizedWith(DefaultMemoConfig())
}

func (f Func2[A, B, R]) MemoizedWith(config MemoConfig) Func2[A, B, R] {
	if f.table != nil {
		return f
	}
	requireFunc(f.call != nil, "Func2.Memoized")
	table := memo.NewTable[R](config)
	call := f.call
	return Func2[A, B, R]{
		call: func(a A, b B) R {
			return memoGet(table, func() R { return call(a, b) }, a, b)
		},
		table: table,
	}
}

// --- Func3 ---

func (f Func3[A, B, C, R]) Apply(a A, b B, c C) R {
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

func (f Func3[A, B, C, R]) Func() func(A, B, C) R {
	return f.call
}

func (f Func3[A, B, C, R]) Partial(a A) Func2[B, C, R] {
	requireFunc(f.call != nil, "Func3.Partial")
	call := f.call
	return Func2[B, C, R]{call: func(b B, c C) R { return call(a, b, c) }}
}

func (f Func3[A, B, C, R]) Partial2(a A, b B) Func1[C, R] {
	requireFunc(f.call != nil, "Func3.Partial2")
	call := f.call
	return Func1[C, R]{call: func(c C) R { return call(a, b, c) }}
}

func (f Func3[A, B, C, R]) Tupled() Func1[Tuple3[A, B, C], R] {
	requireFunc(f.call != nil, "Func3.Tupled")
	call := f.call
	return Func1[Tuple3[A, B, C], R]{call: func(t Tuple3[A, B, C]) R {
		return call(t.First, t.Second, t.Third)
	}}
}

// Reversed swaps the first and the third argument.
func (f Func3[A, B, C, R]) Reversed() Func3[C, B, A, R] {
	requireFunc(f.call != nil, "Func3.Reversed")
	call := f.call
	return Func3[C, B, A, R]{call: func(c C, b B, a A) R { return call(a, b, c) }}
}

func (f Func3[A, B, C, R]) Boxed() Func3[any, any, any, any] {
	requireFunc(f.call != nil, "Func3.Boxed")
	call := f.call
	return Func3[any, any, any, any]{call: func(a, b, c any) any {
		return call(unbox[A](a), unbox[B](b), unbox[C](c))
	}}
}

// Memoized caches one result per argument triple. See Func1.Memoized.
func (f Func3[A, B, C, R]) Memoized() Func3[A, B, C, R] {
	return f.MemoizedWith(DefaultMemoConfig())
}

func (f Func3[A, B, C, R]) MemoizedWith(config MemoConfig) Func3[A, B, C, R] {
	if f.table != nil {
		return f
	}
	requireFunc(f.call != nil, "Func3.Memoized")
	table := memo.NewTable[R](config)
	call := f.call
	return Func3[A, B, C, R]{
		call: func(a A, b B, c C) R {
			return memoGet(table, func() R { return call(a, b, c) }, a, b, c)
		},
		table: table,
	}
}
