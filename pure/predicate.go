package pure

import "github.com/on-the-ground/lambda_ive_go/internal/memo"

// Predicate0 is a pure boolean computation without arguments.
type Predicate0 struct {
	test  func() bool
	table *memo.Table[bool]
}

// Predicate1 is a pure boolean computation of one argument.
type Predicate1[A any] struct {
	test  func(A) bool
	table *memo.Table[bool]
}

// Predicate2 is a pure boolean computation of two arguments.
type Predicate2[A, B any] struct {
	test  func(A, B) bool
	table *memo.Table[bool]
}

// Predicate3 is a pure boolean computation of three arguments.
type Predicate3[A, B, C any] struct {
	test  func(A, B, C) bool
	table *memo.Table[bool]
}

func P0(p func() bool) Predicate0 {
	requireFunc(p != nil, "P0")
	return Predicate0{test: p}
}

func P1[A any](p func(A) bool) Predicate1[A] {
	requireFunc(p != nil, "P1")
	return Predicate1[A]{test: p}
}

func P2[A, B any](p func(A, B) bool) Predicate2[A, B] {
	requireFunc(p != nil, "P2")
	return Predicate2[A, B]{test: p}
}

func P3[A, B, C any](p func(A, B, C) bool) Predicate3[A, B, C] {
	requireFunc(p != nil, "P3")
	return Predicate3[A, B, C]{test: p}
}

// IsEqual1 holds only for arguments equal to a.
func IsEqual1[A comparable](a A) Predicate1[A] {
	return Predicate1[A]{test: func(x A) bool {
		return x == a
	}}
}

// IsEqual2 holds only when both arguments equal (a, b).
func IsEqual2[A, B comparable](a A, b B) Predicate2[A, B] {
	return Predicate2[A, B]{test: func(x A, y B) bool {
		return x == a && y == b
	}}
}

// IsEqual3 holds only when all three arguments equal (a, b, c).
func IsEqual3[A, B, C comparable](a A, b B, c C) Predicate3[A, B, C] {
	return Predicate3[A, B, C]{test: func(x A, y B, z C) bool {
		return x == a && y == b && z == c
	}}
}

// Not is p.Negate(), handy as an argument to higher order functions.
func Not[A any](p Predicate1[A]) Predicate1[A] {
	return p.Negate()
}

// --- Predicate0 ---

func (p Predicate0) Test() bool {
	return p.test()
}

func (Predicate0) Arity() int {
	return 0
}

func (p Predicate0) IsZero() bool {
	return p.test == nil
}

func (p Predicate0) IsMemoized() bool {
	return p.table != nil
}

func (p Predicate0) Negate() Predicate0 {
	requireFunc(p.test != nil, "Predicate0.Negate")
	test := p.test
	return Predicate0{test: func() bool { return !test() }}
}

// And evaluates other only when p holds.
func (p Predicate0) And(other Predicate0) Predicate0 {
	requireFunc(p.test != nil && other.test != nil, "Predicate0.And")
	test, otherTest := p.test, other.test
	return Predicate0{test: func() bool { return test() && otherTest() }}
}

// Or evaluates other only when p does not hold.
func (p Predicate0) Or(other Predicate0) Predicate0 {
	requireFunc(p.test != nil && other.test != nil, "Predicate0.Or")
	test, otherTest := p.test, other.test
	return Predicate0{test: func() bool { return test() || otherTest() }}
}

// Xor always evaluates both predicates.
func (p Predicate0) Xor(other Predicate0) Predicate0 {
	requireFunc(p.test != nil && other.test != nil, "Predicate0.Xor")
	test, otherTest := p.test, other.test
	return Predicate0{test: func() bool { return test() != otherTest() }}
}

// AsFunc keeps the memo table of p, so the result of a memoized predicate is
// already memoized.
func (p Predicate0) AsFunc() Func0[bool] {
	requireFunc(p.test != nil, "Predicate0.AsFunc")
	return Func0[bool]{call: p.test, table: p.table}
}

func (p Predicate0) Memoized() Predicate0 {
	return p.MemoizedWith(DefaultMemoConfig())
}

func (p Predicate0) MemoizedWith(config MemoConfig) Predicate0 {
	if p.table != nil {
		return p
	}
	requireFunc(p.test != nil, "Predicate0.Memoized")
	table := memo.NewTable[bool](config)
	test := p.test
	return Predicate0{
		test:  func() bool { return memoGet(table, test) },
		table: table,
	}
}

// --- Predicate1 ---

func (p Predicate1[A]) Test(a A) bool {
	return p.test(a)
}

func (Predicate1[A]) Arity() int {
	return 1
}

func (p Predicate1[A]) IsZero() bool {
	return p.test == nil
}

func (p Predicate1[A]) IsMemoized() bool {
	return p.table != nil
}

func (p Predicate1[A]) Negate() Predicate1[A] {
	requireFunc(p.test != nil, "Predicate1.Negate")
	test := p.test
	return Predicate1[A]{test: func(a A) bool { return !test(a) }}
}

// And evaluates other only when p holds.
func (p Predicate1[A]) And(other Predicate1[A]) Predicate1[A] {
	requireFunc(p.test != nil && other.test != nil, "Predicate1.And")
	test, otherTest := p.test, other.test
	return Predicate1[A]{test: func(a A) bool { return test(a) && otherTest(a) }}
}

// Or evaluates other only when p does not hold.
func (p Predicate1[A]) Or(other Predicate1[A]) Predicate1[A] {
	requireFunc(p.test != nil && other.test != nil, "Predicate1.Or")
	test, otherTest := p.test, other.test
	return Predicate1[A]{test: func(a A) bool { return test(a) || otherTest(a) }}
}

// Xor always evaluates both predicates.
func (p Predicate1[A]) Xor(other Predicate1[A]) Predicate1[A] {
	requireFunc(p.test != nil && other.test != nil, "Predicate1.Xor")
	test, otherTest := p.test, other.test
	return Predicate1[A]{test: func(a A) bool { return test(a) != otherTest(a) }}
}

func (p Predicate1[A]) Partial(a A) Predicate0 {
	requireFunc(p.test != nil, "Predicate1.Partial")
	test := p.test
	return Predicate0{test: func() bool { return test(a) }}
}

func (p Predicate1[A]) Boxed() Predicate1[any] {
	requireFunc(p.test != nil, "Predicate1.Boxed")
	test := p.test
	return Predicate1[any]{test: func(a any) bool { return test(unbox[A](a)) }}
}

func (p Predicate1[A]) AsFunc() Func1[A, bool] {
	requireFunc(p.test != nil, "Predicate1.AsFunc")
	return Func1[A, bool]{call: p.test, table: p.table}
}

// Memoized caches one answer per argument. See Func1.Memoized.
func (p Predicate1[A]) Memoized() Predicate1[A] {
	return p.MemoizedWith(DefaultMemoConfig())
}

func (p Predicate1[A]) MemoizedWith(config MemoConfig) Predicate1[A] {
	if p.table != nil {
		return p
	}
	requireFunc(p.test != nil, "Predicate1.Memoized")
	table := memo.NewTable[bool](config)
	test := p.test
	return Predicate1[A]{
		test: func(a A) bool {
			return memoGet(table, func() bool { return test(a) }, a)
		},
		table: table,
	}
}

// --- Predicate2 ---

func (p Predicate2[A, B]) Test(a A, b B) bool {
	return p.test(a, b)
}

func (Predicate2[A, B]) Arity() int {
	return 2
}

func (p Predicate2[A, B]) IsZero() bool {
	return p.test == nil
}

func (p Predicate2[A, B]) IsMemoized() bool {
	return p.table != nil
}

func (p Predicate2[A, B]) Negate() Predicate2[A, B] {
	requireFunc(p.test != nil, "Predicate2.Negate")
	test := p.test
	return Predicate2[A, B]{test: func(a A, b B) bool { return !test(a, b) }}
}

func (p Predicate2[A, B]) And(other Predicate2[A, B]) Predicate2[A, B] {
	requireFunc(p.test != nil && other.test != nil, "Predicate2.And")
	test, otherTest := p.test, other.test
	return Predicate2[A, B]{test: func(a A, b B) bool { return test(a, b) && otherTest(a, b) }}
}

func (p Predicate2[A, B]) Or(other Predicate2[A, B]) Predicate2[A, B] {
	requireFunc(p.test != nil && other.test != nil, "Predicate2.Or")
	test, otherTest := p.test, other.test
	return Predicate2[A, B]{test: func(a A, b B) bool { return test(a, b) || otherTest(a, b) }}
}

func (p Predicate2[A, B]) Xor(other Predicate2[A, B]) Predicate2[A, B] {
	requireFunc(p.test != nil && other.test != nil, "Predicate2.Xor")
	test, otherTest := p.test, other.test
	return Predicate2[A, B]{test: func(a A, b B) bool { return test(a, b) != otherTest(a, b) }}
}

func (p Predicate2[A, B]) Partial(a A) Predicate1[B] {
	requireFunc(p.test != nil, "Predicate2.Partial")
	test := p.test
	return Predicate1[B]{test: func(b B) bool { return test(a, b) }}
}

func (p Predicate2[A, B]) Partial2(a A, b B) Predicate0 {
	requireFunc(p.test != nil, "Predicate2.Partial2")
	test := p.test
	return Predicate0{test: func() bool { return test(a, b) }}
}

func (p Predicate2[A, B]) Tupled() Predicate1[Tuple2[A, B]] {
	requireFunc(p.test != nil, "Predicate2.Tupled")
	test := p.test
	return Predicate1[Tuple2[A, B]]{test: func(t Tuple2[A, B]) bool {
		return test(t.First, t.Second)
	}}
}

func (p Predicate2[A, B]) Reversed() Predicate2[B, A] {
	requireFunc(p.test != nil, "Predicate2.Reversed")
	test := p.test
	return Predicate2[B, A]{test: func(b B, a A) bool { return test(a, b) }}
}

func (p Predicate2[A, B]) Boxed() Predicate2[any, any] {
	requireFunc(p.test != nil, "Predicate2.Boxed")
	test := p.test
	return Predicate2[any, any]{test: func(a, b any) bool {
		return test(unbox[A](a), unbox[B](b))
	}}
}

func (p Predicate2[A, B]) AsFunc() Func2[A, B, bool] {
	requireFunc(p.test != nil, "Predicate2.AsFunc")
	return Func2[A, B, bool]{call: p.test, table: p.table}
}

func (p Predicate2[A, B]) Memoized() Predicate2[A, B] {
	return p.MemoizedWith(DefaultMemoConfig())
}

func (p Predicate2[A, B]) MemoizedWith(config MemoConfig) Predicate2[A, B] {
	if p.table != nil {
		return p
	}
	requireFunc(p.test != nil, "Predicate2.Memoized")
	table := memo.NewTable[bool](config)
	test := p.test
	return Predicate2[A, B]{
		test: func(a A, b B) bool {
			return memoGet(table, func() bool { return test(a, b) }, a, b)
		},
		table: table,
	}
}

// --- Predicate3 ---

func (p Predicate3[A, B, C]) Test(a A, b B, c C) bool {
	return p.test(a, b, c)
}

func (Predicate3[A, B, C]) Arity() int {
	return 3
}

func (p Predicate3[A, B, C]) IsZero() bool {
	return p.test == nil
}

func (p Predicate3[A, B, C]) IsMemoized() bool {
	return p.table != nil
}

func (p Predicate3[A, B, C]) Negate() Predicate3[A, B, C] {
	requireFunc(p.test != nil, "Predicate3.Negate")
	test := p.test
	return Predicate3[A, B, C]{test: func(a A, b B, c C) bool { return !test(a, b, c) }}
}

func (p Predicate3[A, B, C]) And(other Predicate3[A, B, C]) Predicate3[A, B, C] {
	requireFunc(p.test != nil && other.test != nil, "Predicate3.And")
	test, otherTest := p.test, other.test
	return Predicate3[A, B, C]{test: func(a A, b B, c C) bool {
		return test(a, b, c) && otherTest(a, b, c)
	}}
}

func (p Predicate3[A, B, C]) Or(other Predicate3[A, B, C]) Predicate3[A, B, C] {
	requireFunc(p.test != nil && other.test != nil, "Predicate3.Or")
	test, otherTest := p.test, other.test
	return Predicate3[A, B, C]{test: func(a A, b B, c C) bool {
		return test(a, b, c) || otherTest(a, b, c)
	}}
}

func (p Predicate3[A, B, C]) Xor(other Predicate3[A, B, C]) Predicate3[A, B, C] {
	requireFunc(p.test != nil && other.test != nil, "Predicate3.Xor")
	test, otherTest := p.test, other.test
	return Predicate3[A, B, C]{test: func(a A, b B, c C) bool {
		return test(a, b, c) != otherTest(a, b, c)
	}}
}

func (p Predicate3[A, B, C]) Partial(a A) Predicate2[B, C] {
	requireFunc(p.test != nil, "Predicate3.Partial")
	test := p.test
	return Predicate2[B, C]{test: func(b B, c C) bool { return test(a, b, c) }}
}

func (p Predicate3[A, B, C]) Partial2(a A, b B) Predicate1[C] {
	requireFunc(p.test != nil, "Predicate3.Partial2")
	test := p.test
	return Predicate1[C]{test: func(c C) bool { return test(a, b, c) }}
}

func (p Predicate3[A, B, C]) Tupled() Predicate1[Tuple3[A, B, C]] {
	requireFunc(p.test != nil, "Predicate3.Tupled")
	test := p.test
	return Predicate1[Tuple3[A, B, C]]{test: func(t Tuple3[A, B, C]) bool {
		return test(t.First, t.Second, t.Third)
	}}
}

// Reversed swaps the first and the third argument.
func (p Predicate3[A, B, C]) Reversed() Predicate3[C, B, A] {
	requireFunc(p.test != nil, "Predicate3.Reversed")
	test := p.test
	return Predicate3[C, B, A]{test: func(c C, b B, a A) bool { return test(a, b, c) }}
}

func (p Predicate3[A, B, C]) Boxed() Predicate3[any, any, any] {
	requireFunc(p.test != nil, "Predicate3.Boxed")
	test := p.test
	return Predicate3[any, any, any]{test: func(a, b, c any) bool {
		return test(unbox[A](a), unbox[B](b), unbox[C](c))
	}}
}

func (p Predicate3[A, B, C]) AsFunc() Func3[A, B, C, bool] {
	requireFunc(p.test != nil, "Predicate3.AsFunc")
	return Func3[A, B, C, bool]{call: p.test, table: p.table}
}

func (p Predicate3[A, B, C]) Memoized() Predicate3[A, B, C] {
	return p.MemoizedWith(DefaultMemoConfig())
}

func (p Predicate3[A, B, C]) MemoizedWith(config MemoConfig) Predicate3[A, B, C] {
	if p.table != nil {
		return p
	}
	requireFunc(p.test != nil, "Predicate3.Memoized")
	table := memo.NewTable[bool](config)
	test := p.test
	return Predicate3[A, B, C]{
		test: func(a A, b B, c C) bool {
			return memoGet(table, func() bool { return test(a, b, c) }, a, b, c)
		},
		table: table,
	}
}
