package checked

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/on-the-ground/lambda_ive_go/internal/logging"
	"github.com/on-the-ground/lambda_ive_go/internal/memo"
	"github.com/on-the-ground/lambda_ive_go/pure"
)

// Predicate1 is a boolean computation of one argument that may fail.
type Predicate1[A any] struct {
	test  func(A) (bool, error)
	table *memo.Table[bool]
}

// Predicate2 is a boolean computation of two arguments that may fail.
type Predicate2[A, B any] struct {
	test  func(A, B) (bool, error)
	table *memo.Table[bool]
}

// Predicate3 is a boolean computation of three arguments that may fail.
type Predicate3[A, B, C any] struct {
	test  func(A, B, C) (bool, error)
	table *memo.Table[bool]
}

func P1[A any](p func(A) (bool, error)) Predicate1[A] {
	requireFunc(p != nil, "P1")
	return Predicate1[A]{test: p}
}

func P2[A, B any](p func(A, B) (bool, error)) Predicate2[A, B] {
	requireFunc(p != nil, "P2")
	return Predicate2[A, B]{test: p}
}

func P3[A, B, C any](p func(A, B, C) (bool, error)) Predicate3[A, B, C] {
	requireFunc(p != nil, "P3")
	return Predicate3[A, B, C]{test: p}
}

// --- Predicate1 ---

func (p Predicate1[A]) Test(a A) (bool, error) {
	return p.test(a)
}

func (Predicate1[A]) Arity() int {
	return 1
}

func (p Predicate1[A]) IsZero() bool {
	return p.test == nil
}

// Negate passes failures through unchanged.
func (p Predicate1[A]) Negate() Predicate1[A] {
	requireFunc(p.test != nil, "Predicate1.Negate")
	test := p.test
	return Predicate1[A]{test: func(a A) (bool, error) {
		ok, err := test(a)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}}
}

// And evaluates other only when p holds. A failure of p is returned without
// evaluating other.
func (p Predicate1[A]) And(other Predicate1[A]) Predicate1[A] {
	requireFunc(p.test != nil && other.test != nil, "Predicate1.And")
	test, otherTest := p.test, other.test
	return Predicate1[A]{test: func(a A) (bool, error) {
		ok, err := test(a)
		if err != nil || !ok {
			return false, err
		}
		return otherTest(a)
	}}
}

// Or evaluates other only when p does not hold.
func (p Predicate1[A]) Or(other Predicate1[A]) Predicate1[A] {
	requireFunc(p.test != nil && other.test != nil, "Predicate1.Or")
	test, otherTest := p.test, other.test
	return Predicate1[A]{test: func(a A) (bool, error) {
		ok, err := test(a)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		return otherTest(a)
	}}
}

// Xor evaluates both predicates and reports the failures of both.
func (p Predicate1[A]) Xor(other Predicate1[A]) Predicate1[A] {
	requireFunc(p.test != nil && other.test != nil, "Predicate1.Xor")
	test, otherTest := p.test, other.test
	return Predicate1[A]{test: func(a A) (bool, error) {
		ok, err := test(a)
		otherOk, otherErr := otherTest(a)
		if combined := multierr.Combine(err, otherErr); combined != nil {
			return false, combined
		}
		return ok != otherOk, nil
	}}
}

// Nest is Func1.Nest for predicates.
func (p Predicate1[A]) Nest() pure.Predicate1[A] {
	requireFunc(p.test != nil, "Predicate1.Nest")
	test := p.test
	return pure.P1(func(a A) bool {
		ok, err := test(a)
		if err != nil {
			panic(nest(err))
		}
		return ok
	})
}

// Recover is Func1.Recover for predicates.
func (p Predicate1[A]) Recover(handler func(error) pure.Predicate1[A]) pure.Predicate1[A] {
	requireFunc(p.test != nil, "Predicate1.Recover")
	requireFunc(handler != nil, "Predicate1.Recover: handler")
	test := p.test
	return pure.P1(func(a A) bool {
		ok, err := test(a)
		if err == nil {
			return ok
		}
		if IsUnchecked(err) {
			panic(err)
		}
		fallback := handler(err)
		if fallback.IsZero() {
			panic(invalidHandler("Predicate1.Recover", err))
		}
		logging.Logger().Warn("recovering from failure", zap.String("computation", "Predicate1"), zap.Error(err))
		return fallback.Test(a)
	})
}

func (p Predicate1[A]) Lift() pure.Func1[A, Result[bool]] {
	requireFunc(p.test != nil, "Predicate1.Lift")
	test := p.test
	return pure.F1(func(a A) Result[bool] {
		return ResultOf[bool](test(a))
	})
}

func (p Predicate1[A]) IsMemoized() bool {
	return p.table != nil
}

// Memoized is Func1.Memoized for predicates: only answers are cached,
// failures are computed again.
func (p Predicate1[A]) Memoized() Predicate1[A] {
	return p.MemoizedWith(pure.DefaultMemoConfig())
}

func (p Predicate1[A]) MemoizedWith(config pure.MemoConfig) Predicate1[A] {
	if p.table != nil {
		return p
	}
	requireFunc(p.test != nil, "Predicate1.Memoized")
	table := memo.NewTable[bool](config)
	test := p.test
	return Predicate1[A]{
		test: func(a A) (bool, error) {
			return table.Get([]memo.ComparableOrStringer{a}, func() (bool, error) {
				return test(a)
			})
		},
		table: table,
	}
}

// --- Predicate2 ---

func (p Predicate2[A, B]) Test(a A, b B) (bool, error) {
	return p.test(a, b)
}

func (Predicate2[A, B]) Arity() int {
	return 2
}

func (p Predicate2[A, B]) IsZero() bool {
	return p.test == nil
}

func (p Predicate2[A, B]) Negate() Predicate2[A, B] {
	requireFunc(p.test != nil, "Predicate2.Negate")
	test := p.test
	return Predicate2[A, B]{test: func(a A, b B) (bool, error) {
		ok, err := test(a, b)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}}
}

func (p Predicate2[A, B]) And(other Predicate2[A, B]) Predicate2[A, B] {
	requireFunc(p.test != nil && other.test != nil, "Predicate2.And")
	test, otherTest := p.test, other.test
	return Predicate2[A, B]{test: func(a A, b B) (bool, error) {
		ok, err := test(a, b)
		if err != nil || !ok {
			return false, err
		}
		return otherTest(a, b)
	}}
}

func (p Predicate2[A, B]) Or(other Predicate2[A, B]) Predicate2[A, B] {
	requireFunc(p.test != nil && other.test != nil, "Predicate2.Or")
	test, otherTest := p.test, other.test
	return Predicate2[A, B]{test: func(a A, b B) (bool, error) {
		ok, err := test(a, b)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		return otherTest(a, b)
	}}
}

func (p Predicate2[A, B]) Xor(other Predicate2[A, B]) Predicate2[A, B] {
	requireFunc(p.test != nil && other.test != nil, "Predicate2.Xor")
	test, otherTest := p.test, other.test
	return Predicate2[A, B]{test: func(a A, b B) (bool, error) {
		ok, err := test(a, b)
		otherOk, otherErr := otherTest(a, b)
		if combined := multierr.Combine(err, otherErr); combined != nil {
			return false, combined
		}
		return ok != otherOk, nil
	}}
}

func (p Predicate2[A, B]) Nest() pure.Predicate2[A, B] {
	requireFunc(p.test != nil, "Predicate2.Nest")
	test := p.test
	return pure.P2(func(a A, b B) bool {
		ok, err := test(a, b)
		if err != nil {
			panic(nest(err))
		}
		return ok
	})
}

func (p Predicate2[A, B]) Recover(handler func(error) pure.Predicate2[A, B]) pure.Predicate2[A, B] {
	requireFunc(p.test != nil, "Predicate2.Recover")
	requireFunc(handler != nil, "Predicate2.Recover: handler")
	test := p.test
	return pure.P2(func(a A, b B) bool {
		ok, err := test(a, b)
		if err == nil {
			return ok
		}
		if IsUnchecked(err) {
			panic(err)
		}
		fallback := handler(err)
		if fallback.IsZero() {
			panic(invalidHandler("Predicate2.Recover", err))
		}
		logging.Logger().Warn("recovering from failure", zap.String("computation", "Predicate2"), zap.Error(err))
		return fallback.Test(a, b)
	})
}

func (p Predicate2[A, B]) Lift() pure.Func2[A, B, Result[bool]] {
	requireFunc(p.test != nil, "Predicate2.Lift")
	test := p.test
	return pure.F2(func(a A, b B) Result[bool] {
		return ResultOf[bool](test(a, b))
	})
}

func (p Predicate2[A, B]) Partial(a A) Predicate1[B] {
	requireFunc(p.test != nil, "Predicate2.Partial")
	test := p.test
	return Predicate1[B]{test: func(b B) (bool, error) {
		return test(a, b)
	}}
}

func (p Predicate2[A, B]) IsMemoized() bool {
	return p.table != nil
}

func (p Predicate2[A, B]) Memoized() Predicate2[A, B] {
	return p.MemoizedWith(pure.DefaultMemoConfig())
}

func (p Predicate2[A, B]) MemoizedWith(config pure.MemoConfig) Predicate2[A, B] {
	if p.table != nil {
		return p
	}
	requireFunc(p.test != nil, "Predicate2.Memoized")
	table := memo.NewTable[bool](config)
	test := p.test
	return Predicate2[A, B]{
		test: func(a A, b B) (bool, error) {
			return table.Get([]memo.ComparableOrStringer{a, b}, func() (bool, error) {
				return test(a, b)
			})
		},
		table: table,
	}
}

// --- Predicate3 ---

func (p Predicate3[A, B, C]) Test(a A, b B, c C) (bool, error) {
	return p.test(a, b, c)
}

func (Predicate3[A, B, C]) Arity() int {
	return 3
}

func (p Predicate3[A, B, C]) IsZero() bool {
	return p.test == nil
}

func (p Predicate3[A, B, C]) Negate() Predicate3[A, B, C] {
	requireFunc(p.test != nil, "Predicate3.Negate")
	test := p.test
	return Predicate3[A, B, C]{test: func(a A, b B, c C) (bool, error) {
		ok, err := test(a, b, c)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}}
}

func (p Predicate3[A, B, C]) And(other Predicate3[A, B, C]) Predicate3[A, B, C] {
	requireFunc(p.test != nil && other.test != nil, "Predicate3.And")
	test, otherTest := p.test, other.test
	return Predicate3[A, B, C]{test: func(a A, b B, c C) (bool, error) {
		ok, err := test(a, b, c)
		if err != nil || !ok {
			return false, err
		}
		return otherTest(a, b, c)
	}}
}

func (p Predicate3[A, B, C]) Or(other Predicate3[A, B, C]) Predicate3[A, B, C] {
	requireFunc(p.test != nil && other.test != nil, "Predicate3.Or")
	test, otherTest := p.test, other.test
	return Predicate3[A, B, C]{test: func(a A, b B, c C) (bool, error) {
		ok, err := test(a, b, c)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		return otherTest(a, b, c)
	}}
}

func (p Predicate3[A, B, C]) Xor(other Predicate3[A, B, C]) Predicate3[A, B, C] {
	requireFunc(p.test != nil && other.test != nil, "Predicate3.Xor")
	test, otherTest := p.test, other.test
	return Predicate3[A, B, C]{test: func(a A, b B, c C) (bool, error) {
		ok, err := test(a, b, c)
		otherOk, otherErr := otherTest(a, b, c)
		if combined := multierr.Combine(err, otherErr); combined != nil {
			return false, combined
		}
		return ok != otherOk, nil
	}}
}

func (p Predicate3[A, B, C]) Nest() pure.Predicate3[A, B, C] {
	requireFunc(p.test != nil, "Predicate3.Nest")
	test := p.test
	return pure.P3(func(a A, b B, c C) bool {
		ok, err := test(a, b, c)
		if err != nil {
			panic(nest(err))
		}
		return ok
	})
}

func (p Predicate3[A, B, C]) Recover(handler func(error) pure.Predicate3[A, B, C]) pure.Predicate3[A, B, C] {
	requireFunc(p.test != nil, "Predicate3.Recover")
	requireFunc(handler != nil, "Predicate3.Recover: handler")
	test := p.test
	return pure.P3(func(a A, b B, c C) bool {
		ok, err := test(a, b, c)
		if err == nil {
			return ok
		}
		if IsUnchecked(err) {
			panic(err)
		}
		fallback := handler(err)
		if fallback.IsZero() {
			panic(invalidHandler("Predicate3.Recover", err))
		}
		logging.Logger().Warn("recovering from failure", zap.String("computation", "Predicate3"), zap.Error(err))
		return fallback.Test(a, b, c)
	})
}

func (p Predicate3[A, B, C]) Lift() pure.Func3[A, B, C, Result[bool]] {
	requireFunc(p.test != nil, "Predicate3.Lift")
	test := p.test
	return pure.F3(func(a A, b B, c C) Result[bool] {
		return ResultOf[bool](test(a, b, c))
	})
}

func (p Predicate3[A, B, C]) Partial(a A) Predicate2[B, C] {
	requireFunc(p.test != nil, "Predicate3.Partial")
	test := p.test
	return Predicate2[B, C]{test: func(b B, c C) (bool, error) {
		return test(a, b, c)
	}}
}

func (p Predicate3[A, B, C]) IsMemoized() bool {
	return p.table != nil
}

func (p Predicate3[A, B, C]) Memoized() Predicate3[A, B, C] {
	return p.MemoizedWith(pure.DefaultMemoConfig())
}

func (p Predicate3[A, B, C]) MemoizedWith(config pure.MemoConfig) Predicate3[A, B, C] {
	if p.table != nil {
		return p
	}
	requireFunc(p.test != nil, "Predicate3.Memoized")
	table := memo.NewTable[bool](config)
	test := p.test
	return Predicate3[A, B, C]{
		test: func(a A, b B, c C) (bool, error) {
			return table.Get([]memo.ComparableOrStringer{a, b, c}, func() (bool, error) {
				return test(a, b, c)
			})
		},
		table: table,
	}
}
