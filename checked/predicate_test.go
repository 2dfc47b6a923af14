package checked_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/on-the-ground/lambda_ive_go/checked"
	"github.com/on-the-ground/lambda_ive_go/pure"
)

var (
	errLeft  = errors.New("left failed")
	errRight = errors.New("right failed")
)

type trace struct {
	calls []string
}

func (tr *trace) pred(name string, v bool, err error) checked.Predicate1[int] {
	return checked.P1(func(int) (bool, error) {
		tr.calls = append(tr.calls, name)
		return v, err
	})
}

func TestPredicate_Laws(t *testing.T) {
	tr := &trace{}
	for _, p := range []bool{true, false} {
		for _, q := range []bool{true, false} {
			left, right := tr.pred("p", p, nil), tr.pred("q", q, nil)

			got, err := left.And(right).Test(0)
			require.NoError(t, err)
			assert.Equal(t, p && q, got)

			got, err = left.Or(right).Test(0)
			require.NoError(t, err)
			assert.Equal(t, p || q, got)

			got, err = left.Xor(right).Test(0)
			require.NoError(t, err)
			assert.Equal(t, p != q, got)

			got, err = left.Negate().Test(0)
			require.NoError(t, err)
			assert.Equal(t, !p, got)
		}
	}
}

func TestPredicate_FailureStopsShortCircuit(t *testing.T) {
	tr := &trace{}
	_, err := tr.pred("p", true, errLeft).And(tr.pred("q", true, nil)).Test(0)
	assert.ErrorIs(t, err, errLeft)
	assert.Equal(t, []string{"p"}, tr.calls)

	tr = &trace{}
	_, err = tr.pred("p", false, errLeft).Or(tr.pred("q", true, nil)).Test(0)
	assert.ErrorIs(t, err, errLeft)
	assert.Equal(t, []string{"p"}, tr.calls)

	tr = &trace{}
	_, err = tr.pred("p", false, nil).And(tr.pred("q", true, errRight)).Test(0)
	assert.NoError(t, err)
	assert.Equal(t, []string{"p"}, tr.calls)

	_, err = tr.pred("p", false, errLeft).Negate().Test(0)
	assert.ErrorIs(t, err, errLeft)
}

func TestPredicate_XorReportsBothFailures(t *testing.T) {
	tr := &trace{}
	_, err := tr.pred("p", true, errLeft).Xor(tr.pred("q", true, errRight)).Test(0)

	assert.ErrorIs(t, err, errLeft)
	assert.ErrorIs(t, err, errRight)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Equal(t, []string{"p", "q"}, tr.calls)
}

func TestPredicate_NestRecoverLift(t *testing.T) {
	isSmall := checked.P2(func(a, b int) (bool, error) {
		if a < 0 || b < 0 {
			return false, errLeft
		}
		return a+b < 10, nil
	})

	assert.True(t, isSmall.Nest().Test(1, 2))
	r := panicOf(func() { isSmall.Nest().Test(-1, 2) })
	var carrier *checked.NestedError
	require.ErrorAs(t, r.(error), &carrier)
	assert.ErrorIs(t, carrier.Cause, errLeft)

	lenient := isSmall.Recover(func(error) pure.Predicate2[int, int] {
		return pure.IsEqual2(-1, 2)
	})
	assert.True(t, lenient.Test(-1, 2))
	assert.False(t, lenient.Test(-1, 3))

	lifted := isSmall.Lift()
	assert.True(t, lifted.Apply(1, 1).OrElse(false))
	assert.Same(t, errLeft, lifted.Apply(-1, 1).Failure())

	partial := isSmall.Partial(5)
	ok, err := partial.Test(4)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, partial.Arity())
}

func TestPredicate3(t *testing.T) {
	inOrder := checked.P3(func(a, b, c int) (bool, error) {
		return a <= b && b <= c, nil
	})

	ok, err := inOrder.Test(1, 2, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = inOrder.Negate().Partial(1).Partial(2).Test(1)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.False(t, inOrder.Nest().Test(3, 2, 1))
	assert.Equal(t, 3, inOrder.Arity())
}

func TestComposePredicate_ThreadsFirstFailure(t *testing.T) {
	tested := 0
	positive := checked.P1(func(n int) (bool, error) {
		tested++
		return n > 0, nil
	})
	parsedPositive := checked.ComposePredicate1(positive, strconv.Atoi)

	ok, err := parsedPositive.Test("3")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = parsedPositive.Test("three")
	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)
	assert.Equal(t, 1, tested)

	var adapted []string
	adapt := func(name string, err error) func(string) (int, error) {
		return func(s string) (int, error) {
			adapted = append(adapted, name)
			if err != nil {
				return 0, err
			}
			return strconv.Atoi(s)
		}
	}
	less := checked.P2(func(a, b int) (bool, error) { return a < b, nil })

	ok, err = checked.ComposePredicate2(less, adapt("a", nil), adapt("b", nil)).Test("1", "2")
	require.NoError(t, err)
	assert.True(t, ok)

	adapted = nil
	_, err = checked.ComposePredicate2(less, adapt("a", errLeft), adapt("b", nil)).Test("1", "2")
	assert.ErrorIs(t, err, errLeft)
	assert.Equal(t, []string{"a"}, adapted)

	inOrder := checked.P3(func(a, b, c int) (bool, error) { return a <= b && b <= c, nil })
	adapted = nil
	_, err = checked.ComposePredicate3(inOrder, adapt("a", nil), adapt("b", errRight), adapt("c", nil)).Test("1", "2", "3")
	assert.ErrorIs(t, err, errRight)
	assert.Equal(t, []string{"a", "b"}, adapted)

	ok, err = checked.ComposePredicate3(inOrder, strconv.Atoi, strconv.Atoi, strconv.Atoi).Test("1", "2", "3")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Panics(t, func() { checked.ComposePredicate1[string](positive, nil) })
}

func TestPredicate_MemoizedCachesAnswersOnly(t *testing.T) {
	calls := 0
	failNext := true
	isPrime := checked.P1(func(n int) (bool, error) {
		calls++
		if failNext {
			failNext = false
			return false, errLeft
		}
		for d := 2; d*d <= n; d++ {
			if n%d == 0 {
				return false, nil
			}
		}
		return n > 1, nil
	}).Memoized()

	_, err := isPrime.Test(7)
	assert.ErrorIs(t, err, errLeft)
	for i := 0; i < 2; i++ {
		ok, err := isPrime.Test(7)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Equal(t, 2, calls)
	assert.True(t, isPrime.IsMemoized())
	assert.True(t, isPrime.Memoized().IsMemoized())

	pairs := 0
	divides := checked.P2(func(a, b int) (bool, error) {
		pairs++
		return b%a == 0, nil
	}).MemoizedWith(pure.NewMemoConfig(pure.Striped, 4, 0))
	for i := 0; i < 3; i++ {
		ok, err := divides.Test(3, 9)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Equal(t, 1, pairs)

	between := checked.P3(func(lo, n, hi int) (bool, error) { return lo <= n && n <= hi, nil }).Memoized()
	ok, err := between.Test(1, 2, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, checked.P3(func(int, int, int) (bool, error) { return true, nil }).IsMemoized())
}
