package checked_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/on-the-ground/lambda_ive_go/checked"
	"github.com/on-the-ground/lambda_ive_go/pure"
)

var errNegative = errors.New("negative input")

// fatal stands in for the runtime's own panics.
type fatal struct{}

func (fatal) Error() string {
	return "fatal"
}

func (fatal) RuntimeError() {}

var sqrt = checked.F1(func(n int) (int, error) {
	if n < 0 {
		return 0, errNegative
	}
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r, nil
})

func panicOf(fn func()) (r any) {
	defer func() {
		r = recover()
	}()
	fn()
	return nil
}

func TestNest_WrapsCheckedFailure(t *testing.T) {
	nested := sqrt.Nest()
	assert.Equal(t, 3, nested.Apply(9))

	r := panicOf(func() { nested.Apply(-1) })
	var carrier *checked.NestedError
	require.ErrorAs(t, r.(error), &carrier)
	assert.Same(t, errNegative, carrier.Cause)
	assert.Equal(t, errNegative.Error(), carrier.Message)
	assert.ErrorIs(t, carrier, errNegative)
}

func TestNest_PropagatesUncheckedUnchanged(t *testing.T) {
	marked := checked.Unchecked(errNegative)
	f := checked.F0(func() (string, error) { return "", marked })
	assert.Equal(t, marked, panicOf(func() { f.Nest().Apply() }))

	rt := checked.F0(func() (string, error) { return "", fatal{} })
	assert.Equal(t, fatal{}, panicOf(func() { rt.Nest().Apply() }))
}

func TestIsUnchecked(t *testing.T) {
	assert.False(t, checked.IsUnchecked(errNegative))
	assert.True(t, checked.IsUnchecked(checked.Unchecked(errNegative)))
	assert.True(t, checked.IsUnchecked(fatal{}))
	assert.True(t, checked.IsUnchecked(errors.Join(errNegative, fatal{})))
	assert.Nil(t, checked.Unchecked(nil))
	assert.ErrorIs(t, checked.Unchecked(errNegative), errNegative)
}

func TestRecover_AppliesFallbackToSameArguments(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	pure.UseLogger(zap.New(core))
	defer pure.UseLogger(nil)

	var handled error
	recovered := sqrt.Recover(func(err error) pure.Func1[int, int] {
		handled = err
		return pure.F1(func(n int) int { return -n })
	})

	assert.Equal(t, 4, recovered.Apply(16))
	assert.Nil(t, handled)
	assert.Equal(t, 5, recovered.Apply(-5))
	assert.Same(t, errNegative, handled)
	assert.Equal(t, 1, logs.FilterMessage("recovering from failure").Len())
}

func TestRecover_UncheckedSkipsHandler(t *testing.T) {
	called := false
	f := checked.F1(func(int) (int, error) { return 0, fatal{} })
	recovered := f.Recover(func(error) pure.Func1[int, int] {
		called = true
		return pure.Identity[int]()
	})

	assert.Equal(t, fatal{}, panicOf(func() { recovered.Apply(1) }))
	assert.False(t, called)
}

func TestRecover_InvalidHandler(t *testing.T) {
	recovered := sqrt.Recover(func(error) pure.Func1[int, int] {
		return pure.Func1[int, int]{}
	})

	r := panicOf(func() { recovered.Apply(-1) })
	err, ok := r.(error)
	require.True(t, ok)
	assert.ErrorIs(t, err, checked.ErrInvalidHandler)
	assert.NotErrorIs(t, err, errNegative)
	assert.Contains(t, err.Error(), errNegative.Error())
}

func TestRecover_NilHandlerPanicsAtComposition(t *testing.T) {
	r := panicOf(func() { sqrt.Recover(nil) })
	assert.ErrorIs(t, r.(error), pure.ErrNilFunction)
}

func TestLift(t *testing.T) {
	lifted := sqrt.Lift()

	ok := lifted.Apply(25)
	assert.True(t, ok.IsOk())
	assert.Equal(t, 5, ok.OrElse(-1))

	failed := lifted.Apply(-25)
	assert.False(t, failed.IsOk())
	assert.Same(t, errNegative, failed.Failure())
	assert.Equal(t, -1, failed.OrElse(-1))
	_, err := failed.Get()
	assert.ErrorIs(t, err, errNegative)
}

func TestPartialTupledReversed(t *testing.T) {
	div := checked.F2(func(a, b int) (int, error) {
		if b == 0 {
			return 0, errors.New("division by zero")
		}
		return a / b, nil
	})

	v, err := div.Partial(12).Apply(4)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = div.Reversed().Apply(4, 12)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = div.Tupled().Apply(pure.Of2(1, 0))
	assert.EqualError(t, err, "division by zero")

	join := checked.F3(func(a, b, c string) (string, error) { return a + b + c, nil })
	s, err := join.Reversed().Partial("c").Partial("b").Partial("a").Apply()
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
	assert.Equal(t, 0, join.Partial("x").Partial("y").Partial("z").Arity())
	s, _ = join.Tupled().Apply(pure.Of3("x", "y", "z"))
	assert.Equal(t, "xyz", s)
}

func TestCompose_ThreadsFirstFailure(t *testing.T) {
	parse := func(s string) (int, error) { return strconv.Atoi(s) }
	sqrtOfText := checked.Compose1(sqrt, parse)

	v, err := sqrtOfText.Apply("49")
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = sqrtOfText.Apply("x")
	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)

	_, err = sqrtOfText.Apply("-4")
	assert.ErrorIs(t, err, errNegative)

	calls := 0
	sum := checked.F2(func(a, b int) (int, error) {
		calls++
		return a + b, nil
	})
	_, err = checked.Compose2(sum, parse, parse).Apply("1", "two")
	assert.Error(t, err)
	assert.Equal(t, 0, calls)

	v, err = checked.Compose3(checked.F3(func(a, b, c int) (int, error) { return a * b * c, nil }),
		parse, parse, parse).Apply("2", "3", "4")
	require.NoError(t, err)
	assert.Equal(t, 24, v)
}

func TestAndThen_SkipsAfterOnFailure(t *testing.T) {
	calls := 0
	show := func(n int) (string, error) {
		calls++
		return strconv.Itoa(n), nil
	}

	s, err := checked.AndThen1(sqrt, show).Apply(81)
	require.NoError(t, err)
	assert.Equal(t, "9", s)

	_, err = checked.AndThen1(sqrt, show).Apply(-81)
	assert.ErrorIs(t, err, errNegative)
	assert.Equal(t, 1, calls)

	s, err = checked.AndThen0(sqrt.Partial(4), show).Apply()
	require.NoError(t, err)
	assert.Equal(t, "2", s)

	add := checked.F2(func(a, b int) (int, error) { return a + b, nil })
	s, _ = checked.AndThen2(add, show).Apply(1, 2)
	assert.Equal(t, "3", s)

	add3 := checked.F3(func(a, b, c int) (int, error) { return a + b + c, nil })
	s, _ = checked.AndThen3(add3, show).Apply(1, 2, 3)
	assert.Equal(t, "6", s)
}

func TestMemoized_CachesSuccessesOnly(t *testing.T) {
	calls := 0
	attempts := map[int]int{}
	flaky := checked.F1(func(n int) (int, error) {
		calls++
		attempts[n]++
		if attempts[n] == 1 {
			return 0, errors.New("first attempt fails")
		}
		return n * 10, nil
	}).Memoized()

	_, err := flaky.Apply(1)
	assert.Error(t, err)
	v, err := flaky.Apply(1)
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	v, err = flaky.Apply(1)
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, calls)
	assert.True(t, flaky.IsMemoized())
	assert.True(t, flaky.Memoized().IsMemoized())
}

func TestMemoized_ZeroArgument(t *testing.T) {
	calls := 0
	load := checked.F0(func() (string, error) {
		calls++
		return "config", nil
	}).MemoizedWith(pure.NewMemoConfig(pure.Coalesced, 0, 0))

	for i := 0; i < 3; i++ {
		v, err := load.Apply()
		require.NoError(t, err)
		assert.Equal(t, "config", v)
	}
	assert.Equal(t, 1, calls)
}

func TestConstructors_PanicOnNil(t *testing.T) {
	for _, fn := range []func(){
		func() { checked.F0[int](nil) },
		func() { checked.F1[int, int](nil) },
		func() { checked.P2[int, int](nil) },
		func() { checked.C3[int, int, int](nil) },
		func() { checked.Compose1[string](sqrt, nil) },
		func() { checked.Catch1(pure.Func1[int, int]{}) },
	} {
		r := panicOf(fn)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, pure.ErrNilFunction)
	}
}
