package pure_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/lambda_ive_go/pure"
)

func assertNilFunctionPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !assert.True(t, ok, "expected an error panic, got %v", r) {
			return
		}
		assert.ErrorIs(t, err, pure.ErrNilFunction)
	}()
	fn()
}

func TestConstructors_PanicOnNil(t *testing.T) {
	assertNilFunctionPanic(t, func() { pure.F0[int](nil) })
	assertNilFunctionPanic(t, func() { pure.F1[int, int](nil) })
	assertNilFunctionPanic(t, func() { pure.F2[int, int, int](nil) })
	assertNilFunctionPanic(t, func() { pure.F3[int, int, int, int](nil) })
	assertNilFunctionPanic(t, func() { pure.P0(nil) })
	assertNilFunctionPanic(t, func() { pure.P2[int, int](nil) })
	assertNilFunctionPanic(t, func() { pure.C1[int](nil) })
}

func TestCombinators_PanicOnZeroValue(t *testing.T) {
	var zero pure.Func2[int, int, int]
	assert.True(t, zero.IsZero())

	assertNilFunctionPanic(t, func() { zero.Partial(1) })
	assertNilFunctionPanic(t, func() { zero.Reversed() })
	assertNilFunctionPanic(t, func() { zero.Tupled() })
	assertNilFunctionPanic(t, func() { zero.Boxed() })
	assertNilFunctionPanic(t, func() { zero.Memoized() })
}

func TestArity(t *testing.T) {
	f0 := pure.F0(func() int { return 0 })
	f1 := pure.F1(func(int) int { return 0 })
	f2 := pure.F2(func(int, int) int { return 0 })
	f3 := pure.F3(func(int, int, int) int { return 0 })

	assert.Equal(t, 0, f0.Arity())
	assert.Equal(t, 1, f1.Arity())
	assert.Equal(t, 2, f2.Arity())
	assert.Equal(t, 3, f3.Arity())
	assert.Equal(t, 2, f3.Partial(1).Arity())
	assert.Equal(t, 1, f3.Partial2(1, 2).Arity())
	assert.Equal(t, 0, f2.Partial2(1, 2).Arity())
}

func TestPartial(t *testing.T) {
	concat := pure.F3(func(a string, b int, c bool) string {
		return a + strconv.Itoa(b) + strconv.FormatBool(c)
	})

	assert.Equal(t, "x1true", concat.Partial("x").Apply(1, true))
	assert.Equal(t, "x1true", concat.Partial2("x", 1).Apply(true))
	assert.Equal(t, "x1true", concat.Partial("x").Partial(1).Partial(true).Apply())
}

func TestTupled_RoundTrip(t *testing.T) {
	sub := pure.F2(func(a, b int) int { return a - b })
	assert.Equal(t, sub.Apply(7, 3), sub.Tupled().Apply(pure.Of2(7, 3)))
	assert.Equal(t, sub.Apply(7, 3), pure.Untupled2(sub.Tupled()).Apply(7, 3))

	join := pure.F3(func(a, b, c string) string { return a + b + c })
	assert.Equal(t, join.Apply("a", "b", "c"), join.Tupled().Apply(pure.Of3("a", "b", "c")))
	assert.Equal(t, "abc", pure.Untupled3(join.Tupled()).Apply("a", "b", "c"))
}

func TestReversed_Involution(t *testing.T) {
	sub := pure.F2(func(a, b int) int { return a - b })
	assert.Equal(t, -4, sub.Reversed().Apply(7, 3))
	assert.Equal(t, sub.Apply(7, 3), sub.Reversed().Reversed().Apply(7, 3))

	show := pure.F3(func(a string, b int, c bool) string {
		return a + strconv.Itoa(b) + strconv.FormatBool(c)
	})
	assert.Equal(t, "x1true", show.Reversed().Apply(true, 1, "x"))
	assert.Equal(t, show.Apply("x", 1, true), show.Reversed().Reversed().Apply("x", 1, true))
}

func TestBoxed_Law(t *testing.T) {
	length := pure.F1(func(s string) int { return len(s) })
	for _, x := range []string{"", "a", "hello"} {
		assert.Equal(t, any(length.Apply(x)), length.Boxed().Apply(any(x)))
	}

	add := pure.F2(func(a, b int) int { return a + b })
	assert.Equal(t, any(5), add.Boxed().Apply(2, 3))
	assert.Equal(t, 5, pure.Unboxed2[int, int, int](add.Boxed()).Apply(2, 3))

	assert.Equal(t, "x", pure.Unboxed0[string](pure.F0(func() string { return "x" }).Boxed()).Apply())
}

func TestBoxed_WrongTypePanics(t *testing.T) {
	length := pure.F1(func(s string) int { return len(s) }).Boxed()
	assert.Panics(t, func() { length.Apply(42) })

	defer func() {
		err, ok := recover().(error)
		assert.True(t, ok)
		assert.ErrorIs(t, err, pure.ErrUnboxedType)
	}()
	pure.Unboxed1[string, string](length).Apply("abc")
}

func TestFunc_ReturnsUnderlying(t *testing.T) {
	f := pure.F1(func(n int) int { return n + 1 })
	assert.Equal(t, 2, f.Func()(1))
}
