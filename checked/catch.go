package checked

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/lambda_ive_go/pure"
)

// ErrPanicked wraps panic values that are not errors.
var ErrPanicked = errors.New("panicked")

// Catch0 is the checked counterpart of f: a panic while applying f becomes
// the returned error. A *NestedError panic yields its Cause, so
// Catch0(g.Nest()) fails exactly like g.
func Catch0[R any](f pure.Func0[R]) Func0[R] {
	requireFunc(!f.IsZero(), "Catch0")
	return Func0[R]{call: func() (r R, err error) {
		defer catch(&err)
		return f.Apply(), nil
	}}
}

func Catch1[A, R any](f pure.Func1[A, R]) Func1[A, R] {
	requireFunc(!f.IsZero(), "Catch1")
	return Func1[A, R]{call: func(a A) (r R, err error) {
		defer catch(&err)
		return f.Apply(a), nil
	}}
}

func Catch2[A, B, R any](f pure.Func2[A, B, R]) Func2[A, B, R] {
	requireFunc(!f.IsZero(), "Catch2")
	return Func2[A, B, R]{call: func(a A, b B) (r R, err error) {
		defer catch(&err)
		return f.Apply(a, b), nil
	}}
}

func Catch3[A, B, C, R any](f pure.Func3[A, B, C, R]) Func3[A, B, C, R] {
	requireFunc(!f.IsZero(), "Catch3")
	return Func3[A, B, C, R]{call: func(a A, b B, c C) (r R, err error) {
		defer catch(&err)
		return f.Apply(a, b, c), nil
	}}
}

// catch must be deferred directly.
func catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	switch v := r.(type) {
	case *NestedError:
		*err = v.Cause
	case error:
		*err = v
	default:
		*err = fmt.Errorf("%w: %v", ErrPanicked, v)
	}
}
