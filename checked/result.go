package checked

import "fmt"

// Result is the outcome of one call to a lifted computation.
type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// ResultOf converts a (value, error) pair. The value is dropped when err is
// not nil.
func ResultOf[T any](value T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(value)
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Get returns the result in the usual Go shape.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Failure returns the error of a failed result, nil otherwise.
func (r Result[T]) Failure() error {
	return r.err
}

// OrElse returns the value, or fallback if the result failed.
func (r Result[T]) OrElse(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Fail(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// MapResult maps the value of a successful result and passes failures
// through.
func MapResult[T, V any](r Result[T], f func(T) V) Result[V] {
	if r.err != nil {
		return Fail[V](r.err)
	}
	return Ok(f(r.value))
}
