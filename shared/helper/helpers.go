package helper

import (
	"errors"
	"fmt"
)

var ErrUnexpectedType = errors.New("unexpected type")

// TypedValueOf safely asserts raw to the expected type T.
// A nil raw is accepted when T is an interface type, since that is how a
// nil interface value looks once stored in an any.
func TypedValueOf[T any](raw any) (T, error) {
	if val, ok := raw.(T); ok {
		return val, nil
	}
	var zero T
	if raw == nil && any(zero) == nil {
		return zero, nil
	}
	return zero, fmt.Errorf("%w: %T, want %T", ErrUnexpectedType, raw, zero)
}

// GetTypedValueOf asserts the result of a getter function to the expected type T.
// Returns an error if the getter fails or type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	res, err := getFn()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to get value: %w", err)
	}
	return TypedValueOf[T](res)
}

// MustTypedValue is the panic-on-failure variant of TypedValueOf.
// Use when a mismatch is a programming error (e.g., unboxing a value that
// was boxed from the same signature).
func MustTypedValue[T any](raw any) T {
	res, err := TypedValueOf[T](raw)
	if err != nil {
		panic(err)
	}
	return res
}
