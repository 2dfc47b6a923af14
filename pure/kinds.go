package pure

import "golang.org/x/exp/constraints"

// Number covers every primitive numeric kind: signed and unsigned integers
// of all widths (byte, rune and int16 included) and both float widths.
type Number interface {
	constraints.Integer | constraints.Float
}

// Primitive is Number plus bool, the kinds that have no reference form.
type Primitive interface {
	~bool | Number
}

// Convert is the numeric conversion From -> To with Go conversion
// semantics (truncation toward zero, wrap-around on overflow).
func Convert[From, To Number]() Func1[From, To] {
	return Func1[From, To]{call: func(v From) To {
		return To(v)
	}}
}

func Add[T Number]() Func2[T, T, T] {
	return Func2[T, T, T]{call: func(a, b T) T {
		return a + b
	}}
}

func Multiply[T Number]() Func2[T, T, T] {
	return Func2[T, T, T]{call: func(a, b T) T {
		return a * b
	}}
}

func Min[T constraints.Ordered]() Func2[T, T, T] {
	return Func2[T, T, T]{call: func(a, b T) T {
		if b < a {
			return b
		}
		return a
	}}
}

func Max[T constraints.Ordered]() Func2[T, T, T] {
	return Func2[T, T, T]{call: func(a, b T) T {
		if b > a {
			return b
		}
		return a
	}}
}

// IsZeroValue holds for the zero value of a primitive kind (false, 0, 0.0).
func IsZeroValue[T Primitive]() Predicate1[T] {
	return Predicate1[T]{test: func(v T) bool {
		var zero T
		return v == zero
	}}
}

func Identity[T any]() Func1[T, T] {
	return Func1[T, T]{call: func(v T) T {
		return v
	}}
}

// Constant is a supplier that always returns v.
func Constant[T any](v T) Func0[T] {
	return Func0[T]{call: func() T {
		return v
	}}
}
