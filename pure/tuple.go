package pure

// Tuple2 is the argument of a tupled arity-2 computation.
// It is comparable whenever its members are, so it can key a memo table.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Tuple3 is the argument of a tupled arity-3 computation.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func Of2[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{First: a, Second: b}
}

func Of3[A, B, C any](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{First: a, Second: b, Third: c}
}

// Unpack ejects the members into multiple return values.
func (t Tuple2[A, B]) Unpack() (A, B) {
	return t.First, t.Second
}

func (t Tuple3[A, B, C]) Unpack() (A, B, C) {
	return t.First, t.Second, t.Third
}
