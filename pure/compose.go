package pure

// Go methods cannot declare type parameters, so every combinator that changes
// a slot type lives here as a function.

// Compose1 maps the argument through before, then applies f.
func Compose1[A0, A, R any](f Func1[A, R], before func(A0) A) Func1[A0, R] {
	requireFunc(f.call != nil, "Compose1: f")
	requireFunc(before != nil, "Compose1: before")
	call := f.call
	return Func1[A0, R]{call: func(a A0) R {
		return call(before(a))
	}}
}

// Compose2 maps each argument through its own adapter, in slot order, then
// applies f.
func Compose2[A0, B0, A, B, R any](
	f Func2[A, B, R],
	beforeA func(A0) A,
	beforeB func(B0) B,
) Func2[A0, B0, R] {
	requireFunc(f.call != nil, "Compose2: f")
	requireFunc(beforeA != nil && beforeB != nil, "Compose2: before")
	call := f.call
	return Func2[A0, B0, R]{call: func(a A0, b B0) R {
		return call(beforeA(a), beforeB(b))
	}}
}

func Compose3[A0, B0, C0, A, B, C, R any](
	f Func3[A, B, C, R],
	beforeA func(A0) A,
	beforeB func(B0) B,
	beforeC func(C0) C,
) Func3[A0, B0, C0, R] {
	requireFunc(f.call != nil, "Compose3: f")
	requireFunc(beforeA != nil && beforeB != nil && beforeC != nil, "Compose3: before")
	call := f.call
	return Func3[A0, B0, C0, R]{call: func(a A0, b B0, c C0) R {
		return call(beforeA(a), beforeB(b), beforeC(c))
	}}
}

// AndThen0 maps the result of f through after.
func AndThen0[R, V any](f Func0[R], after func(R) V) Func0[V] {
	requireFunc(f.call != nil, "AndThen0: f")
	requireFunc(after != nil, "AndThen0: after")
	call := f.call
	return Func0[V]{call: func() V {
		return after(call())
	}}
}

func AndThen1[A, R, V any](f Func1[A, R], after func(R) V) Func1[A, V] {
	requireFunc(f.call != nil, "AndThen1: f")
	requireFunc(after != nil, "AndThen1: after")
	call := f.call
	return Func1[A, V]{call: func(a A) V {
		return after(call(a))
	}}
}

func AndThen2[A, B, R, V any](f Func2[A, B, R], after func(R) V) Func2[A, B, V] {
	requireFunc(f.call != nil, "AndThen2: f")
	requireFunc(after != nil, "AndThen2: after")
	call := f.call
	return Func2[A, B, V]{call: func(a A, b B) V {
		return after(call(a, b))
	}}
}

func AndThen3[A, B, C, R, V any](f Func3[A, B, C, R], after func(R) V) Func3[A, B, C, V] {
	requireFunc(f.call != nil, "AndThen3: f")
	requireFunc(after != nil, "AndThen3: after")
	call := f.call
	return Func3[A, B, C, V]{call: func(a A, b B, c C) V {
		return after(call(a, b, c))
	}}
}

// Consume0 feeds the result of f to consumer.
func Consume0[R any](f Func0[R], consumer func(R)) Consumer0 {
	requireFunc(f.call != nil, "Consume0: f")
	requireFunc(consumer != nil, "Consume0: consumer")
	call := f.call
	return Consumer0{accept: func() {
		consumer(call())
	}}
}

func Consume1[A, R any](f Func1[A, R], consumer func(R)) Consumer1[A] {
	requireFunc(f.call != nil, "Consume1: f")
	requireFunc(consumer != nil, "Consume1: consumer")
	call := f.call
	return Consumer1[A]{accept: func(a A) {
		consumer(call(a))
	}}
}

func Consume2[A, B, R any](f Func2[A, B, R], consumer func(R)) Consumer2[A, B] {
	requireFunc(f.call != nil, "Consume2: f")
	requireFunc(consumer != nil, "Consume2: consumer")
	call := f.call
	return Consumer2[A, B]{accept: func(a A, b B) {
		consumer(call(a, b))
	}}
}

func Consume3[A, B, C, R any](f Func3[A, B, C, R], consumer func(R)) Consumer3[A, B, C] {
	requireFunc(f.call != nil, "Consume3: f")
	requireFunc(consumer != nil, "Consume3: consumer")
	call := f.call
	return Consumer3[A, B, C]{accept: func(a A, b B, c C) {
		consumer(call(a, b, c))
	}}
}

func ComposePredicate1[A0, A any](p Predicate1[A], before func(A0) A) Predicate1[A0] {
	requireFunc(p.test != nil, "ComposePredicate1: p")
	requireFunc(before != nil, "ComposePredicate1: before")
	test := p.test
	return Predicate1[A0]{test: func(a A0) bool {
		return test(before(a))
	}}
}

func ComposePredicate2[A0, B0, A, B any](
	p Predicate2[A, B],
	beforeA func(A0) A,
	beforeB func(B0) B,
) Predicate2[A0, B0] {
	requireFunc(p.test != nil, "ComposePredicate2: p")
	requireFunc(beforeA != nil && beforeB != nil, "ComposePredicate2: before")
	test := p.test
	return Predicate2[A0, B0]{test: func(a A0, b B0) bool {
		return test(beforeA(a), beforeB(b))
	}}
}

func ComposePredicate3[A0, B0, C0, A, B, C any](
	p Predicate3[A, B, C],
	beforeA func(A0) A,
	beforeB func(B0) B,
	beforeC func(C0) C,
) Predicate3[A0, B0, C0] {
	requireFunc(p.test != nil, "ComposePredicate3: p")
	requireFunc(beforeA != nil && beforeB != nil && beforeC != nil, "ComposePredicate3: before")
	test := p.test
	return Predicate3[A0, B0, C0]{test: func(a A0, b B0, c C0) bool {
		return test(beforeA(a), beforeB(b), beforeC(c))
	}}
}

func ComposeConsumer1[A0, A any](c Consumer1[A], before func(A0) A) Consumer1[A0] {
	requireFunc(c.accept != nil, "ComposeConsumer1: c")
	requireFunc(before != nil, "ComposeConsumer1: before")
	accept := c.accept
	return Consumer1[A0]{accept: func(a A0) {
		accept(before(a))
	}}
}

func ComposeConsumer2[A0, B0, A, B any](
	c Consumer2[A, B],
	beforeA func(A0) A,
	beforeB func(B0) B,
) Consumer2[A0, B0] {
	requireFunc(c.accept != nil, "ComposeConsumer2: c")
	requireFunc(beforeA != nil && beforeB != nil, "ComposeConsumer2: before")
	accept := c.accept
	return Consumer2[A0, B0]{accept: func(a A0, b B0) {
		accept(beforeA(a), beforeB(b))
	}}
}

func ComposeConsumer3[A0, B0, C0, A, B, C any](
	c Consumer3[A, B, C],
	beforeA func(A0) A,
	beforeB func(B0) B,
	beforeC func(C0) C,
) Consumer3[A0, B0, C0] {
	requireFunc(c.accept != nil, "ComposeConsumer3: c")
	requireFunc(beforeA != nil && beforeB != nil && beforeC != nil, "ComposeConsumer3: before")
	accept := c.accept
	return Consumer3[A0, B0, C0]{accept: func(a A0, b B0, cc C0) {
		accept(beforeA(a), beforeB(b), beforeC(cc))
	}}
}

// Untupled2 is the inverse of Func2.Tupled.
func Untupled2[A, B, R any](f Func1[Tuple2[A, B], R]) Func2[A, B, R] {
	requireFunc(f.call != nil, "Untupled2")
	call := f.call
	return Func2[A, B, R]{call: func(a A, b B) R {
		return call(Tuple2[A, B]{First: a, Second: b})
	}}
}

// Untupled3 is the inverse of Func3.Tupled.
func Untupled3[A, B, C, R any](f Func1[Tuple3[A, B, C], R]) Func3[A, B, C, R] {
	requireFunc(f.call != nil, "Untupled3")
	call := f.call
	return Func3[A, B, C, R]{call: func(a A, b B, c C) R {
		return call(Tuple3[A, B, C]{First: a, Second: b, Third: c})
	}}
}

// Unboxed0 restores the result type of a boxed supplier. A result of another
// dynamic type panics with ErrUnboxedType.
func Unboxed0[R any](f Func0[any]) Func0[R] {
	requireFunc(f.call != nil, "Unboxed0")
	call := f.call
	return Func0[R]{call: func() R {
		return unbox[R](call())
	}}
}

func Unboxed1[A, R any](f Func1[any, any]) Func1[A, R] {
	requireFunc(f.call != nil, "Unboxed1")
	call := f.call
	return Func1[A, R]{call: func(a A) R {
		return unbox[R](call(a))
	}}
}

func Unboxed2[A, B, R any](f Func2[any, any, any]) Func2[A, B, R] {
	requireFunc(f.call != nil, "Unboxed2")
	call := f.call
	return Func2[A, B, R]{call: func(a A, b B) R {
		return unbox[R](call(a, b))
	}}
}

func Unboxed3[A, B, C, R any](f Func3[any, any, any, any]) Func3[A, B, C, R] {
	requireFunc(f.call != nil, "Unboxed3")
	call := f.call
	return Func3[A, B, C, R]{call: func(a A, b B, c C) R {
		return unbox[R](call(a, b, c))
	}}
}
