package checked

// Compose1 maps the argument through before, then applies f. A failure of
// before is returned without calling f.
func Compose1[A0, A, R any](f Func1[A, R], before func(A0) (A, error)) Func1[A0, R] {
	requireFunc(f.call != nil, "Compose1: f")
	requireFunc(before != nil, "Compose1: before")
	call := f.call
	return Func1[A0, R]{call: func(a0 A0) (R, error) {
		a, err := before(a0)
		if err != nil {
			var zero R
			return zero, err
		}
		return call(a)
	}}
}

// Compose2 runs the adapters in slot order and stops at the first failure.
func Compose2[A0, B0, A, B, R any](
	f Func2[A, B, R],
	beforeA func(A0) (A, error),
	beforeB func(B0) (B, error),
) Func2[A0, B0, R] {
	requireFunc(f.call != nil, "Compose2: f")
	requireFunc(beforeA != nil && beforeB != nil, "Compose2: before")
	call := f.call
	return Func2[A0, B0, R]{call: func(a0 A0, b0 B0) (R, error) {
		var zero R
		a, err := beforeA(a0)
		if err != nil {
			return zero, err
		}
		b, err := beforeB(b0)
		if err != nil {
			return zero, err
		}
		return call(a, b)
	}}
}

func Compose3[A0, B0, C0, A, B, C, R any](
	f Func3[A, B, C, R],
	beforeA func(A0) (A, error),
	beforeB func(B0) (B, error),
	beforeC func(C0) (C, error),
) Func3[A0, B0, C0, R] {
	requireFunc(f.call != nil, "Compose3: f")
	requireFunc(beforeA != nil && beforeB != nil && beforeC != nil, "Compose3: before")
	call := f.call
	return Func3[A0, B0, C0, R]{call: func(a0 A0, b0 B0, c0 C0) (R, error) {
		var zero R
		a, err := beforeA(a0)
		if err != nil {
			return zero, err
		}
		b, err := beforeB(b0)
		if err != nil {
			return zero, err
		}
		c, err := beforeC(c0)
		if err != nil {
			return zero, err
		}
		return call(a, b, c)
	}}
}

// AndThen0 maps the result of f through after. A failure of f is returned
// without calling after.
func AndThen0[R, V any](f Func0[R], after func(R) (V, error)) Func0[V] {
	requireFunc(f.call != nil, "AndThen0: f")
	requireFunc(after != nil, "AndThen0: after")
	call := f.call
	return Func0[V]{call: func() (V, error) {
		r, err := call()
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}}
}

func AndThen1[A, R, V any](f Func1[A, R], after func(R) (V, error)) Func1[A, V] {
	requireFunc(f.call != nil, "AndThen1: f")
	requireFunc(after != nil, "AndThen1: after")
	call := f.call
	return Func1[A, V]{call: func(a A) (V, error) {
		r, err := call(a)
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}}
}

func AndThen2[A, B, R, V any](f Func2[A, B, R], after func(R) (V, error)) Func2[A, B, V] {
	requireFunc(f.call != nil, "AndThen2: f")
	requireFunc(after != nil, "AndThen2: after")
	call := f.call
	return Func2[A, B, V]{call: func(a A, b B) (V, error) {
		r, err := call(a, b)
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}}
}

func AndThen3[A, B, C, R, V any](f Func3[A, B, C, R], after func(R) (V, error)) Func3[A, B, C, V] {
	requireFunc(f.call != nil, "AndThen3: f")
	requireFunc(after != nil, "AndThen3: after")
	call := f.call
	return Func3[A, B, C, V]{call: func(a A, b B, c C) (V, error) {
		r, err := call(a, b, c)
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}}
}

// Consume1 feeds the result of f to consumer. A failure of f is returned
// without calling consumer.
func Consume1[A, R any](f Func1[A, R], consumer func(R) error) Consumer1[A] {
	requireFunc(f.call != nil, "Consume1: f")
	requireFunc(consumer != nil, "Consume1: consumer")
	call := f.call
	return Consumer1[A]{accept: func(a A) error {
		r, err := call(a)
		if err != nil {
			return err
		}
		return consumer(r)
	}}
}

func Consume2[A, B, R any](f Func2[A, B, R], consumer func(R) error) Consumer2[A, B] {
	requireFunc(f.call != nil, "Consume2: f")
	requireFunc(consumer != nil, "Consume2: consumer")
	call := f.call
	return Consumer2[A, B]{accept: func(a A, b B) error {
		r, err := call(a, b)
		if err != nil {
			return err
		}
		return consumer(r)
	}}
}

func Consume3[A, B, C, R any](f Func3[A, B, C, R], consumer func(R) error) Consumer3[A, B, C] {
	requireFunc(f.call != nil, "Consume3: f")
	requireFunc(consumer != nil, "Consume3: consumer")
	call := f.call
	return Consumer3[A, B, C]{accept: func(a A, b B, c C) error {
		r, err := call(a, b, c)
		if err != nil {
			return err
		}
		return consumer(r)
	}}
}

// ComposePredicate1 maps the argument through before, then tests p. A failure
// of before is returned without testing p.
func ComposePredicate1[A0, A any](p Predicate1[A], before func(A0) (A, error)) Predicate1[A0] {
	requireFunc(p.test != nil, "ComposePredicate1: p")
	requireFunc(before != nil, "ComposePredicate1: before")
	test := p.test
	return Predicate1[A0]{test: func(a0 A0) (bool, error) {
		a, err := before(a0)
		if err != nil {
			return false, err
		}
		return test(a)
	}}
}

func ComposePredicate2[A0, B0, A, B any](
	p Predicate2[A, B],
	beforeA func(A0) (A, error),
	beforeB func(B0) (B, error),
) Predicate2[A0, B0] {
	requireFunc(p.test != nil, "ComposePredicate2: p")
	requireFunc(beforeA != nil && beforeB != nil, "ComposePredicate2: before")
	test := p.test
	return Predicate2[A0, B0]{test: func(a0 A0, b0 B0) (bool, error) {
		a, err := beforeA(a0)
		if err != nil {
			return false, err
		}
		b, err := beforeB(b0)
		if err != nil {
			return false, err
		}
		return test(a, b)
	}}
}

func ComposePredicate3[A0, B0, C0, A, B, C any](
	p Predicate3[A, B, C],
	beforeA func(A0) (A, error),
	beforeB func(B0) (B, error),
	beforeC func(C0) (C, error),
) Predicate3[A0, B0, C0] {
	requireFunc(p.test != nil, "ComposePredicate3: p")
	requireFunc(beforeA != nil && beforeB != nil && beforeC != nil, "ComposePredicate3: before")
	test := p.test
	return Predicate3[A0, B0, C0]{test: func(a0 A0, b0 B0, c0 C0) (bool, error) {
		a, err := beforeA(a0)
		if err != nil {
			return false, err
		}
		b, err := beforeB(b0)
		if err != nil {
			return false, err
		}
		c, err := beforeC(c0)
		if err != nil {
			return false, err
		}
		return test(a, b, c)
	}}
}
