package pure

// Consumer0 is an action without arguments.
type Consumer0 struct {
	accept func()
}

// Consumer1 is an action on one argument.
type Consumer1[A any] struct {
	accept func(A)
}

// Consumer2 is an action on two arguments.
type Consumer2[A, B any] struct {
	accept func(A, B)
}

// Consumer3 is an action on three arguments.
type Consumer3[A, B, C any] struct {
	accept func(A, B, C)
}

func C0(c func()) Consumer0 {
	requireFunc(c != nil, "C0")
	return Consumer0{accept: c}
}

func C1[A any](c func(A)) Consumer1[A] {
	requireFunc(c != nil, "C1")
	return Consumer1[A]{accept: c}
}

func C2[A, B any](c func(A, B)) Consumer2[A, B] {
	requireFunc(c != nil, "C2")
	return Consumer2[A, B]{accept: c}
}

func C3[A, B, C any](c func(A, B, C)) Consumer3[A, B, C] {
	requireFunc(c != nil, "C3")
	return Consumer3[A, B, C]{accept: c}
}

// --- Consumer0 ---

func (c Consumer0) Run() {
	c.accept()
}

func (Consumer0) Arity() int {
	return 0
}

func (c Consumer0) IsZero() bool {
	return c.accept == nil
}

// AndThen runs c, then next.
func (c Consumer0) AndThen(next Consumer0) Consumer0 {
	requireFunc(c.accept != nil && next.accept != nil, "Consumer0.AndThen")
	accept, nextAccept := c.accept, next.accept
	return Consumer0{accept: func() {
		accept()
		nextAccept()
	}}
}

// --- Consumer1 ---

func (c Consumer1[A]) Accept(a A) {
	c.accept(a)
}

func (Consumer1[A]) Arity() int {
	return 1
}

func (c Consumer1[A]) IsZero() bool {
	return c.accept == nil
}

// AndThen passes the argument to c, then to next.
func (c Consumer1[A]) AndThen(next Consumer1[A]) Consumer1[A] {
	requireFunc(c.accept != nil && next.accept != nil, "Consumer1.AndThen")
	accept, nextAccept := c.accept, next.accept
	return Consumer1[A]{accept: func(a A) {
		accept(a)
		nextAccept(a)
	}}
}

func (c Consumer1[A]) Partial(a A) Consumer0 {
	requireFunc(c.accept != nil, "Consumer1.Partial")
	accept := c.accept
	return Consumer0{accept: func() { accept(a) }}
}

func (c Consumer1[A]) Boxed() Consumer1[any] {
	requireFunc(c.accept != nil, "Consumer1.Boxed")
	accept := c.accept
	return Consumer1[any]{accept: func(a any) { accept(unbox[A](a)) }}
}

// --- Consumer2 ---

func (c Consumer2[A, B]) Accept(a A, b B) {
	c.accept(a, b)
}

func (Consumer2[A, B]) Arity() int {
	return 2
}

func (c Consumer2[A, B]) IsZero() bool {
	return c.accept == nil
}

func (c Consumer2[A, B]) AndThen(next Consumer2[A, B]) Consumer2[A, B] {
	requireFunc(c.accept != nil && next.accept != nil, "Consumer2.AndThen")
	accept, nextAccept := c.accept, next.accept
	return Consumer2[A, B]{accept: func(a A, b B) {
		accept(a, b)
		nextAccept(a, b)
	}}
}

func (c Consumer2[A, B]) Partial(a A) Consumer1[B] {
	requireFunc(c.accept != nil, "Consumer2.Partial")
	accept := c.accept
	return Consumer1[B]{accept: func(b B) { accept(a, b) }}
}

func (c Consumer2[A, B]) Partial2(a A, b B) Consumer0 {
	requireFunc(c.accept != nil, "Consumer2.Partial2")
	accept := c.accept
	return Consumer0{accept: func() { accept(a, b) }}
}

func (c Consumer2[A, B]) Tupled() Consumer1[Tuple2[A, B]] {
	requireFunc(c.accept != nil, "Consumer2.Tupled")
	accept := c.accept
	return Consumer1[Tuple2[A, B]]{accept: func(t Tuple2[A, B]) {
		accept(t.First, t.Second)
	}}
}

func (c Consumer2[A, B]) Reversed() Consumer2[B, A] {
	requireFunc(c.accept != nil, "Consumer2.Reversed")
	accept := c.accept
	return Consumer2[B, A]{accept: func(b B, a A) { accept(a, b) }}
}

func (c Consumer2[A, B]) Boxed() Consumer2[any, any] {
	requireFunc(c.accept != nil, "Consumer2.Boxed")
	accept := c.accept
	return Consumer2[any, any]{accept: func(a, b any) {
		accept(unbox[A](a), unbox[B](b))
	}}
}

// --- Consumer3 ---

func (c Consumer3[A, B, C]) Accept(a A, b B, cc C) {
	c.accept(a, b, cc)
}

func (Consumer3[A, B, C]) Arity() int {
	return 3
}

func (c Consumer3[A, B, C]) IsZero() bool {
	return c.accept == nil
}

func (c Consumer3[A, B, C]) AndThen(next Consumer3[A, B, C]) Consumer3[A, B, C] {
	requireFunc(c.accept != nil && next.accept != nil, "Consumer3.AndThen")
	accept, nextAccept := c.accept, next.accept
	return Consumer3[A, B, C]{accept: func(a A, b B, cc C) {
		accept(a, b, cc)
		nextAccept(a, b, cc)
	}}
}

func (c Consumer3[A, B, C]) Partial(a A) Consumer2[B, C] {
	requireFunc(c.accept != nil, "Consumer3.Partial")
	accept := c.accept
	return Consumer2[B, C]{accept: func(b B, cc C) { accept(a, b, cc) }}
}

func (c Consumer3[A, B, C]) Partial2(a A, b B) Consumer1[C] {
	requireFunc(c.accept != nil, "Consumer3.Partial2")
	accept := c.accept
	return Consumer1[C]{accept: func(cc C) { accept(a, b, cc) }}
}

func (c Consumer3[A, B, C]) Tupled() Consumer1[Tuple3[A, B, C]] {
	requireFunc(c.accept != nil, "Consumer3.Tupled")
	accept := c.accept
	return Consumer1[Tuple3[A, B, C]]{accept: func(t Tuple3[A, B, C]) {
		accept(t.First, t.Second, t.Third)
	}}
}

// Reversed swaps the first and the third argument.
func (c Consumer3[A, B, C]) Reversed() Consumer3[C, B, A] {
	requireFunc(c.accept != nil, "Consumer3.Reversed")
	accept := c.accept
	return Consumer3[C, B, A]{accept: func(cc C, b B, a A) { accept(a, b, cc) }}
}

func (c Consumer3[A, B, C]) Boxed() Consumer3[any, any, any] {
	requireFunc(c.accept != nil, "Consumer3.Boxed")
	accept := c.accept
	return Consumer3[any, any, any]{accept: func(a, b, cc any) {
		accept(unbox[A](a), unbox[B](b), unbox[C](cc))
	}}
}
