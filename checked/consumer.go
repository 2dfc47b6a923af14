package checked

import (
	"go.uber.org/zap"

	"github.com/on-the-ground/lambda_ive_go/internal/logging"
	"github.com/on-the-ground/lambda_ive_go/pure"
)

// Consumer1 is an action on one argument that may fail.
type Consumer1[A any] struct {
	accept func(A) error
}

// Consumer2 is an action on two arguments that may fail.
type Consumer2[A, B any] struct {
	accept func(A, B) error
}

// Consumer3 is an action on three arguments that may fail.
type Consumer3[A, B, C any] struct {
	accept func(A, B, C) error
}

func C1[A any](c func(A) error) Consumer1[A] {
	requireFunc(c != nil, "C1")
	return Consumer1[A]{accept: c}
}

func C2[A, B any](c func(A, B) error) Consumer2[A, B] {
	requireFunc(c != nil, "C2")
	return Consumer2[A, B]{accept: c}
}

func C3[A, B, C any](c func(A, B, C) error) Consumer3[A, B, C] {
	requireFunc(c != nil, "C3")
	return Consumer3[A, B, C]{accept: c}
}

// --- Consumer1 ---

func (c Consumer1[A]) Accept(a A) error {
	return c.accept(a)
}

func (Consumer1[A]) Arity() int {
	return 1
}

func (c Consumer1[A]) IsZero() bool {
	return c.accept == nil
}

// AndThen runs c, then next, stopping at the first failure.
func (c Consumer1[A]) AndThen(next Consumer1[A]) Consumer1[A] {
	requireFunc(c.accept != nil && next.accept != nil, "Consumer1.AndThen")
	accept, nextAccept := c.accept, next.accept
	return Consumer1[A]{accept: func(a A) error {
		if err := accept(a); err != nil {
			return err
		}
		return nextAccept(a)
	}}
}

// IgnoreAll returns the pure counterpart of c that drops every failure,
// unchecked ones included. Dropped failures are logged at debug level.
func (c Consumer1[A]) IgnoreAll() pure.Consumer1[A] {
	requireFunc(c.accept != nil, "Consumer1.IgnoreAll")
	accept := c.accept
	return pure.C1(func(a A) {
		if err := accept(a); err != nil {
			logging.Logger().Debug("failure ignored", zap.String("computation", "Consumer1"), zap.Error(err))
		}
	})
}

func (c Consumer1[A]) Nest() pure.Consumer1[A] {
	requireFunc(c.accept != nil, "Consumer1.Nest")
	accept := c.accept
	return pure.C1(func(a A) {
		if err := accept(a); err != nil {
			panic(nest(err))
		}
	})
}

// --- Consumer2 ---

func (c Consumer2[A, B]) Accept(a A, b B) error {
	return c.accept(a, b)
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
	return Consumer2[A, B]{accept: func(a A, b B) error {
		if err := accept(a, b); err != nil {
			return err
		}
		return nextAccept(a, b)
	}}
}

func (c Consumer2[A, B]) IgnoreAll() pure.Consumer2[A, B] {
	requireFunc(c.accept != nil, "Consumer2.IgnoreAll")
	accept := c.accept
	return pure.C2(func(a A, b B) {
		if err := accept(a, b); err != nil {
			logging.Logger().Debug("failure ignored", zap.String("computation", "Consumer2"), zap.Error(err))
		}
	})
}

func (c Consumer2[A, B]) Nest() pure.Consumer2[A, B] {
	requireFunc(c.accept != nil, "Consumer2.Nest")
	accept := c.accept
	return pure.C2(func(a A, b B) {
		if err := accept(a, b); err != nil {
			panic(nest(err))
		}
	})
}

func (c Consumer2[A, B]) Partial(a A) Consumer1[B] {
	requireFunc(c.accept != nil, "Consumer2.Partial")
	accept := c.accept
	return Consumer1[B]{accept: func(b B) error {
		return accept(a, b)
	}}
}

// --- Consumer3 ---

func (c Consumer3[A, B, C]) Accept(a A, b B, cc C) error {
	return c.accept(a, b, cc)
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
	return Consumer3[A, B, C]{accept: func(a A, b B, cc C) error {
		if err := accept(a, b, cc); err != nil {
			return err
		}
		return nextAccept(a, b, cc)
	}}
}

func (c Consumer3[A, B, C]) IgnoreAll() pure.Consumer3[A, B, C] {
	requireFunc(c.accept != nil, "Consumer3.IgnoreAll")
	accept := c.accept
	return pure.C3(func(a A, b B, cc C) {
		if err := accept(a, b, cc); err != nil {
			logging.Logger().Debug("failure ignored", zap.String("computation", "Consumer3"), zap.Error(err))
		}
	})
}

func (c Consumer3[A, B, C]) Nest() pure.Consumer3[A, B, C] {
	requireFunc(c.accept != nil, "Consumer3.Nest")
	accept := c.accept
	return pure.C3(func(a A, b B, cc C) {
		if err := accept(a, b, cc); err != nil {
			panic(nest(err))
		}
	})
}

func (c Consumer3[A, B, C]) Partial(a A) Consumer2[B, C] {
	requireFunc(c.accept != nil, "Consumer3.Partial")
	accept := c.accept
	return Consumer2[B, C]{accept: func(b B, cc C) error {
		return accept(a, b, cc)
	}}
}
