package pure

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/lambda_ive_go/shared/helper"
)

// ErrNilFunction is the panic value (wrapped) of every constructor or
// combinator handed a nil function or a zero-value computation.
var ErrNilFunction = errors.New("nil function")

// ErrUnboxedType is the panic value (wrapped) of an unboxed computation
// called with, or returning, a value of the wrong dynamic type.
var ErrUnboxedType = helper.ErrUnexpectedType

// requireFunc reports contract violations when a computation is built,
// never when it is applied.
func requireFunc(ok bool, where string) {
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrNilFunction, where))
	}
}

func unbox[T any](raw any) T {
	return helper.MustTypedValue[T](raw)
}
