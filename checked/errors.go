package checked

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/on-the-ground/lambda_ive_go/pure"
)

// ErrInvalidHandler is the panic value (wrapped) of a Recover handler that
// returned a zero-value computation.
var ErrInvalidHandler = errors.New("invalid handler")

// NestedError carries a checked failure through a pure computation, which
// can only report it by panicking.
type NestedError struct {
	Message string
	Cause   error
}

func NewNestedError(message string, cause error) *NestedError {
	return &NestedError{Message: message, Cause: cause}
}

func (e *NestedError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *NestedError) Unwrap() error {
	return e.Cause
}

type uncheckedError struct {
	err error
}

func (e uncheckedError) Error() string {
	return e.err.Error()
}

func (e uncheckedError) Unwrap() error {
	return e.err
}

// Unchecked marks err as a programming error. Nest and Recover let such
// failures through unchanged instead of nesting or handling them.
func Unchecked(err error) error {
	if err == nil {
		return nil
	}
	return uncheckedError{err: err}
}

// IsUnchecked reports whether err is a runtime.Error or was marked with
// Unchecked, anywhere in its chain.
func IsUnchecked(err error) bool {
	var marked uncheckedError
	if errors.As(err, &marked) {
		return true
	}
	var rt runtime.Error
	return errors.As(err, &rt)
}

// nest is the panic value Nest uses for err.
func nest(err error) any {
	if IsUnchecked(err) {
		return err
	}
	return NewNestedError(err.Error(), err)
}

func invalidHandler(where string, cause error) error {
	return fmt.Errorf("%w: %s returned no replacement for failure %v", ErrInvalidHandler, where, cause)
}

func requireFunc(ok bool, where string) {
	if !ok {
		panic(fmt.Errorf("%w: %s", pure.ErrNilFunction, where))
	}
}
