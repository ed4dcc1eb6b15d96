package ir

import (
	"errors"
	"fmt"

	"github.com/signadot/xj/ir/pointer"
)

var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrBadPointer   = pointer.ErrBadPointer
)

// TypeMismatchError reports a pointer token applied to a value of the wrong
// kind.
type TypeMismatchError struct {
	Token string
	Got   Type
	Want  Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: token %q expected %s, got %s", ErrTypeMismatch, e.Token, e.Want, e.Got)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}
