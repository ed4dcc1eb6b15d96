package token

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax    = errors.New("syntax error")
	ErrBackTwice = errors.New("stepping back two steps is not supported")
)

// SyntaxErr is a scanning or conversion failure at a cursor position.
type SyntaxErr struct {
	Reason string
	Pos    Pos
	Err    error
}

func NewSyntaxErr(reason string, p Pos) *SyntaxErr {
	return &SyntaxErr{Reason: reason, Pos: p}
}

func (e *SyntaxErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Reason, e.Pos.String())
}

func (e *SyntaxErr) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSyntax}
	}
	return []error{ErrSyntax, e.Err}
}
