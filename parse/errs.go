package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse      = errors.New("parse error")
	ErrNilReader  = fmt.Errorf("%w: nil reader", ErrParse)
	ErrNilRenamer = fmt.Errorf("%w: nil key renamer", ErrParse)
	ErrTaskPanic  = errors.New("conversion task panicked")
)
