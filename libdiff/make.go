package libdiff

import (
	"github.com/signadot/xj/ir"
	"github.com/signadot/xj/ir/pointer"
)

// MakeChange builds the change turning from into to at p.  A nil from is an
// addition and a nil to a removal.
func MakeChange(p pointer.Pointer, from, to *ir.Node) Change {
	switch {
	case from == nil:
		return Change{Op: Add, Path: p.String(), To: to}
	case to == nil:
		return Change{Op: Remove, Path: p.String(), From: from}
	default:
		return Change{Op: Replace, Path: p.String(), From: from, To: to}
	}
}
