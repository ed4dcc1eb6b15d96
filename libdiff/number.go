package libdiff

import (
	"github.com/signadot/xj/ir"
	"github.com/signadot/xj/ir/pointer"
)

// DiffNumber compares numbers by value, so 1 and 1.0 are the same.
func DiffNumber(p pointer.Pointer, from, to *ir.Node) []Change {
	if ir.Compare(from, to) == 0 {
		return nil
	}
	return []Change{MakeChange(p, from, to)}
}
