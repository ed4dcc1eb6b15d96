package libdiff

import (
	"github.com/signadot/xj/ir"
	"github.com/signadot/xj/ir/pointer"
)

// DiffArrayByIndex compares elements at the same index through df.  Extra
// elements of to are added at increasing indices and extra elements of from
// removed at decreasing indices, so the changes apply in order.
func DiffArrayByIndex(p pointer.Pointer, from, to *ir.Node, df DiffFunc) []Change {
	n := min(len(from.Values), len(to.Values))
	var res []Change
	for i := range n {
		res = append(res, df(p.AppendIndex(i), from.Values[i], to.Values[i])...)
	}
	for i := n; i < len(to.Values); i++ {
		res = append(res, MakeChange(p.AppendIndex(i), nil, to.Values[i]))
	}
	for i := len(from.Values) - 1; i >= n; i-- {
		res = append(res, MakeChange(p.AppendIndex(i), from.Values[i], nil))
	}
	return res
}
