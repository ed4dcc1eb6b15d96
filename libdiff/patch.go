package libdiff

import (
	"github.com/signadot/xj/ir"
)

// Patch renders changes as an RFC 6902 JSON Patch document.
func Patch(changes []Change) ([]byte, error) {
	ops := make([]*ir.Node, len(changes))
	for i, c := range changes {
		kvs := []ir.KeyVal{
			{Key: "op", Val: ir.FromString(c.Op.String())},
			{Key: "path", Val: ir.FromString(c.Path)},
		}
		if c.Op != Remove {
			kvs = append(kvs, ir.KeyVal{Key: "value", Val: cloneOrNull(c.To)})
		}
		ops[i] = ir.FromKeyVals(kvs)
	}
	return ir.FromSlice(ops).MarshalJSON()
}

func cloneOrNull(n *ir.Node) *ir.Node {
	if n == nil {
		return ir.Null()
	}
	return n.Clone()
}
