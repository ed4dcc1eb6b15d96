package libdiff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/xj/debug"
	"github.com/signadot/xj/ir"
	"github.com/signadot/xj/ir/pointer"
)

// Change is one difference between two trees.  From is nil for Add and To is
// nil for Remove.
type Change struct {
	Op   Op
	Path string
	From *ir.Node
	To   *ir.Node
}

// DiffFunc computes the changes turning from into to, both found at p.
type DiffFunc func(p pointer.Pointer, from, to *ir.Node) []Change

// Diff returns the changes turning from into to.  Applying them in order,
// for example through Patch, yields a tree equal to to.  Diff returns nil
// for equal trees.
func Diff(from, to *ir.Node) []Change {
	return diff(nil, from, to)
}

func diff(p pointer.Pointer, from, to *ir.Node) []Change {
	if from == nil && to == nil {
		return nil
	}
	if from == nil || to == nil || from.Type != to.Type {
		return []Change{MakeChange(p, from, to)}
	}
	var res []Change
	switch from.Type {
	case ir.ObjectType:
		res = DiffObject(p, from, to, diff)
	case ir.ArrayType:
		res = DiffArrayByIndex(p, from, to, diff)
	case ir.StringType:
		res = DiffString(p, from, to)
	case ir.NumberType:
		res = DiffNumber(p, from, to)
	case ir.BoolType:
		if from.Bool != to.Bool {
			res = []Change{MakeChange(p, from, to)}
		}
	}
	if debug.Diff() && len(res) != 0 && p.IsRoot() {
		debug.Logf("diff: %d changes\n", len(res))
	}
	return res
}

func (c Change) String() string {
	switch c.Op {
	case Add:
		return fmt.Sprintf("%s %s: %s", c.Op.Symbol(), c.Path, jsonText(c.To))
	case Remove:
		return fmt.Sprintf("%s %s: %s", c.Op.Symbol(), c.Path, jsonText(c.From))
	}
	if multiLine(c.From) && multiLine(c.To) {
		return fmt.Sprintf("%s %s:\n%s", c.Op.Symbol(), c.Path, TextDiff(c.From.String, c.To.String))
	}
	return fmt.Sprintf("%s %s: %s -> %s", c.Op.Symbol(), c.Path, jsonText(c.From), jsonText(c.To))
}

func multiLine(n *ir.Node) bool {
	return n != nil && n.Type == ir.StringType && strings.Contains(n.String, "\n")
}

func jsonText(n *ir.Node) string {
	d, err := n.MarshalJSON()
	if err != nil {
		return strconv.Quote(err.Error())
	}
	return string(d)
}

// Format renders changes one per line.
func Format(changes []Change) string {
	b := &strings.Builder{}
	for _, c := range changes {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}
