package xj

import (
	"github.com/signadot/xj/debug"
	"github.com/signadot/xj/ir"
)

// Match reports whether doc matches pattern.
//
//   - an object pattern matches an object holding every pattern key, each
//     with a matching value; other keys of doc are ignored.
//   - an array pattern matches an array of the same length, element by
//     element.
//   - null matches anything.
//   - other values match equal values.  Numbers compare by value.
func Match(doc, pattern *ir.Node) bool {
	if pattern == nil || pattern.Type == ir.NullType {
		return true
	}
	if doc == nil || doc.Type != pattern.Type {
		return false
	}
	if debug.Stream() {
		debug.Logf("match %s at %s\n", pattern.Type, doc.Pointer())
	}
	switch pattern.Type {
	case ir.ObjectType:
		return matchObj(doc, pattern)
	case ir.ArrayType:
		return matchArray(doc, pattern)
	case ir.StringType:
		return doc.String == pattern.String
	case ir.BoolType:
		return doc.Bool == pattern.Bool
	case ir.NumberType:
		return ir.Compare(doc, pattern) == 0
	}
	return false
}

func matchObj(doc, pattern *ir.Node) bool {
	for i, field := range pattern.Fields {
		dv := ir.Get(doc, field.String)
		if dv == nil || !Match(dv, pattern.Values[i]) {
			return false
		}
	}
	return true
}

func matchArray(doc, pattern *ir.Node) bool {
	if len(doc.Values) != len(pattern.Values) {
		return false
	}
	for i := range doc.Values {
		if !Match(doc.Values[i], pattern.Values[i]) {
			return false
		}
	}
	return true
}

// Trim returns a copy of doc restricted to what pattern names.  Object keys
// keep the order of doc.  Each element of an array pattern keeps the first
// unused element of doc it matches.
func Trim(pattern, doc *ir.Node) *ir.Node {
	if pattern == nil || doc == nil || pattern.Type != doc.Type {
		return doc.Clone()
	}
	switch pattern.Type {
	case ir.ObjectType:
		res := ir.Object()
		for i, field := range doc.Fields {
			pv := ir.Get(pattern, field.String)
			if pv == nil {
				continue
			}
			res.Set(field.String, Trim(pv, doc.Values[i]))
		}
		return res
	case ir.ArrayType:
		res := make([]*ir.Node, 0, len(pattern.Values))
		used := make([]bool, len(doc.Values))
		for _, pv := range pattern.Values {
			for i, dv := range doc.Values {
				if used[i] || !Match(dv, pv) {
					continue
				}
				res = append(res, Trim(pv, dv))
				used[i] = true
				break
			}
		}
		return ir.FromSlice(res)
	default:
		return doc.Clone()
	}
}
