package libdiff

import (
	"github.com/signadot/xj/ir"
	"github.com/signadot/xj/ir/pointer"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffObject aligns the keys of from and to with a rune diff, one rune per
// distinct key.  Keys on both sides recurse through df, keys only in from
// are removed and keys only in to are added.  A key which only moved
// recurses as well, since key order is not part of the content.
func DiffObject(p pointer.Pointer, from, to *ir.Node, df DiffFunc) []Change {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var res, added []Change
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				f := runeMap[r]
				if tv := ir.Get(to, f); tv != nil {
					res = append(res, df(p.Append(f), from.Values[fi], tv)...)
				} else {
					res = append(res, MakeChange(p.Append(f), from.Values[fi], nil))
				}
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				res = append(res, df(p.Append(runeMap[r]), from.Values[fi], to.Values[ti])...)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				f := runeMap[r]
				if !from.Has(f) {
					added = append(added, MakeChange(p.Append(f), nil, to.Values[ti]))
				}
				ti++
			}
		}
	}
	return append(res, added...)
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i].String
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
