package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/signadot/xj/ir"
)

// encodeJSON writes node as JSON.  Object keys keep their order.
func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	b := &strings.Builder{}
	jsonValue(b, node, es.depth, es)
	return writeString(w, b.String())
}

func jsonValue(b *strings.Builder, node *ir.Node, depth int, es *EncState) {
	if node == nil {
		node = ir.Null()
	}
	switch node.Type {
	case ir.ObjectType:
		jsonObject(b, node, depth, es)
	case ir.ArrayType:
		jsonArray(b, node, depth, es)
	case ir.StringType:
		b.WriteString(applyColor(es, ir.StringType, ValueColor, string(ir.AppendJSONString(nil, node.String))))
	case ir.NumberType:
		b.WriteString(applyColor(es, ir.NumberType, ValueColor, ir.JSONNumber(node)))
	case ir.BoolType:
		b.WriteString(applyColor(es, ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	default:
		b.WriteString(applyColor(es, ir.NullType, ValueColor, "null"))
	}
}

func jsonObject(b *strings.Builder, node *ir.Node, depth int, es *EncState) {
	if len(node.Fields) == 0 {
		b.WriteString(applyColor(es, ir.ObjectType, SepColor, "{}"))
		return
	}
	b.WriteString(applyColor(es, ir.ObjectType, SepColor, "{"))
	for i, f := range node.Fields {
		if i > 0 {
			b.WriteString(applyColor(es, ir.ObjectType, SepColor, ","))
		}
		jsonNL(b, depth+1, es)
		b.WriteString(applyColor(es, ir.ObjectType, FieldColor, string(ir.AppendJSONString(nil, f.String))))
		b.WriteString(applyColor(es, ir.ObjectType, SepColor, ":"))
		if es.indent > 0 {
			b.WriteByte(' ')
		}
		jsonValue(b, node.Values[i], depth+1, es)
	}
	jsonNL(b, depth, es)
	b.WriteString(applyColor(es, ir.ObjectType, SepColor, "}"))
}

func jsonArray(b *strings.Builder, node *ir.Node, depth int, es *EncState) {
	if len(node.Values) == 0 {
		b.WriteString(applyColor(es, ir.ArrayType, SepColor, "[]"))
		return
	}
	b.WriteString(applyColor(es, ir.ArrayType, SepColor, "["))
	for i, v := range node.Values {
		if i > 0 {
			b.WriteString(applyColor(es, ir.ArrayType, SepColor, ","))
		}
		jsonNL(b, depth+1, es)
		jsonValue(b, v, depth+1, es)
	}
	jsonNL(b, depth, es)
	b.WriteString(applyColor(es, ir.ArrayType, SepColor, "]"))
}

func jsonNL(b *strings.Builder, depth int, es *EncState) {
	if es.indent <= 0 {
		return
	}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", es.indent*depth))
}
