package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/signadot/xj/ir"
	"github.com/signadot/xj/token"
)

// encodeXML writes node as XML.  Without a root name an object is written
// as its sequence of elements and a scalar as quoted text.
func encodeXML(node *ir.Node, w io.Writer, es *EncState) error {
	b := &strings.Builder{}
	if err := xmlValue(b, node, es.rootName, es.rootName != "", es); err != nil {
		return err
	}
	return writeString(w, b.String())
}

func xmlValue(b *strings.Builder, node *ir.Node, tag string, hasTag bool, es *EncState) error {
	if node == nil {
		node = ir.Null()
	}
	switch node.Type {
	case ir.ObjectType:
		return xmlObject(b, node, tag, hasTag, es)
	case ir.ArrayType:
		if !hasTag {
			tag = arrayTag
		}
		for _, v := range node.Values {
			if err := xmlValue(b, v, tag, true, es); err != nil {
				return err
			}
		}
		return nil
	}
	text, err := scalarText(node)
	if err != nil {
		return err
	}
	text = token.Escape(text)
	switch {
	case !hasTag:
		b.WriteString(`"` + text + `"`)
	case text == "":
		xmlEmpty(b, tag, node.Type, es)
	default:
		xmlOpen(b, tag, node.Type, es)
		b.WriteString(applyColor(es, node.Type, ValueColor, text))
		xmlClose(b, tag, node.Type, es)
	}
	return nil
}

func xmlObject(b *strings.Builder, node *ir.Node, tag string, hasTag bool, es *EncState) error {
	if hasTag {
		xmlOpen(b, tag, ir.ObjectType, es)
	}
	for i, f := range node.Fields {
		key := f.String
		v := node.Values[i]
		switch {
		case key == es.contentKey:
			if err := xmlContent(b, v, es); err != nil {
				return err
			}
		case v != nil && v.Type == ir.ArrayType:
			for _, elt := range v.Values {
				if elt != nil && elt.Type == ir.ArrayType {
					xmlOpen(b, key, ir.ArrayType, es)
					if err := xmlValue(b, elt, "", false, es); err != nil {
						return err
					}
					xmlClose(b, key, ir.ArrayType, es)
					continue
				}
				if err := xmlValue(b, elt, key, true, es); err != nil {
					return err
				}
			}
		case v == nil || (v.Type == ir.StringType && v.String == ""):
			xmlEmpty(b, key, ir.StringType, es)
		default:
			if err := xmlValue(b, v, key, true, es); err != nil {
				return err
			}
		}
	}
	if hasTag {
		xmlClose(b, tag, ir.ObjectType, es)
	}
	return nil
}

// xmlContent writes the value of a content key as element text.  The
// items of an array are separated by newlines.
func xmlContent(b *strings.Builder, v *ir.Node, es *EncState) error {
	if v == nil {
		return nil
	}
	vals := []*ir.Node{v}
	if v.Type == ir.ArrayType {
		vals = v.Values
	}
	for i, item := range vals {
		if i > 0 {
			b.WriteByte('\n')
		}
		if item == nil {
			item = ir.Null()
		}
		text, err := scalarText(item)
		if err != nil {
			return err
		}
		b.WriteString(applyColor(es, item.Type, ValueColor, token.Escape(text)))
	}
	return nil
}

// scalarText is the text of a leaf.  Containers are given as compact JSON.
func scalarText(node *ir.Node) (string, error) {
	switch node.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		return strconv.FormatBool(node.Bool), nil
	case ir.NumberType:
		return ir.NumberText(node), nil
	case ir.StringType:
		return node.String, nil
	default:
		d, err := node.MarshalJSON()
		if err != nil {
			return "", err
		}
		return string(d), nil
	}
}

func xmlOpen(b *strings.Builder, tag string, t ir.Type, es *EncState) {
	b.WriteByte('<')
	b.WriteString(applyColor(es, t, TagColor, tag))
	b.WriteByte('>')
}

func xmlClose(b *strings.Builder, tag string, t ir.Type, es *EncState) {
	b.WriteString("</")
	b.WriteString(applyColor(es, t, TagColor, tag))
	b.WriteByte('>')
}

func xmlEmpty(b *strings.Builder, tag string, t ir.Type, es *EncState) {
	b.WriteByte('<')
	b.WriteString(applyColor(es, t, TagColor, tag))
	b.WriteString("/>")
}
