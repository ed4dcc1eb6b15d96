package encode

import (
	"fmt"
	"io"

	"github.com/signadot/xj/format"
	"github.com/signadot/xj/ir"
)

const (
	defaultContentKey = "content"
	arrayTag          = "array"
)

type EncState struct {
	depth, indent int

	format     format.Format
	rootName   string
	contentKey string

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w, as XML unless another format is selected with
// EncodeFormat.  The output ends with a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		contentKey: defaultContentKey,
	}
	for _, opt := range opts {
		opt(es)
	}
	var err error
	switch es.format {
	case format.XMLFormat:
		err = encodeXML(node, w, es)
	case format.JSONFormat:
		err = encodeJSON(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w)
	default:
		return fmt.Errorf("%w: unsupported format %s", ErrEncoding, es.format)
	}
	if err != nil {
		return err
	}
	return writeString(w, "\n")
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}
