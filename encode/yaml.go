package encode

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/xj/ir"
)

// numberText keeps the text of a number through yaml marshalling.
type numberText string

func (n numberText) MarshalYAML() ([]byte, error) {
	return []byte(n), nil
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(toYAML(node))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

// toYAML converts node to values go-yaml marshals in order.
func toYAML(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = yaml.MapItem{Key: f.String, Value: toYAML(node.Values[i])}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = toYAML(v)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		return numberText(ir.JSONNumber(node))
	case ir.BoolType:
		return node.Bool
	default:
		return nil
	}
}
