package parse

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/signadot/xj/ir"
)

// DecodeValue reads a JSON or YAML document into a tree.  Mappings keep the
// order of their keys.
func DecodeValue(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromYAML(v)
}

func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := ir.Object()
		for _, item := range x {
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(yamlKey(item.Key), val)
		}
		return res, nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i := range x {
			val, err := fromYAML(x[i])
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return nil, fmt.Errorf("%w: %v is not a finite number", ErrParse, x)
		}
		return ir.FromFloat(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return &ir.Node{Type: ir.NumberType, Number: strconv.FormatUint(x, 10)}, nil
		}
		return ir.FromInt(int64(x)), nil
	default:
		return ir.FromAny(v)
	}
}

func yamlKey(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	default:
		return fmt.Sprint(x)
	}
}
