package parse

import (
	"fmt"
	"maps"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/xj/ir"
)

const (
	DefaultContentKey = "content"

	NilAttr  = "xsi:nil"
	TypeAttr = "xsi:type"
)

// TypeHint converts the text of an element carrying a matching xsi:type
// attribute.
type TypeHint func(text string) (*ir.Node, error)

// Config holds the conversion settings.  A Config is not modified after it
// is built; use With to derive a changed copy.
type Config struct {
	keepStrings bool
	contentKey  string
	convertNil  bool
	typeHints   map[string]TypeHint
}

type ConfigOption func(*Config)

func NewConfig(opts ...ConfigOption) *Config {
	c := &Config{contentKey: DefaultContentKey}
	for _, o := range opts {
		o(c)
	}
	return c
}

func DefaultConfig() *Config {
	return NewConfig()
}

// With returns a copy of c with opts applied.
func (c *Config) With(opts ...ConfigOption) *Config {
	res := *c
	res.typeHints = maps.Clone(c.typeHints)
	for _, o := range opts {
		o(&res)
	}
	return &res
}

// KeepStrings leaves all text and attribute values as strings.
func KeepStrings(v bool) ConfigOption {
	return func(c *Config) { c.keepStrings = v }
}

// ContentKey sets the key under which element text is stored.
func ContentKey(k string) ConfigOption {
	return func(c *Config) { c.contentKey = k }
}

// ConvertNilToNull makes elements with xsi:nil="true" convert to null.
func ConvertNilToNull(v bool) ConfigOption {
	return func(c *Config) { c.convertNil = v }
}

// TypeHints sets the xsi:type table.  The map is copied.
func TypeHints(m map[string]TypeHint) ConfigOption {
	return func(c *Config) { c.typeHints = maps.Clone(m) }
}

func (c *Config) KeepStrings() bool      { return c.keepStrings }
func (c *Config) ContentKey() string     { return c.contentKey }
func (c *Config) ConvertNilToNull() bool { return c.convertNil }

func (c *Config) TypeHint(name string) TypeHint {
	return c.typeHints[name]
}

// TypeHints returns a copy of the xsi:type table.
func (c *Config) TypeHints() map[string]TypeHint {
	res := make(map[string]TypeHint, len(c.typeHints))
	maps.Copy(res, c.typeHints)
	return res
}

// BuiltinTypeHint returns the hint for a builtin type name, or nil.
func BuiltinTypeHint(name string) TypeHint {
	switch strings.ToLower(name) {
	case "string":
		return func(text string) (*ir.Node, error) {
			return ir.FromString(text), nil
		}
	case "int", "integer", "long":
		return func(text string) (*ir.Node, error) {
			i, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return nil, err
			}
			return ir.FromInt(i), nil
		}
	case "float", "double", "decimal":
		return func(text string) (*ir.Node, error) {
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, err
			}
			if math.IsInf(f, 0) || math.IsNaN(f) {
				return nil, fmt.Errorf("%q is not a finite number", text)
			}
			return ir.FromNumberText(f, text), nil
		}
	case "bool", "boolean":
		return func(text string) (*ir.Node, error) {
			b, err := strconv.ParseBool(text)
			if err != nil {
				return nil, err
			}
			return ir.FromBool(b), nil
		}
	case "null":
		return func(string) (*ir.Node, error) {
			return ir.Null(), nil
		}
	}
	return nil
}
