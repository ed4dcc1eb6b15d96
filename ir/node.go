package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	dst.Number = y.Number
	dst.Float64 = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	dst.Int64 = nil
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumberText is FromFloat but keeps the text the number was read from.
func FromNumberText(f float64, text string) *Node {
	res := FromFloat(f)
	res.Number = text
	return res
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// Object returns an empty object.
func Object() *Node {
	return &Node{Type: ObjectType, Fields: []*Node{}, Values: []*Node{}}
}

func FromMap(yMap map[string]*Node) *Node {
	res := Object()
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		res.Set(key, yMap[key])
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object with the keys in the given order. A repeated
// key keeps its first position and its last value.
func FromKeyVals(kvs []KeyVal) *Node {
	res := Object()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
	}
	return res
}

// Get returns the value under field in object y, or nil.
func Get(y *Node, field string) *Node {
	i := y.index(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

func (y *Node) index(field string) int {
	if y == nil || y.Type != ObjectType {
		return -1
	}
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return i
		}
	}
	return -1
}

// Has reports whether object y has field.
func (y *Node) Has(field string) bool {
	return y.index(field) != -1
}

// Set stores v under field, replacing any current value in place or appending
// a new key at the end.
func (y *Node) Set(field string, v *Node) {
	if i := y.index(field); i != -1 {
		y.setValue(i, v)
		return
	}
	i := len(y.Fields)
	k := FromString(field)
	k.Parent = y
	k.ParentIndex = i
	k.ParentField = field
	y.Fields = append(y.Fields, k)
	y.Values = append(y.Values, nil)
	y.setValue(i, v)
}

func (y *Node) setValue(i int, v *Node) {
	v.Parent = y
	v.ParentIndex = i
	if y.Type == ObjectType {
		v.ParentField = y.Fields[i].String
	} else {
		v.ParentField = ""
	}
	y.Values[i] = v
}

// Append adds v at the end of array y.
func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, nil)
	y.setValue(len(y.Values)-1, v)
}

// Accumulate adds v under field following the repeated-element rule: the
// first value is stored as is, except an array which is wrapped in a new
// one-element array; a second value turns the slot into an array holding both
// in order; further values are appended to that array.
func (y *Node) Accumulate(field string, v *Node) {
	i := y.index(field)
	if i == -1 {
		if v.Type == ArrayType {
			v = FromSlice([]*Node{v})
		}
		y.Set(field, v)
		return
	}
	cur := y.Values[i]
	if cur.Type == ArrayType {
		cur.Append(v)
		return
	}
	y.setValue(i, FromSlice([]*Node{cur, v}))
}

// Len returns the number of keys of an object or elements of an array.
func (y *Node) Len() int {
	switch y.Type {
	case ObjectType, ArrayType:
		return len(y.Values)
	}
	return 0
}

// Keys returns the keys of an object in order.
func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

func (y *Node) IsContainer() bool {
	return y != nil && !y.Type.IsLeaf()
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
