package ir

import (
	"strconv"

	"github.com/signadot/xj/ir/pointer"
)

// Pointer returns the pointer string from the root of the tree to y, in the
// syntax accepted by GetPointer.
//
// Examples:
//   - Root node → ""
//   - Object field "a" → "/a"
//   - Array element at index 0 of field "a" → "/a/0"
//   - Field "x/y" → "/x~1y"
func (y *Node) Pointer() string {
	return y.PointerTo().String()
}

// PointerTo is Pointer in parsed form.
func (y *Node) PointerTo() pointer.Pointer {
	if y.Parent == nil {
		return pointer.Pointer{}
	}
	prefix := y.Parent.PointerTo()
	switch y.Parent.Type {
	case ObjectType:
		return prefix.Append(y.ParentField)
	case ArrayType:
		return prefix.Append(strconv.Itoa(y.ParentIndex))
	default:
		panic("parent but not in container")
	}
}
