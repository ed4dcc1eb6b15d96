package ir

import (
	"github.com/signadot/xj/ir/pointer"
)

// GetPointer navigates the tree rooted at node using a pointer string such as
// "/catalog/book/2".
//
// A key missing from an object, or an index past the end of an array, means
// the path does not exist and GetPointer returns nil, nil. Descending into a
// scalar, or indexing an array with a token that is not an index, returns a
// *TypeMismatchError.
func (node *Node) GetPointer(p string) (*Node, error) {
	ptr, err := pointer.Parse(p)
	if err != nil {
		return nil, err
	}
	return node.Resolve(ptr)
}

// Resolve is GetPointer for a parsed pointer. The result is the node in the
// tree, not a copy.
func (node *Node) Resolve(p pointer.Pointer) (*Node, error) {
	res := node
	for _, tok := range p {
		next, err := res.step(tok)
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, nil
		}
		res = next
	}
	return res, nil
}

// step returns the child of node addressed by tok, nil if there is none.
func (node *Node) step(tok string) (*Node, error) {
	switch node.Type {
	case ObjectType:
		return Get(node, tok), nil
	case ArrayType:
		i, ok := pointer.Index(tok)
		if !ok {
			return nil, &TypeMismatchError{Token: tok, Got: ArrayType, Want: ObjectType}
		}
		if i >= len(node.Values) {
			return nil, nil
		}
		return node.Values[i], nil
	default:
		want := ObjectType
		if _, ok := pointer.Index(tok); ok {
			want = ArrayType
		}
		return nil, &TypeMismatchError{Token: tok, Got: node.Type, Want: want}
	}
}

// ReplacePointer overwrites the value addressed by p with v and returns the
// root. If the path does not exist it returns nil, nil; type mismatches are
// reported as in GetPointer. The empty pointer replaces the whole tree, so
// the result is v. A nil v stores null.
func (node *Node) ReplacePointer(p string, v *Node) (*Node, error) {
	ptr, err := pointer.Parse(p)
	if err != nil {
		return nil, err
	}
	return node.Replace(ptr, v)
}

// Replace is ReplacePointer for a parsed pointer.
func (node *Node) Replace(p pointer.Pointer, v *Node) (*Node, error) {
	if v == nil {
		v = Null()
	}
	if p.IsRoot() {
		v.Parent = nil
		return v, nil
	}
	parentPtr, last := p.Parent()
	parent, err := node.Resolve(parentPtr)
	if err != nil || parent == nil {
		return nil, err
	}
	switch parent.Type {
	case ObjectType:
		i := parent.index(last)
		if i == -1 {
			return nil, nil
		}
		parent.setValue(i, v)
	case ArrayType:
		i, ok := pointer.Index(last)
		if !ok {
			return nil, &TypeMismatchError{Token: last, Got: ArrayType, Want: ObjectType}
		}
		if i >= len(parent.Values) {
			return nil, nil
		}
		parent.setValue(i, v)
	default:
		_, err := parent.step(last)
		return nil, err
	}
	return node, nil
}
