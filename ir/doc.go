// Package ir provides the tree that XML documents are converted to and from.
//
// # Overview
//
// A converted document is a tree of *Node values. The representation is a
// recursive tagged union: the Type field says which of the other fields
// carry the value.
//
//   - NullType: null value
//   - BoolType: boolean, in Bool
//   - NumberType: Int64, or Float64 with the text it was read from in Number;
//     integers too large for int64 carry only Number
//   - StringType: String
//   - ArrayType: ordered Values
//   - ObjectType: Fields[i] is the key (a string node) for Values[i]
//
// Object keys are unique and keep their insertion order.
//
// # Creating Nodes
//
//	obj := ir.Object()
//	obj.Set("name", ir.FromString("Joe"))
//	obj.Accumulate("book", ir.FromInt(1))
//	obj.Accumulate("book", ir.FromInt(2)) // book is now [1, 2]
//
// # Navigating Nodes
//
// Nodes keep Parent, ParentIndex and ParentField links. Pointer() returns the
// path of a node from its root; GetPointer and ReplacePointer read and write
// the tree by path:
//
//	b, err := root.GetPointer("/catalog/book/0")
//	root, err = root.ReplacePointer("/catalog/book/0", ir.FromString("x"))
//
// # Comparison
//
// Compare orders nodes and is sensitive to object key order; Equal compares
// content and ignores it.
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation. Concurrent reads of a tree that
// nobody mutates are fine.
package ir
