package ir

// Truth reports whether node is truthy: non-empty containers and strings,
// non-zero numbers and true.  Null and a nil node are false.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case ObjectType:
		return len(node.Fields) > 0
	case ArrayType:
		return len(node.Values) > 0
	case StringType:
		return node.String != ""
	case BoolType:
		return node.Bool
	case NumberType:
		return !isZero(node)
	}
	return false
}

func isZero(node *Node) bool {
	switch {
	case node.Int64 != nil:
		return *node.Int64 == 0
	case node.Float64 != nil:
		return *node.Float64 == 0
	}
	return node.Number == ""
}
