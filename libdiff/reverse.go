package libdiff

import "slices"

// Reverse returns the changes undoing changes: the inverse of each, in
// reverse order.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range slices.Backward(changes) {
		res[len(changes)-1-i] = Change{
			Op:   c.Op.Inverse(),
			Path: c.Path,
			From: c.To,
			To:   c.From,
		}
	}
	return res
}
