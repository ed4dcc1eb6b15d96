package stream

import (
	"fmt"
	"iter"
	"slices"
	"strconv"

	"github.com/signadot/xj/debug"
	"github.com/signadot/xj/ir"
	"github.com/signadot/xj/ir/pointer"
)

// Record is one step of a walk.  Key is the object key holding Value; for
// array elements it is the key of the enclosing array, or "" at the root.
// Path is the pointer to Value and Depth the number of tokens in it.
type Record struct {
	Key   string
	Value *ir.Node
	Path  string
	Depth int
}

func (r Record) String() string {
	v, err := r.Value.MarshalJSON()
	if err != nil {
		v = []byte(err.Error())
	}
	return fmt.Sprintf("Node key : %s\nNode value : %s\nNode path : %s\n", r.Key, v, r.Path)
}

// Stream returns the records of node in pre-order.  Each container value is
// yielded before its children.  The walk does no work until ranged over and
// can be ranged over any number of times.
func Stream(node *ir.Node) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		if node == nil {
			return
		}
		walk(node, "", "", 0, yield)
	}
}

func walk(node *ir.Node, key, path string, depth int, yield func(Record) bool) bool {
	switch node.Type {
	case ir.ObjectType:
		for i, f := range node.Fields {
			rec := Record{
				Key:   f.String,
				Value: node.Values[i],
				Path:  path + "/" + pointer.Escape(f.String),
				Depth: depth + 1,
			}
			if !emit(rec, yield) {
				return false
			}
		}
	case ir.ArrayType:
		for i, v := range node.Values {
			rec := Record{
				Key:   key,
				Value: v,
				Path:  path + "/" + strconv.Itoa(i),
				Depth: depth + 1,
			}
			if !emit(rec, yield) {
				return false
			}
		}
	}
	return true
}

func emit(rec Record, yield func(Record) bool) bool {
	if debug.Stream() {
		debug.Logf("stream %s %s\n", rec.Path, debug.Node{rec.Value})
	}
	if !yield(rec) {
		return false
	}
	if rec.Value.IsContainer() {
		return walk(rec.Value, rec.Key, rec.Path, rec.Depth, yield)
	}
	return true
}

// Filter yields the records of seq satisfying pred.
func Filter(seq iter.Seq[Record], pred func(Record) bool) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for r := range seq {
			if pred(r) && !yield(r) {
				return
			}
		}
	}
}

// Map yields f of each record of seq.
func Map[T any](seq iter.Seq[Record], f func(Record) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for r := range seq {
			if !yield(f(r)) {
				return
			}
		}
	}
}

// TakeWhile yields the records of seq up to the first one not satisfying
// pred.
func TakeWhile(seq iter.Seq[Record], pred func(Record) bool) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for r := range seq {
			if !pred(r) || !yield(r) {
				return
			}
		}
	}
}

func Count(seq iter.Seq[Record]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

func Collect(seq iter.Seq[Record]) []Record {
	return slices.Collect(seq)
}

func Keys(seq iter.Seq[Record]) iter.Seq[string] {
	return Map(seq, func(r Record) string { return r.Key })
}

func Paths(seq iter.Seq[Record]) iter.Seq[string] {
	return Map(seq, func(r Record) string { return r.Path })
}

func IsContainer(r Record) bool {
	return r.Value.IsContainer()
}

func IsLeaf(r Record) bool {
	return !r.Value.IsContainer()
}

// KeyIs returns a predicate matching records with one of keys.
func KeyIs(keys ...string) func(Record) bool {
	return func(r Record) bool {
		return slices.Contains(keys, r.Key)
	}
}
