package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// {"a":{"b":[{"x":1},{"x":2}]},"s":"str","k/~":true}
func pointerDoc() *Node {
	return FromKeyVals([]KeyVal{
		{"a", FromKeyVals([]KeyVal{
			{"b", FromSlice([]*Node{
				FromKeyVals([]KeyVal{{"x", FromInt(1)}}),
				FromKeyVals([]KeyVal{{"x", FromInt(2)}}),
			})},
		})},
		{"s", FromString("str")},
		{"k/~", FromBool(true)},
	})
}

func TestGetPointer(t *testing.T) {
	tests := []struct {
		ptr  string
		want string // "" means not found
	}{
		{"", `{"a":{"b":[{"x":1},{"x":2}]},"s":"str","k/~":true}`},
		{"/", `{"a":{"b":[{"x":1},{"x":2}]},"s":"str","k/~":true}`},
		{"/a/b/0", `{"x":1}`},
		{"/a/b/1/x", `2`},
		{"/a/b/9", ""},
		{"/a/nope", ""},
		{"/nope/deeper/still", ""},
		{"/k~1~0", `true`},
		{"#/k~1~0", `true`},
		{"#/a/b/0/x", `1`},
	}
	for _, tt := range tests {
		t.Run(tt.ptr, func(t *testing.T) {
			got, err := pointerDoc().GetPointer(tt.ptr)
			if err != nil {
				t.Fatal(err)
			}
			if tt.want == "" {
				if got != nil {
					t.Fatalf("expected not found, got %s", mustJSON(t, got))
				}
				return
			}
			if got == nil {
				t.Fatalf("not found")
			}
			if diff := cmp.Diff(tt.want, mustJSON(t, got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetPointerTypeMismatch(t *testing.T) {
	tests := []struct {
		ptr  string
		got  Type
		want Type
	}{
		{"/a/b/first", ArrayType, ObjectType},
		{"/s/x", StringType, ObjectType},
		{"/s/0", StringType, ArrayType},
		{"/a/b/0/x/y", NumberType, ObjectType},
	}
	for _, tt := range tests {
		t.Run(tt.ptr, func(t *testing.T) {
			_, err := pointerDoc().GetPointer(tt.ptr)
			if !errors.Is(err, ErrTypeMismatch) {
				t.Fatalf("expected type mismatch, got %v", err)
			}
			var tm *TypeMismatchError
			if !errors.As(err, &tm) {
				t.Fatalf("expected *TypeMismatchError")
			}
			if tm.Got != tt.got || tm.Want != tt.want {
				t.Errorf("got %s/%s want %s/%s", tm.Got, tm.Want, tt.got, tt.want)
			}
		})
	}
}

func TestGetPointerBadSyntax(t *testing.T) {
	if _, err := pointerDoc().GetPointer("a/b"); !errors.Is(err, ErrBadPointer) {
		t.Errorf("expected ErrBadPointer, got %v", err)
	}
}

func TestReplacePointer(t *testing.T) {
	tests := []struct {
		name string
		ptr  string
		want string // "" means not found
	}{
		{"array element", "/a/b/1", `{"a":{"b":[{"x":1},"new"]},"s":"str","k/~":true}`},
		{"leaf", "/a/b/0/x", `{"a":{"b":[{"x":"new"},{"x":2}]},"s":"str","k/~":true}`},
		{"top key", "/s", `{"a":{"b":[{"x":1},{"x":2}]},"s":"new","k/~":true}`},
		{"missing last key", "/a/c", ""},
		{"missing intermediate", "/nosuchkey/1", ""},
		{"index out of range", "/a/b/2", ""},
		{"root", "", `"new"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pointerDoc().ReplacePointer(tt.ptr, FromString("new"))
			if err != nil {
				t.Fatal(err)
			}
			if tt.want == "" {
				if got != nil {
					t.Fatalf("expected not found, got %s", mustJSON(t, got))
				}
				return
			}
			if diff := cmp.Diff(tt.want, mustJSON(t, got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReplacePointerNil(t *testing.T) {
	got, err := pointerDoc().ReplacePointer("/s", nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`{"a":{"b":[{"x":1},{"x":2}]},"s":null,"k/~":true}`, mustJSON(t, got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	root, err := pointerDoc().ReplacePointer("", nil)
	if err != nil || root == nil || root.Type != NullType {
		t.Errorf("got %v %v", root, err)
	}
}

func TestReplacePointerTypeMismatch(t *testing.T) {
	for _, p := range []string{"/a/b/x", "/s/x", "/s/x/y"} {
		_, err := pointerDoc().ReplacePointer(p, Null())
		if !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("%s: expected type mismatch, got %v", p, err)
		}
	}
}

func TestGetReplaceGet(t *testing.T) {
	doc := pointerDoc()
	var ptrs []string
	doc.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			ptrs = append(ptrs, y.Pointer())
		}
		return true, nil
	})
	for _, p := range ptrs {
		doc := pointerDoc()
		if n, err := doc.GetPointer(p); err != nil || n == nil {
			t.Fatalf("%s does not resolve: %v", p, err)
		}
		x := FromString("replacement at " + p)
		root, err := doc.ReplacePointer(p, x)
		if err != nil {
			t.Fatal(err)
		}
		got, err := root.GetPointer(p)
		if err != nil {
			t.Fatal(err)
		}
		if got != x {
			t.Errorf("%s: got %v", p, got)
		}
	}
}

func TestNodePointer(t *testing.T) {
	doc := pointerDoc()
	x := Get(doc, "a").Values[0].Values[1].Values[0]
	if got := x.Pointer(); got != "/a/b/1/x" {
		t.Errorf("got %q", got)
	}
	if got := Get(doc, "k/~").Pointer(); got != "/k~1~0" {
		t.Errorf("got %q", got)
	}
	if got := doc.Pointer(); got != "" {
		t.Errorf("got %q", got)
	}
}
