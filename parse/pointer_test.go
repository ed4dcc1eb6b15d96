package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/xj/ir"
)

const catalog = `<?xml version="1.0"?>
<catalog>
   <book id="bk101">
      <author>Gambardella, Matthew</author>
      <title>XML Developer's Guide</title>
      <price>44.95</price>
   </book>
   <book id="bk102">
      <author>Ralls, Kim</author>
      <title>Midnight Rain</title>
      <price>5.95</price>
   </book>
</catalog>`

func TestParseAt(t *testing.T) {
	tests := []struct {
		ptr  string
		want string
		err  error
	}{
		{ptr: "/catalog/book/0/title", want: `"XML Developer's Guide"`},
		{ptr: "/catalog/book/1/price", want: `5.95`},
		{ptr: "/catalog/book/1", want: `{"id":"bk102","author":"Ralls, Kim","title":"Midnight Rain","price":5.95}`},
		{ptr: "", want: ""},
		{ptr: "/catalog/nosuchkey"},
		{ptr: "/catalog/book/9"},
		{ptr: "/catalog/book/title", err: ir.ErrTypeMismatch},
		{ptr: "/catalog/book/0/title/x", err: ir.ErrTypeMismatch},
		{ptr: "catalog", err: ir.ErrBadPointer},
	}
	for _, tt := range tests {
		t.Run(tt.ptr, func(t *testing.T) {
			got, err := ParseAt(strings.NewReader(catalog), tt.ptr)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("got %v want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if tt.ptr == "" {
				if got == nil || !got.Has("catalog") {
					t.Errorf("expected the root, got %v", got)
				}
				return
			}
			if tt.want == "" {
				if got != nil {
					t.Errorf("expected not found, got %s", jsonOf(t, got))
				}
				return
			}
			if s := jsonOf(t, got); s != tt.want {
				t.Errorf("got %s want %s", s, tt.want)
			}
		})
	}
}

func TestReplaceAt(t *testing.T) {
	repl := ir.FromKeyVals([]ir.KeyVal{{Key: "street", Val: ir.FromString("Ave of the Americas")}})
	root, err := ReplaceAt(strings.NewReader(catalog), "/catalog/book/0", repl)
	if err != nil {
		t.Fatal(err)
	}
	got, err := root.GetPointer("/catalog/book/0/street")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.String != "Ave of the Americas" {
		t.Fatalf("got %v", got)
	}
	if p := got.Pointer(); p != "/catalog/book/0/street" {
		t.Errorf("pointer %s", p)
	}
	other, _ := root.GetPointer("/catalog/book/1/id")
	if other == nil || other.String != "bk102" {
		t.Errorf("sibling changed: %v", other)
	}

	root, err = ReplaceAt(strings.NewReader(catalog), "/catalog/nosuchkey/1", ir.FromInt(1))
	if err != nil || root != nil {
		t.Errorf("got %v %v", root, err)
	}

	root, err = ReplaceAt(strings.NewReader(catalog), "", ir.FromInt(1))
	if err != nil || root == nil || *root.Int64 != 1 {
		t.Errorf("got %v %v", root, err)
	}
}

func TestReplaceAtNil(t *testing.T) {
	root, err := ReplaceAt(strings.NewReader("<a>1</a>"), "/a", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := jsonOf(t, root); got != `{"a":null}` {
		t.Errorf("got %s", got)
	}
	root, err = ReplaceAtAsync(strings.NewReader("<a><b>1</b></a>"), "/a/b", nil).Wait()
	if err != nil {
		t.Fatal(err)
	}
	if got := jsonOf(t, root); got != `{"a":{"b":null}}` {
		t.Errorf("got %s", got)
	}
}
