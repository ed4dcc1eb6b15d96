package pointer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Pointer
	}{
		{"", Pointer{}},
		{"/", Pointer{}},
		{"#", Pointer{}},
		{"#/", Pointer{}},
		{"/a", Pointer{"a"}},
		{"/a/b/0", Pointer{"a", "b", "0"}},
		{"/a~1b/c~0d", Pointer{"a/b", "c~d"}},
		{"/~01", Pointer{"~1"}},
		{"//", Pointer{"", ""}},
		{"#/a%20b/0", Pointer{"a b", "0"}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"a", "a/b", "#a", "#/%zz"} {
		if _, err := Parse(in); !errors.Is(err, ErrBadPointer) {
			t.Errorf("%q: expected ErrBadPointer, got %v", in, err)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, in := range []string{"", "/a", "/a/b/0", "/a~1b/c~0d", "/~01"} {
		p := MustParse(in)
		if got := p.String(); got != in {
			t.Errorf("got %q want %q", got, in)
		}
	}
	p := Pointer{"a b", "x/y"}
	if got := p.Fragment(); got != "#/a%20b/x~1y" {
		t.Errorf("got fragment %q", got)
	}
	back, err := Parse(p.Fragment())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(p, back); diff != "" {
		t.Error(diff)
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		tok  string
		want int
		ok   bool
	}{
		{"0", 0, true},
		{"12", 12, true},
		{"01", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{"", 0, false},
		{"x", 0, false},
		{"99999999999999999999999", 0, false},
	}
	for _, tt := range tests {
		got, ok := Index(tt.tok)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%q: got %d %v", tt.tok, got, ok)
		}
	}
}

func TestAppendDoesNotAlias(t *testing.T) {
	base := make(Pointer, 1, 4)
	base[0] = "a"
	x := base.Append("x")
	y := base.Append("y")
	if x[1] != "x" || y[1] != "y" {
		t.Errorf("aliasing: %v %v", x, y)
	}
	if got := base.AppendIndex(3).String(); got != "/a/3" {
		t.Errorf("got %q", got)
	}
	parent, last := x.Parent()
	if parent.String() != "/a" || last != "x" {
		t.Errorf("Parent: %v %q", parent, last)
	}
}
