package parse

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/xj/ir"
)

func TestConfig(t *testing.T) {
	c := DefaultConfig()
	if c.KeepStrings() || c.ConvertNilToNull() || c.ContentKey() != "content" {
		t.Fatalf("bad defaults: %+v", c)
	}
	hints := map[string]TypeHint{"int": BuiltinTypeHint("int")}
	d := c.With(KeepStrings(true), ContentKey("#text"), TypeHints(hints))
	hints["float"] = BuiltinTypeHint("float")

	if c.KeepStrings() || c.ContentKey() != "content" || len(c.TypeHints()) != 0 {
		t.Errorf("With changed the receiver")
	}
	if !d.KeepStrings() || d.ContentKey() != "#text" {
		t.Errorf("With did not apply options")
	}
	if d.TypeHint("int") == nil || d.TypeHint("float") != nil {
		t.Errorf("hint table not copied")
	}
	got := d.TypeHints()
	delete(got, "int")
	if d.TypeHint("int") == nil {
		t.Errorf("TypeHints exposed the table")
	}
}

func TestBuiltinTypeHint(t *testing.T) {
	tests := []struct {
		name, text string
		want       string
		err        error
	}{
		{"string", "0042", `"0042"`, nil},
		{"integer", "42", `42`, nil},
		{"Long", "-7", `-7`, nil},
		{"int", "4.2", ``, strconv.ErrSyntax},
		{"double", "4.25", `4.25`, nil},
		{"decimal", "abc", ``, strconv.ErrSyntax},
		{"boolean", "TRUE", `true`, nil},
		{"bool", "yes", ``, strconv.ErrSyntax},
		{"null", "whatever", `null`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.text, func(t *testing.T) {
			h := BuiltinTypeHint(tt.name)
			if h == nil {
				t.Fatal("no hint")
			}
			got, err := h(tt.text)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if s := jsonOf(t, got); s != tt.want {
				t.Errorf("got %s want %s", s, tt.want)
			}
		})
	}
	if BuiltinTypeHint("date") != nil {
		t.Errorf("unexpected hint")
	}
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Node
	}{
		{"", ir.FromString("")},
		{"true", ir.FromBool(true)},
		{"TRUE", ir.FromString("TRUE")},
		{"null", ir.Null()},
		{"0", ir.FromInt(0)},
		{"-12", ir.FromInt(-12)},
		{"+1", ir.FromString("+1")},
		{"01", ir.FromString("01")},
		{"00", ir.FromString("00")},
		{"0d12", ir.FromString("0d12")},
		{"-0d12", ir.FromString("-0d12")},
		{"1.5", ir.FromNumberText(1.5, "1.5")},
		{"-0", ir.FromNumberText(0, "-0")},
		{"1e400", ir.FromString("1e400")},
		{"1.2.3", ir.FromString("1.2.3")},
		{"9223372036854775808", &ir.Node{Type: ir.NumberType, Number: "9223372036854775808"}},
		{"abc", ir.FromString("abc")},
	}
	for _, tt := range tests {
		got := Coerce(tt.in)
		if diff := cmp.Diff(jsonOf(t, tt.want), jsonOf(t, got)); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.in, diff)
		}
		if got.Type != tt.want.Type {
			t.Errorf("%q: type %s want %s", tt.in, got.Type, tt.want.Type)
		}
	}
}
