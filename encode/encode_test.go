package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/signadot/xj/format"
	"github.com/signadot/xj/ir"
	"github.com/signadot/xj/parse"
)

func decode(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.DecodeValue([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func TestEncodeXML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []EncodeOption
		want string
	}{
		{
			name: "content",
			in:   `{"addresses":{"content":">"}}`,
			want: "<addresses>&gt;</addresses>",
		},
		{
			name: "content array",
			in:   `{"addresses":{"content":[1, 2, 3]}}`,
			want: "<addresses>1\n2\n3</addresses>",
		},
		{
			name: "named array",
			in:   `{"addresses":{"something":[1, 2, 3]}}`,
			want: "<addresses><something>1</something><something>2</something><something>3</something></addresses>",
		},
		{
			name: "empty array",
			in:   `{"array":[]}`,
			opts: []EncodeOption{RootName("jo")},
			want: "<jo></jo>",
		},
		{
			name: "empty inner array",
			in:   `{"arr":["One", [], "Four"]}`,
			opts: []EncodeOption{RootName("jo")},
			want: "<jo><arr>One</arr><arr></arr><arr>Four</arr></jo>",
		},
		{
			name: "inner array",
			in:   `{"arr":["One", ["Two", "Three"], "Four"]}`,
			opts: []EncodeOption{RootName("jo")},
			want: "<jo><arr>One</arr><arr><array>Two</array><array>Three</array></arr><arr>Four</arr></jo>",
		},
		{
			name: "null value",
			in:   `{"nullValue":null}`,
			want: "<nullValue>null</nullValue>",
		},
		{
			name: "empty string",
			in:   `{"a":{"name":"","n":1.5,"ok":true}}`,
			want: "<a><name/><n>1.5</n><ok>true</ok></a>",
		},
		{
			name: "empty object",
			in:   `{}`,
			want: "",
		},
		{
			name: "empty object with root",
			in:   `{}`,
			opts: []EncodeOption{RootName("r")},
			want: "<r></r>",
		},
		{
			name: "scalar",
			in:   `"a&b"`,
			want: `"a&amp;b"`,
		},
		{
			name: "root array",
			in:   `[1, {"x": 2}]`,
			want: "<array>1</array><array><x>2</x></array>",
		},
		{
			name: "root array with name",
			in:   `[1, 2]`,
			opts: []EncodeOption{RootName("n")},
			want: "<n>1</n><n>2</n>",
		},
		{
			name: "escapes",
			in:   `{"xmlEntities":"\" ' & < >","description":"Válida\u0085"}`,
			want: "<xmlEntities>&quot; &apos; &amp; &lt; &gt;</xmlEntities><description>Válida&#x85;</description>",
		},
		{
			name: "content key",
			in:   `{"a":{"#text":"t","content":"c"}}`,
			opts: []EncodeOption{EncodeContentKey("#text")},
			want: "<a>t<content>c</content></a>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustString(decode(t, tt.in), tt.opts...)
			if got != tt.want {
				t.Errorf("got\n\t%q\nwant\n\t%q", got, tt.want)
			}
		})
	}
}

func TestEncodeNull(t *testing.T) {
	if got := MustString(nil); got != `"null"` {
		t.Errorf("got %s", got)
	}
	if got := MustString(ir.Null()); got != `"null"` {
		t.Errorf("got %s", got)
	}
}

func TestXMLRoundTrip(t *testing.T) {
	in := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
		"<addresses xmlns:xsi=\"http://www.w3.org/2001/XMLSchema-instance\"" +
		"   xsi:noNamespaceSchemaLocation='test.xsd'>\n" +
		"   <address>\n" +
		"       <name>[CDATA[Joe &amp; T &gt; e &lt; s &quot; t &apos; er]]</name>\n" +
		"       <street>Baker street 5</street>\n" +
		"       <ArrayOfNum>1, 2, 3, 4.1, 5.2</ArrayOfNum>\n" +
		"       <nums>1</nums><nums>2</nums>\n" +
		"   </address>\n" +
		"</addresses>"
	first, err := parse.ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	second, err := parse.ParseString(MustString(first))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(first, second) {
		t.Errorf("round trip changed the tree:\n%s\n%s", MustString(first), MustString(second))
	}
	name, _ := second.GetPointer("/addresses/address/name")
	if want := `[CDATA[Joe & T > e < s " t ' er]]`; name == nil || name.String != want {
		t.Errorf("got %v", name)
	}
}

func TestEncodeJSON(t *testing.T) {
	node := decode(t, `{"z":1,"a":{"b":[1,"two",null,true],"e":{}},"s":"<&>"}`)
	got := MustString(node, EncodeFormat(format.JSONFormat))
	want := `{"z":1,"a":{"b":[1,"two",null,true],"e":{}},"s":"<&>"}`
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}

	indented := MustString(node, EncodeFormat(format.JSONFormat), Indent(2))
	wantIndented := `{
  "z": 1,
  "a": {
    "b": [
      1,
      "two",
      null,
      true
    ],
    "e": {}
  },
  "s": "<&>"
}`
	if indented != wantIndented {
		t.Errorf("got\n%s\nwant\n%s", indented, wantIndented)
	}
	nested := MustString(decode(t, `{"a":1}`), EncodeFormat(format.JSONFormat), Indent(2), Depth(1))
	if want := "{\n    \"a\": 1\n  }"; nested != want {
		t.Errorf("got %q want %q", nested, want)
	}
	if !gjson.Valid(indented) {
		t.Fatalf("invalid json")
	}
	if v := gjson.Get(indented, "a.b.1").String(); v != "two" {
		t.Errorf("a.b.1 = %q", v)
	}
	if v := gjson.Get(indented, "z").Int(); v != 1 {
		t.Errorf("z = %d", v)
	}
}

func TestEncodeColors(t *testing.T) {
	colors := &Colors{
		Default: func(s string, _ ...any) string { return "[" + s + "]" },
		Map:     map[Colorable]func(string, ...any) string{},
	}
	node := decode(t, `{"a":[1]}`)
	got := MustString(node, EncodeFormat(format.JSONFormat), EncodeColors(colors))
	want := `[{]["a"][:][[][1][]][}]`
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
	got = MustString(decode(t, `{"a":"x"}`), EncodeColors(colors))
	if want := "<[a]>[x]</[a]>"; got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if NewColors().Get(ir.StringType, ValueColor) == nil {
		t.Errorf("no string color")
	}
}

func TestEncodeYAML(t *testing.T) {
	node := decode(t, `{"b":1,"a":["x","2",{"c":null}],"f":1.50}`)
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "b: 1\n") {
		t.Errorf("key order lost:\n%s", out)
	}
	back := decode(t, out)
	if !ir.Equal(node, back) {
		t.Errorf("yaml round trip:\n%s", out)
	}
	if got := strings.Join(back.Keys(), ","); got != "b,a,f" {
		t.Errorf("keys %s", got)
	}
}
