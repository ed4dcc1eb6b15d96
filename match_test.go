package xj

import (
	"testing"

	"github.com/signadot/xj/encode"
	"github.com/signadot/xj/format"
	"github.com/signadot/xj/ir"
	"github.com/signadot/xj/parse"
)

func decode(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.DecodeValue([]byte(s))
	if err != nil {
		t.Fatalf("could not decode\n%s\n%v", s, err)
	}
	return node
}

type matchTest struct {
	in    string
	match string
	res   bool
}

var matchTests = []matchTest{
	{in: "a: b", match: "a: b", res: true},
	{in: "a: b\nc: d", match: "a: b", res: true},
	{in: "a: b", match: "a: c", res: false},
	{in: "a: b", match: "a: b\nc: null", res: false},
	{in: "a: b\nc: 1", match: "c: null", res: true},
	{in: "a: 1", match: "a: 1.0", res: true},
	{in: "a: 1", match: "a: '1'", res: false},
	{in: "[1, 2]", match: "[1, null]", res: true},
	{in: "[1, 2]", match: "[1]", res: false},
	{in: "x:\n  y:\n    z: true", match: "x: {y: {z: true}}", res: true},
	{in: "x:\n  y:\n    z: true", match: "x: {y: {z: false}}", res: false},
	{in: "hello", match: "hello", res: true},
	{in: "null", match: "a: 1", res: false},
}

func TestMatch(t *testing.T) {
	for i := range matchTests {
		mt := &matchTests[i]
		got := Match(decode(t, mt.in), decode(t, mt.match))
		if got != mt.res {
			t.Errorf("match %q on %q: got %t want %t", mt.match, mt.in, got, mt.res)
		}
	}
}

func TestMatchConverted(t *testing.T) {
	doc, err := parse.ParseString(`<book id="7"><title>Go</title><year>2015</year></book>`)
	if err != nil {
		t.Fatal(err)
	}
	if !Match(doc, decode(t, `{"book":{"id":7,"title":"Go"}}`)) {
		t.Errorf("no match")
	}
	if Match(doc, decode(t, `{"book":{"id":"7"}}`)) {
		t.Errorf("string matched a number")
	}
}

type trimTest struct {
	doc    string
	match  string
	result string
}

var trimTests = []trimTest{
	{doc: "a: b\nc: d\ne: f", match: "a: b\nc: d", result: `{"a":"b","c":"d"}`},
	{doc: "a: b\nc: d", match: "c: d", result: `{"c":"d"}`},
	{doc: "a:\n  x: 1\n  y: 2\nb: 3", match: "b: 3\na:\n  x: 1", result: `{"a":{"x":1},"b":3}`},
	{doc: "- a: 1\n- b: 2\n- c: 3", match: "- a: 1\n- c: 3", result: `[{"a":1},{"c":3}]`},
	{doc: "a: b", match: "a: b\nc: null", result: `{"a":"b"}`},
	{doc: "42", match: "42", result: `42`},
}

func TestTrim(t *testing.T) {
	for i, tt := range trimTests {
		res := Trim(decode(t, tt.match), decode(t, tt.doc))
		got := encode.MustString(res, encode.EncodeFormat(format.JSONFormat))
		if got != tt.result {
			t.Errorf("test %d: got %s want %s", i, got, tt.result)
		}
	}
}
