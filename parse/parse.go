package parse

import (
	"bytes"
	"io"
	"slices"
	"strings"

	"github.com/signadot/xj/debug"
	"github.com/signadot/xj/ir"
	"github.com/signadot/xj/ir/pointer"
	"github.com/signadot/xj/token"
)

// Parse converts the XML read from r into a tree.  The root is always an
// object; input without markup gives an empty one.
func Parse(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	o := getOpts(opts)
	if err := check(r, o); err != nil {
		return nil, err
	}
	return parse(r, o)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse(strings.NewReader(s), opts...)
}

func ParseBytes(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return Parse(bytes.NewReader(d), opts...)
}

// ParseAt converts r and returns the subtree addressed by the pointer ptr,
// or nil, nil when there is none.
func ParseAt(r io.Reader, ptr string, opts ...ParseOption) (*ir.Node, error) {
	o := getOpts(opts)
	if err := check(r, o); err != nil {
		return nil, err
	}
	p, err := pointer.Parse(ptr)
	if err != nil {
		return nil, err
	}
	root, err := parse(r, o)
	if err != nil {
		return nil, err
	}
	if debug.Pointer() {
		debug.Logf("resolve %q in %s\n", ptr, debug.Node{root})
	}
	return root.Resolve(p)
}

// ReplaceAt converts r, replaces the value addressed by ptr with v and
// returns the root.  It returns nil, nil when ptr addresses nothing.
func ReplaceAt(r io.Reader, ptr string, v *ir.Node, opts ...ParseOption) (*ir.Node, error) {
	o := getOpts(opts)
	if err := check(r, o); err != nil {
		return nil, err
	}
	p, err := pointer.Parse(ptr)
	if err != nil {
		return nil, err
	}
	root, err := parse(r, o)
	if err != nil {
		return nil, err
	}
	if debug.Pointer() {
		debug.Logf("replace %q with %s\n", ptr, debug.Node{v})
	}
	return root.Replace(p, v)
}

// ParseRenamed is Parse with every key passed through rename.
func ParseRenamed(r io.Reader, rename func(string) string, opts ...ParseOption) (*ir.Node, error) {
	return Parse(r, slices.Concat(opts, []ParseOption{RenameKeys(rename)})...)
}

func check(r io.Reader, o *parseOpts) error {
	if r == nil {
		return ErrNilReader
	}
	if o.renameSet && o.rename == nil {
		return ErrNilRenamer
	}
	return nil
}

func parse(r io.Reader, o *parseOpts) (*ir.Node, error) {
	c := &converter{
		s:      token.NewScanner(r),
		cfg:    o.config,
		rename: o.rename,
	}
	return c.convert()
}
