package parse

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/xj/debug"
	"github.com/signadot/xj/ir"
	"github.com/signadot/xj/token"
)

type converter struct {
	s      *token.Scanner
	cfg    *Config
	rename func(string) string
}

func (c *converter) key(k string) string {
	if c.rename == nil {
		return k
	}
	return c.rename(k)
}

func (c *converter) contentKey() string {
	return c.key(c.cfg.contentKey)
}

// convert reads constructs until end of input.  Text outside of markup is
// skipped.
func (c *converter) convert() (*ir.Node, error) {
	root := ir.Object()
	for c.s.More() {
		if _, err := c.s.SkipPast("<"); err != nil {
			return nil, err
		}
		if !c.s.More() {
			break
		}
		if _, err := c.parse(root, "", false); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// parse reads one construct following a '<' into ctx.  name is the element
// whose body is being read when open is true.  It returns true when the
// construct was the close tag of that element.
func (c *converter) parse(ctx *ir.Node, name string, open bool) (bool, error) {
	tk, err := c.s.NextToken()
	if err != nil {
		return false, err
	}
	switch tk.Type {
	case token.TBang:
		return false, c.bang(ctx)
	case token.TQuest:
		_, err := c.s.SkipPast("?>")
		return false, err
	case token.TSlash:
		return true, c.closeTag(name, open)
	}
	if !tk.IsName() {
		return false, c.s.SyntaxErr("Misshaped tag")
	}
	return false, c.element(ctx, tk.Text)
}

// bang handles comments, CDATA sections and declarations after "<!".
func (c *converter) bang(ctx *ir.Node) error {
	s := c.s
	r, err := s.Next()
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	switch {
	case err != nil:
	case r == '-':
		r, err := s.Next()
		if err == nil && r == '-' {
			_, err := s.SkipPast("-->")
			return err
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if err := s.Back(); err != nil {
			return err
		}
	case r == '[':
		tk, err := s.NextToken()
		if err != nil {
			return err
		}
		if tk.IsName() && tk.Text == "CDATA" {
			r, err := s.Next()
			if err == nil && r == '[' {
				text, err := s.NextCDATA()
				if err != nil {
					return err
				}
				if text != "" {
					ctx.Accumulate(c.contentKey(), ir.FromString(text))
				}
				return nil
			}
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
		}
		return s.SyntaxErr("Expected 'CDATA['")
	}
	depth := 1
	for depth > 0 {
		tk, err := s.NextMeta()
		if err != nil {
			return err
		}
		switch tk.Type {
		case token.TLT:
			depth++
		case token.TGT:
			depth--
		}
	}
	return nil
}

func (c *converter) closeTag(name string, open bool) error {
	s := c.s
	tk, err := s.NextToken()
	if err != nil {
		return err
	}
	if !open {
		return s.SyntaxErr("Mismatched close tag " + tk.Text)
	}
	if tk.Text != name {
		return s.SyntaxErr("Mismatched " + name + " and " + tk.Text)
	}
	tk, err = s.NextToken()
	if err != nil {
		return err
	}
	if tk.Type != token.TGT {
		return s.SyntaxErr("Misshaped close tag")
	}
	return nil
}

// hint is the xsi:type conversion selected for an element.
type hint struct {
	name string
	fn   TypeHint
}

// element reads the attributes and then the body of the element tagName
// and accumulates its value into ctx.
func (c *converter) element(ctx *ir.Node, tagName string) error {
	s := c.s
	if debug.Convert() {
		debug.Logf("convert open %s at %s\n", tagName, s.Pos())
	}
	var (
		obj   = ir.Object()
		isNil bool
		th    *hint
		tk    *token.Token
		err   error
	)
	for {
		if tk == nil {
			if tk, err = s.NextToken(); err != nil {
				return err
			}
		}
		switch {
		case tk.IsName():
			attr := tk.Text
			if tk, err = s.NextToken(); err != nil {
				return err
			}
			if tk.Type != token.TEq {
				obj.Accumulate(c.key(attr), ir.FromString(""))
				continue
			}
			if tk, err = s.NextToken(); err != nil {
				return err
			}
			if !tk.IsName() {
				return s.SyntaxErr("Missing value")
			}
			switch {
			case c.cfg.convertNil && attr == NilAttr && strings.EqualFold(tk.Text, "true"):
				isNil = true
			case len(c.cfg.typeHints) > 0 && attr == TypeAttr:
				th = nil
				if fn := c.cfg.typeHints[tk.Text]; fn != nil {
					th = &hint{name: tk.Text, fn: fn}
				}
			case !isNil:
				obj.Accumulate(c.key(attr), c.value(tk.Text))
			}
			tk = nil
		case tk.Type == token.TSlash:
			if tk, err = s.NextToken(); err != nil {
				return err
			}
			if tk.Type != token.TGT {
				return s.SyntaxErr("Misshaped tag")
			}
			var v *ir.Node
			switch {
			case isNil:
				v = ir.Null()
			case obj.Len() > 0:
				v = obj
			default:
				v = ir.FromString("")
			}
			c.closed(ctx, tagName, v)
			return nil
		case tk.Type == token.TGT:
			return c.body(ctx, tagName, obj, isNil, th)
		default:
			return s.SyntaxErr("Misshaped tag")
		}
	}
}

// body reads element content up to the matching close tag.
func (c *converter) body(ctx *ir.Node, tagName string, obj *ir.Node, isNil bool, th *hint) error {
	s := c.s
	for {
		tk, err := s.NextContent()
		if errors.Is(err, io.EOF) {
			return s.SyntaxErr("Unclosed tag " + tagName)
		}
		if err != nil {
			return err
		}
		switch tk.Type {
		case token.TText:
			if tk.Text == "" {
				continue
			}
			v, err := c.text(tk.Text, th)
			if err != nil {
				return err
			}
			obj.Accumulate(c.contentKey(), v)
		case token.TLT:
			closed, err := c.parse(obj, tagName, true)
			if err != nil {
				return err
			}
			if !closed {
				continue
			}
			var v *ir.Node
			switch {
			case isNil:
				v = ir.Null()
			case obj.Len() == 0:
				v = ir.FromString("")
			case obj.Len() == 1 && obj.Has(c.contentKey()):
				v = ir.Get(obj, c.contentKey())
			default:
				v = obj
			}
			c.closed(ctx, tagName, v)
			return nil
		}
	}
}

func (c *converter) closed(ctx *ir.Node, tagName string, v *ir.Node) {
	if debug.Convert() {
		debug.Logf("convert close %s: %s\n", tagName, debug.Node{v})
	}
	ctx.Accumulate(c.key(tagName), v)
}

func (c *converter) value(text string) *ir.Node {
	if c.cfg.keepStrings {
		return ir.FromString(text)
	}
	return Coerce(text)
}

func (c *converter) text(text string, th *hint) (*ir.Node, error) {
	if th == nil {
		return c.value(text), nil
	}
	v, err := th.fn(text)
	if err != nil {
		return nil, &token.SyntaxErr{
			Reason: fmt.Sprintf("Invalid xsi:type %s value %q", th.name, text),
			Pos:    c.s.Pos(),
			Err:    err,
		}
	}
	if v == nil {
		v = ir.Null()
	}
	return v, nil
}
