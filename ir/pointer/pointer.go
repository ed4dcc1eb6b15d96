package pointer

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var ErrBadPointer = errors.New("bad pointer")

// Pointer is a sequence of unescaped reference tokens. The empty pointer
// denotes the root.
type Pointer []string

// Parse parses s. The root may be written as "" or "/"; a leading "#"
// selects the URI fragment form whose tokens are percent-decoded.
func Parse(s string) (Pointer, error) {
	if s == "" || s == "/" || s == "#" || s == "#/" {
		return Pointer{}, nil
	}
	fragment := false
	if s[0] == '#' {
		fragment = true
		s = s[1:]
	}
	if s[0] != '/' {
		return nil, fmt.Errorf("%w: %q must start with '/'", ErrBadPointer, s)
	}
	parts := strings.Split(s[1:], "/")
	res := make(Pointer, len(parts))
	for i, part := range parts {
		if fragment {
			dec, err := url.PathUnescape(part)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrBadPointer, err)
			}
			part = dec
		}
		res[i] = Unescape(part)
	}
	return res, nil
}

func MustParse(s string) Pointer {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the pointer in the form accepted by Parse.
func (p Pointer) String() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for _, tok := range p {
		b.WriteByte('/')
		b.WriteString(Escape(tok))
	}
	return b.String()
}

// Fragment returns the URI fragment form of p.
func (p Pointer) Fragment() string {
	var b strings.Builder
	b.WriteByte('#')
	for _, tok := range p {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(Escape(tok)))
	}
	return b.String()
}

// Append returns a new pointer with toks added at the end.
func (p Pointer) Append(toks ...string) Pointer {
	res := make(Pointer, len(p), len(p)+len(toks))
	copy(res, p)
	return append(res, toks...)
}

// AppendIndex returns a new pointer with index i added at the end.
func (p Pointer) AppendIndex(i int) Pointer {
	return p.Append(strconv.Itoa(i))
}

// Parent returns p without its last token, and that token.
func (p Pointer) Parent() (Pointer, string) {
	if len(p) == 0 {
		return nil, ""
	}
	return p[:len(p)-1], p[len(p)-1]
}

func (p Pointer) IsRoot() bool {
	return len(p) == 0
}

// Escape escapes a single reference token.
func Escape(tok string) string {
	if !strings.ContainsAny(tok, "~/") {
		return tok
	}
	return strings.ReplaceAll(strings.ReplaceAll(tok, "~", "~0"), "/", "~1")
}

// Unescape reverses Escape.
func Unescape(tok string) string {
	if !strings.Contains(tok, "~") {
		return tok
	}
	return strings.ReplaceAll(strings.ReplaceAll(tok, "~1", "/"), "~0", "~")
}

// Index parses tok as an array index. Signs and leading zeros are not
// accepted.
func Index(tok string) (int, bool) {
	if tok == "" {
		return 0, false
	}
	if len(tok) > 1 && tok[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return i, true
}
