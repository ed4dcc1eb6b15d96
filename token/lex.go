package token

import (
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/signadot/xj/debug"
)

// read is Next with end of input reported as ok == false.
func (s *Scanner) read() (r rune, ok bool, err error) {
	r, err = s.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return r, true, nil
}

func (s *Scanner) skipSpace() (rune, bool, error) {
	for {
		r, ok, err := s.read()
		if err != nil || !ok {
			return 0, false, err
		}
		if !IsSpace(r) {
			return r, true, nil
		}
	}
}

func (s *Scanner) token(typ TokenType, text string, start Pos) *Token {
	tok := &Token{Type: typ, Text: text, Pos: start}
	if debug.Scan() {
		debug.Logf("scan %s\n", tok.String())
	}
	return tok
}

// NextToken reads the next token inside a tag: a symbol, a quoted string
// with entities decoded or a name.
func (s *Scanner) NextToken() (*Token, error) {
	r, ok, err := s.skipSpace()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.SyntaxErr("Misshaped element")
	}
	start := s.before
	if r == '<' {
		return nil, s.SyntaxErr("Misplaced '<'")
	}
	if typ, isSym := symbols[r]; isSym {
		return s.token(typ, string(r), start), nil
	}
	if r == '"' || r == '\'' {
		return s.quoted(r, start)
	}
	return s.name(r, start)
}

func (s *Scanner) quoted(q rune, start Pos) (*Token, error) {
	var b strings.Builder
	for {
		r, ok, err := s.read()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, s.SyntaxErr("Unterminated string")
		}
		switch r {
		case q:
			return s.token(TString, b.String(), start), nil
		case '&':
			e, err := s.NextEntity()
			if err != nil {
				return nil, err
			}
			b.WriteString(e)
		default:
			b.WriteRune(r)
		}
	}
}

func (s *Scanner) name(first rune, start Pos) (*Token, error) {
	var b strings.Builder
	b.WriteRune(first)
	for {
		r, ok, err := s.read()
		if err != nil {
			return nil, err
		}
		if !ok || IsSpace(r) {
			return s.token(TName, b.String(), start), nil
		}
		switch r {
		case '>', '/', '=', '!', '?', '[', ']':
			if err := s.Back(); err != nil {
				return nil, err
			}
			return s.token(TName, b.String(), start), nil
		case '<', '"', '\'':
			return nil, s.SyntaxErr("Bad character in a name")
		}
		b.WriteRune(r)
	}
}

// NextContent reads the text between tags, or a TLT token when the next
// non space rune is '<'.  Text has its entities decoded and is trimmed of
// leading and trailing control and space characters.  At end of input it
// returns io.EOF.
func (s *Scanner) NextContent() (*Token, error) {
	r, ok, err := s.skipSpace()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, io.EOF
	}
	start := s.before
	if r == '<' {
		return s.token(TLT, "<", start), nil
	}
	var b strings.Builder
	for {
		if r == '<' {
			if err := s.Back(); err != nil {
				return nil, err
			}
			break
		}
		if r == '&' {
			e, err := s.NextEntity()
			if err != nil {
				return nil, err
			}
			b.WriteString(e)
		} else {
			b.WriteRune(r)
		}
		r, ok, err = s.read()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	return s.token(TText, trimText(b.String()), start), nil
}

func trimText(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
}

// NextMeta reads the next token of a <! ... > declaration.  Symbols are
// returned as such; quoted strings and other runs of text come back as TMeta.
func (s *Scanner) NextMeta() (*Token, error) {
	r, ok, err := s.skipSpace()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.SyntaxErr("Misshaped meta tag")
	}
	start := s.before
	if typ, isSym := symbols[r]; isSym {
		return s.token(typ, string(r), start), nil
	}
	var b strings.Builder
	b.WriteRune(r)
	if r == '"' || r == '\'' {
		q := r
		for {
			r, ok, err := s.read()
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, s.SyntaxErr("Unterminated string")
			}
			b.WriteRune(r)
			if r == q {
				return s.token(TMeta, b.String(), start), nil
			}
		}
	}
	for {
		r, ok, err := s.read()
		if err != nil {
			return nil, err
		}
		if !ok || IsSpace(r) {
			return s.token(TMeta, b.String(), start), nil
		}
		switch r {
		case '<', '>', '/', '=', '!', '?', '"', '\'':
			if err := s.Back(); err != nil {
				return nil, err
			}
			return s.token(TMeta, b.String(), start), nil
		}
		b.WriteRune(r)
	}
}

// NextCDATA reads the body of a CDATA section, up to and consuming "]]>".
// The text is returned as is.
func (s *Scanner) NextCDATA() (string, error) {
	var b []rune
	for {
		r, ok, err := s.read()
		if err != nil {
			return "", err
		}
		if !ok {
			return "", s.SyntaxErr("Unclosed CDATA")
		}
		b = append(b, r)
		if n := len(b); n >= 3 && b[n-3] == ']' && b[n-2] == ']' && b[n-1] == '>' {
			return string(b[:n-3]), nil
		}
	}
}

// NextEntity reads an entity reference after its '&' and returns the
// decoded text.
func (s *Scanner) NextEntity() (string, error) {
	var b strings.Builder
	for {
		r, ok, err := s.read()
		if err != nil {
			return "", err
		}
		if ok && r == ';' {
			break
		}
		if !ok || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '#') {
			return "", s.SyntaxErr("Missing ';' in XML entity: &" + b.String())
		}
		b.WriteRune(r)
	}
	return unescapeEntity(b.String()), nil
}
