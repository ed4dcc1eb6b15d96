package token

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var entities = map[string]rune{
	"amp":  '&',
	"lt":   '<',
	"gt":   '>',
	"quot": '"',
	"apos": '\'',
}

// IsSpace reports whether r separates tokens.  This is unicode space except
// the non breaking spaces, plus the information separators U+001C to U+001F.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x1c, 0x1d, 0x1e, 0x1f:
		return true
	case 0xa0, 0x2007, 0x202f:
		return false
	}
	if r < 0x80 {
		return false
	}
	return unicode.Is(unicode.Zs, r) || r == 0x2028 || r == 0x2029
}

// unescapeEntity decodes the name of an entity reference.  Names are
// matched without regard to case.  Unknown or unparseable references are
// returned verbatim.
func unescapeEntity(name string) string {
	if r, ok := entities[strings.ToLower(name)]; ok {
		return string(r)
	}
	if len(name) > 1 && name[0] == '#' {
		var (
			cp  int64
			err error
		)
		if name[1] == 'x' || name[1] == 'X' {
			cp, err = strconv.ParseInt(name[2:], 16, 32)
		} else {
			cp, err = strconv.ParseInt(name[1:], 10, 32)
		}
		if err == nil && utf8.ValidRune(rune(cp)) {
			return string(rune(cp))
		}
	}
	return "&" + name + ";"
}

// Unescape decodes the entity references in s.  An '&' which does not start
// a well formed reference is kept as is.
func Unescape(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	var b strings.Builder
	for {
		i := strings.IndexByte(s, '&')
		if i == -1 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		s = s[i+1:]
		j := strings.IndexFunc(s, func(r rune) bool {
			return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '#')
		})
		if j == -1 || s[j] != ';' {
			b.WriteByte('&')
			continue
		}
		b.WriteString(unescapeEntity(s[:j]))
		s = s[j+1:]
	}
}

// Escape replaces the markup characters & < > " ' with entities and writes
// characters which may not appear in XML text as hexadecimal references.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		default:
			if mustEscape(r) {
				b.WriteString("&#x")
				b.WriteString(strconv.FormatInt(int64(r), 16))
				b.WriteByte(';')
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func mustEscape(r rune) bool {
	switch r {
	case '\t', '\n', '\r':
		return false
	}
	if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
		return true
	}
	return !((r >= 0x20 && r <= 0xd7ff) ||
		(r >= 0xe000 && r <= 0xfffd) ||
		(r >= 0x10000 && r <= 0x10ffff))
}
