package token

import "fmt"

// Pos is a scanner cursor. Offset counts consumed runes. Column is the
// column of the last consumed rune and is 0 right after a line break.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func startPos() Pos {
	return Pos{Line: 1}
}

// advance returns the cursor after consuming r, where last is the rune
// consumed before r.  "\r\n" counts as a single line break.
func (p Pos) advance(r, last rune) Pos {
	p.Offset++
	switch r {
	case '\r':
		p.Line++
		p.Column = 0
	case '\n':
		if last != '\r' {
			p.Line++
		}
		p.Column = 0
	default:
		p.Column++
	}
	return p
}

func (p Pos) String() string {
	return fmt.Sprintf("%d [character %d line %d]", p.Offset, p.Column, p.Line)
}
