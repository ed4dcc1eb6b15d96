package token

import (
	"bufio"
	"errors"
	"io"
)

// Scanner reads runes from a reader, tracking the cursor and allowing a
// single rune of push back.
type Scanner struct {
	r io.RuneScanner

	pos    Pos  // current cursor
	before Pos  // cursor before the last consumed rune
	after  Pos  // cursor after the last consumed rune
	last   rune // last consumed rune
	backed bool // last is pending and will be returned by the next Next
	atEOF  bool // the last Next hit end of input
}

// NewScanner returns a scanner reading from r. Readers which are not
// already an io.RuneScanner are buffered.
func NewScanner(r io.Reader) *Scanner {
	rs, ok := r.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(r)
	}
	p := startPos()
	return &Scanner{r: rs, pos: p, before: p, after: p}
}

// Pos returns the current cursor.
func (s *Scanner) Pos() Pos {
	return s.pos
}

// Next consumes and returns the next rune. At end of input it returns io.EOF
// and leaves the cursor unchanged.
func (s *Scanner) Next() (rune, error) {
	if s.backed {
		s.backed = false
		s.pos = s.after
		return s.last, nil
	}
	r, _, err := s.r.ReadRune()
	if err != nil {
		s.atEOF = errors.Is(err, io.EOF)
		return 0, err
	}
	s.atEOF = false
	s.before = s.pos
	s.pos = s.pos.advance(r, s.last)
	s.after = s.pos
	s.last = r
	return r, nil
}

// Back un-reads the last rune returned by Next, restoring the cursor.
// Backing up over end of input is a no-op.  Only one rune may be pending:
// a second Back without an intervening Next fails.
func (s *Scanner) Back() error {
	if s.atEOF {
		s.atEOF = false
		return nil
	}
	if s.backed || s.pos.Offset == 0 {
		return ErrBackTwice
	}
	s.backed = true
	s.pos = s.before
	return nil
}

// More reports whether there is input left.
func (s *Scanner) More() bool {
	if s.backed {
		return true
	}
	if _, _, err := s.r.ReadRune(); err != nil {
		return false
	}
	_ = s.r.UnreadRune()
	return true
}

// SkipPast consumes input up to and including the next occurrence of to,
// reporting whether it was found.
func (s *Scanner) SkipPast(to string) (bool, error) {
	want := []rune(to)
	n := len(want)
	if n == 0 {
		return true, nil
	}
	ring := make([]rune, n)
	for i := range n {
		r, err := s.Next()
		if err != nil {
			return false, eofOK(err)
		}
		ring[i] = r
	}
	off := 0
	for {
		match := true
		for i := range n {
			if ring[(off+i)%n] != want[i] {
				match = false
				break
			}
		}
		if match {
			return true, nil
		}
		r, err := s.Next()
		if err != nil {
			return false, eofOK(err)
		}
		ring[off] = r
		off = (off + 1) % n
	}
}

// SyntaxErr returns a syntax error at the current cursor.
func (s *Scanner) SyntaxErr(reason string) *SyntaxErr {
	return NewSyntaxErr(reason, s.pos)
}

func eofOK(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
