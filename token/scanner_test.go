package token

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestScannerPos(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want Pos
	}{
		{"start", "abc", 0, Pos{Offset: 0, Line: 1, Column: 0}},
		{"one", "abc", 1, Pos{Offset: 1, Line: 1, Column: 1}},
		{"newline", "ab\ncd", 3, Pos{Offset: 3, Line: 2, Column: 0}},
		{"after newline", "ab\ncd", 4, Pos{Offset: 4, Line: 2, Column: 1}},
		{"crlf", "a\r\nb", 3, Pos{Offset: 3, Line: 2, Column: 0}},
		{"cr", "a\rb", 3, Pos{Offset: 3, Line: 2, Column: 1}},
		{"runes", "héllo", 3, Pos{Offset: 3, Line: 1, Column: 3}},
		{"past end", "ab", 5, Pos{Offset: 2, Line: 1, Column: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner(strings.NewReader(tt.in))
			for range tt.n {
				_, _ = s.Next()
			}
			if got := s.Pos(); got != tt.want {
				t.Errorf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestScannerBack(t *testing.T) {
	s := NewScanner(iotest.OneByteReader(strings.NewReader("a\nb")))
	if err := s.Back(); !errors.Is(err, ErrBackTwice) {
		t.Fatalf("back at start: got %v", err)
	}
	for range 2 {
		if _, err := s.Next(); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.Pos(); got != (Pos{Offset: 2, Line: 2}) {
		t.Fatalf("got %v", got)
	}
	if err := s.Back(); err != nil {
		t.Fatal(err)
	}
	if got := s.Pos(); got != (Pos{Offset: 1, Line: 1, Column: 1}) {
		t.Errorf("after back got %v", got)
	}
	if err := s.Back(); !errors.Is(err, ErrBackTwice) {
		t.Errorf("second back: got %v", err)
	}
	if !s.More() {
		t.Errorf("expected more after back")
	}
	r, err := s.Next()
	if err != nil || r != '\n' {
		t.Fatalf("got %q %v", r, err)
	}
	if got := s.Pos(); got != (Pos{Offset: 2, Line: 2}) {
		t.Errorf("re-read got %v", got)
	}
	r, _ = s.Next()
	if r != 'b' {
		t.Errorf("got %q", r)
	}
	if s.More() {
		t.Errorf("expected no more")
	}
	if _, err := s.Next(); err != io.EOF {
		t.Errorf("expected EOF, got %v", err)
	}
	if got := s.Pos(); got != (Pos{Offset: 3, Line: 2, Column: 1}) {
		t.Errorf("at end got %v", got)
	}
}

func TestSkipPast(t *testing.T) {
	s := NewScanner(strings.NewReader("<!-- a - b -- c -->rest"))
	found, err := s.SkipPast("-->")
	if err != nil || !found {
		t.Fatalf("got %v %v", found, err)
	}
	if got := s.Pos().Offset; got != 19 {
		t.Errorf("offset %d", got)
	}
	found, err = s.SkipPast("-->")
	if err != nil || found {
		t.Errorf("got %v %v", found, err)
	}
}

func TestSyntaxErr(t *testing.T) {
	err := error(NewSyntaxErr("Misshaped tag", Pos{Offset: 176, Line: 4, Column: 14}))
	if got, want := err.Error(), "Misshaped tag at 176 [character 14 line 4]"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("not a syntax error")
	}
	cause := errors.New("cause")
	err = &SyntaxErr{Reason: "r", Err: cause}
	if !errors.Is(err, cause) || !errors.Is(err, ErrSyntax) {
		t.Errorf("wrapping lost")
	}
	var se *SyntaxErr
	if !errors.As(err, &se) || se.Reason != "r" {
		t.Errorf("as failed")
	}
}
