package token

import "fmt"

type TokenType int

const (
	TName TokenType = iota
	TString
	TText
	TMeta
	TLT
	TGT
	TSlash
	TEq
	TBang
	TQuest
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TName:   "TName",
		TString: "TString",
		TText:   "TText",
		TMeta:   "TMeta",
		TLT:     "TLT",
		TGT:     "TGT",
		TSlash:  "TSlash",
		TEq:     "TEq",
		TBang:   "TBang",
		TQuest:  "TQuest",
	}[t]
}

// IsSymbol reports whether t is one of the single rune tokens.
func (t TokenType) IsSymbol() bool {
	return t >= TLT
}

var symbols = map[rune]TokenType{
	'<': TLT,
	'>': TGT,
	'/': TSlash,
	'=': TEq,
	'!': TBang,
	'?': TQuest,
}

type Token struct {
	Type TokenType
	Text string
	// Pos is the cursor before the first rune of the token.
	Pos Pos
}

// IsName reports whether the token can stand for a tag or attribute name or
// an attribute value: bare names and quoted strings both qualify.
func (t *Token) IsName() bool {
	return t.Type == TName || t.Type == TString
}

func (t *Token) Is(typ TokenType) bool {
	return t.Type == typ
}

func (t *Token) String() string {
	if t.Type.IsSymbol() {
		return fmt.Sprintf("%s at %s", t.Type, t.Pos)
	}
	return fmt.Sprintf("%s %q at %s", t.Type, t.Text, t.Pos)
}
