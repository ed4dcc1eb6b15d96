package parse

import (
	"math"
	"strconv"
	"strings"

	"github.com/signadot/xj/ir"
)

// Coerce converts element or attribute text to a boolean, null or number
// where the text reads as one, and to a string otherwise.
//
// Only text starting with a digit or '-' is tried as a number.  Integers
// must format back to the same text, so "01" and "1_000" stay strings.
// Integers too large for int64 keep their digits as number text.
func Coerce(s string) *ir.Node {
	switch s {
	case "":
		return ir.FromString(s)
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	case "null":
		return ir.Null()
	}
	c := s[0]
	if (c < '0' || c > '9') && c != '-' {
		return ir.FromString(s)
	}
	if strings.HasPrefix(s, "0d") || strings.HasPrefix(s, "-0d") {
		return ir.FromString(s)
	}
	if isDecimalNotation(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return ir.FromString(s)
		}
		return ir.FromNumberText(f, s)
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		if strconv.FormatInt(i, 10) != s {
			return ir.FromString(s)
		}
		return ir.FromInt(i)
	}
	if isBigInteger(s) {
		return &ir.Node{Type: ir.NumberType, Number: s}
	}
	return ir.FromString(s)
}

func isDecimalNotation(s string) bool {
	return strings.ContainsAny(s, ".eE") || s == "-0"
}

// isBigInteger reports whether s is a canonical integer literal.
func isBigInteger(s string) bool {
	d := strings.TrimPrefix(s, "-")
	if d == "" || (d[0] == '0' && len(d) > 1) {
		return false
	}
	for i := range len(d) {
		if d[i] < '0' || d[i] > '9' {
			return false
		}
	}
	return true
}
