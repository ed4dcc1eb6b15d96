// Package token provides the position tracking scanner used to read XML.
//
// [Scanner] reads runes one at a time, keeping a rune offset, a 1-based line
// and a column, and supports backing up a single rune.
//
// The structural readers [Scanner.NextToken], [Scanner.NextContent],
// [Scanner.NextMeta] and [Scanner.NextCDATA] split markup into the pieces the
// converter in package parse works with. Failures are reported as
// [*SyntaxErr] carrying the cursor position.
package token
