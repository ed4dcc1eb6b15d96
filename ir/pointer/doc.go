// Package pointer parses and prints slash-delimited paths into a converted
// tree.
//
// A pointer is a sequence of reference tokens. Each token is an object key or,
// against an array, a base-10 index:
//
//	""           the root
//	"/"          the root
//	"/a/b/0"     key a, key b, index 0
//	"/a~1b/c~0d" keys "a/b" and "c~d"
//	"#/a%20b/0"  URI fragment form of key "a b", index 0
//
// Within a token "~1" stands for '/' and "~0" for '~'.
//
// # Usage
//
//	p, err := pointer.Parse("/catalog/book/2")
//	child := p.Append("title")
//	idx, ok := pointer.Index(p[len(p)-1]) // 2, true
package pointer
