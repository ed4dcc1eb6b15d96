// Package parse converts XML into [ir.Node] trees.
//
// Elements become object keys, attributes and element text become values
// and repeated siblings are gathered into arrays.  Text that looks like a
// number, boolean or null is coerced unless [KeepStrings] is set, and
// elements may carry xsi:nil and xsi:type hints (see [ConvertNilToNull] and
// [TypeHints]).
//
// [ParseAt] and [ReplaceAt] address the converted tree with a JSON pointer,
// [ParseRenamed] rewrites every key on the way in and the Async variants run
// a conversion on its own goroutine, returning a [*Future].
//
// [DecodeValue] reads JSON or YAML into the same tree representation.
package parse
