// Package stream walks converted trees lazily.
//
// [Stream] yields a [Record] for every object key and array element in
// depth first order.  Records carry a JSON pointer to the value, so any
// record can be fed back to [ir.Node.GetPointer].
//
//	for rec := range stream.Filter(stream.Stream(root), stream.IsContainer) {
//	    fmt.Println(rec.Path)
//	}
//
// [Compile] builds a [Query] from an expr-lang expression evaluated against
// each record, for example
//
//	type == "String" && hasPrefix(path, "/catalog/book")
package stream
