// Package xj matches converted documents against patterns.
//
// The conversions themselves live in the sub packages: [parse] turns XML
// into [ir.Node] trees, [encode] writes trees as XML, JSON or YAML and
// [stream] walks them.
package xj
