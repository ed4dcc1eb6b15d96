// Package encode renders [ir.Node] trees as XML, JSON or YAML.
//
// # Usage
//
//	// XML, the default
//	err := encode.Encode(node, os.Stdout, encode.RootName("doc"))
//
//	// indented, colored JSON
//	err := encode.Encode(node, os.Stdout,
//	    encode.EncodeFormat(format.JSONFormat),
//	    encode.Indent(2),
//	    encode.EncodeColors(encode.NewColors()))
//
// XML output follows the conversion done by package parse in reverse:
// object keys become elements, arrays become repeated elements and the
// content key becomes element text.
//
// # Related Packages
//
//   - github.com/signadot/xj/ir - tree representation
//   - github.com/signadot/xj/parse - XML to tree conversion
package encode
