package encode

import "github.com/signadot/xj/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// RootName wraps XML output in an element with the given name.
func RootName(name string) EncodeOption {
	return func(es *EncState) { es.rootName = name }
}

// EncodeContentKey sets the key whose value is written as element text.
func EncodeContentKey(k string) EncodeOption {
	return func(es *EncState) { es.contentKey = k }
}

// Indent sets the JSON indentation width. 0 gives compact output.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth sets the starting indentation depth of JSON output.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
