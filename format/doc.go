// Package format names the textual formats xj reads and writes.
//
// XML is the markup side of every conversion; JSON and YAML are renderings of
// the converted tree.
package format
