// Package patch applies RFC 6902 JSON Patch and RFC 7386 merge patch
// documents to trees.
//
// Trees go through their JSON text, so the result of a patch is a new tree
// and the input is left untouched.
package patch
