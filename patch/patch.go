package patch

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/xj/debug"
	"github.com/signadot/xj/ir"
	"github.com/signadot/xj/libdiff"
	"github.com/signadot/xj/parse"
)

var ErrPatch = errors.New("patch error")

// Apply applies the JSON Patch document patchJSON to doc.
func Apply(doc *ir.Node, patchJSON []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("patch: %d ops on %s\n", len(ops), debug.Node{doc})
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.DecodeValue(out)
}

// ApplyChanges applies changes computed by libdiff to doc.
func ApplyChanges(doc *ir.Node, changes []libdiff.Change) (*ir.Node, error) {
	if len(changes) == 0 {
		return doc.Clone(), nil
	}
	d, err := libdiff.Patch(changes)
	if err != nil {
		return nil, err
	}
	return Apply(doc, d)
}

// Merge applies the merge patch mergeJSON to doc.
func Merge(doc *ir.Node, mergeJSON []byte) (*ir.Node, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, mergeJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.DecodeValue(out)
}

// Equal reports whether a and b have the same JSON content.
func Equal(a, b *ir.Node) bool {
	da, err := a.MarshalJSON()
	if err != nil {
		return false
	}
	db, err := b.MarshalJSON()
	if err != nil {
		return false
	}
	return jsonpatch.Equal(da, db)
}
