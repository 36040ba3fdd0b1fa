// Package patch applies RFC 6902 JSON Patches and RFC 7396 merge
// patches to Koda values.
//
// Documents travel through their JSON form and re-enter through the
// text parser, so object field order in the result follows the JSON
// library's marshaling, not the input document.
package patch

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/koda-format/go-koda/bridge"
	"github.com/koda-format/go-koda/debug"
	"github.com/koda-format/go-koda/ir"
	"github.com/koda-format/go-koda/parse"
)

// Apply applies an RFC 6902 patch document to doc and returns the
// patched document.
func Apply(doc, patchDoc *ir.Value) (*ir.Value, error) {
	patchBytes, err := bridge.ToJSON(patchDoc)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(patchBytes)
	if err != nil {
		return nil, err
	}
	docBytes, err := bridge.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch: apply %s\n   to %s\n", patchBytes, docBytes)
	}
	out, err := ops.Apply(docBytes)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}

// Merge applies an RFC 7396 merge patch to doc: object fields in
// mergeDoc overwrite, null fields delete, everything else replaces.
func Merge(doc, mergeDoc *ir.Value) (*ir.Value, error) {
	docBytes, err := bridge.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	mergeBytes, err := bridge.ToJSON(mergeDoc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch: merge %s\n  into %s\n", mergeBytes, docBytes)
	}
	out, err := jsonpatch.MergePatch(docBytes, mergeBytes)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}
