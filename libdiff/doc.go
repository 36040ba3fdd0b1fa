// Package libdiff computes structural diffs between Koda values.
//
// # Usage
//
//	// nil when the two documents are equal
//	d := libdiff.Diff(oldDoc, newDoc)
//
// A diff is itself a Koda value. Changed leaves become two-pair
// change markers {"-": old, "+": new}; one-sided markers carry only
// the removed or inserted side. Objects recurse per field; arrays
// report per-position entries with an "@" index field.
//
// # Related Packages
//
//   - github.com/koda-format/go-koda/ir - tree form
//   - github.com/koda-format/go-koda/patch - applying RFC 6902/7396 patches
package libdiff
