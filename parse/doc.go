// Package parse parses Koda text into ir.Value trees.
//
// # Usage
//
//	// Parse a document
//	v, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse with options
//	v, err := parse.Parse(data, parse.MaxDepth(64))
//
// The text form is strict JSON. Integral literals without a fraction or
// exponent become Int values when they fit in 64 bits; everything else
// numeric becomes Float. Object key order and duplicate keys are
// preserved.
//
// Errors wrap parse.ErrSyntax or ir.ErrDepth and carry the byte offset
// (with derived line and column) of the offending input.
//
// # Related Packages
//
//   - github.com/koda-format/go-koda/ir - value representation
//   - github.com/koda-format/go-koda/encode - encode values to text
//   - github.com/koda-format/go-koda/token - tokenization
package parse
