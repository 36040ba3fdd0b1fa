// Package koda is the front door to the Koda data interchange format:
// a JSON-shaped value model with a text form and a compact binary
// form.
//
// Values are trees of [ir.Value]: Null, Bool, Int, Float, String,
// Array, and Object, where objects keep field order and may hold
// duplicate keys. The text form is strict JSON; the binary form is a
// tagged encoding with string dictionary compression.
//
// # Usage
//
//	v, err := koda.Parse([]byte(`{"name":"svc","port":8080}`))
//	s, err := koda.Stringify(v)
//
//	b, err := koda.Encode(v)
//	v, err = koda.Decode(b)
//
//	var cfg Config
//	err = koda.Unmarshal(b, &cfg) // text or binary, sniffed
//
// The subpackages carry the full surface: parse and encode for the
// text form, wire for the binary form, gomap for Go value mapping,
// bridge for JSON/JSONC/YAML/CBOR interchange, libdiff and patch for
// structural diffs and RFC 6902/7396 patching, and eval for running
// expressions over documents.
package koda

import (
	"github.com/koda-format/go-koda/encode"
	"github.com/koda-format/go-koda/format"
	"github.com/koda-format/go-koda/gomap"
	"github.com/koda-format/go-koda/ir"
	"github.com/koda-format/go-koda/parse"
	"github.com/koda-format/go-koda/wire"
)

// Parse parses the text form.
func Parse(text []byte, opts ...parse.ParseOption) (*ir.Value, error) {
	return parse.Parse(text, opts...)
}

// Stringify renders the canonical compact text form.
func Stringify(v *ir.Value) (string, error) {
	return encode.String(v)
}

// Encode encodes v into the binary form.
func Encode(v *ir.Value, opts ...wire.EncodeOption) ([]byte, error) {
	return wire.Encode(v, opts...)
}

// Decode decodes the binary form. Decoding is safe on untrusted
// input: depth, dictionary, and string-length limits apply, see the
// wire package options.
func Decode(d []byte, opts ...wire.DecodeOption) (*ir.Value, error) {
	return wire.Decode(d, opts...)
}

// Unmarshal stores the document in d into target, accepting either
// the text or the binary form.
func Unmarshal(d []byte, target any) error {
	if format.Detect(d) == format.WireFormat {
		return gomap.UnmarshalWire(d, target)
	}
	return gomap.Unmarshal(d, target)
}
