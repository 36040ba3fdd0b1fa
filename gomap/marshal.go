package gomap

import (
	"bytes"

	"github.com/koda-format/go-koda/debug"
	"github.com/koda-format/go-koda/encode"
	"github.com/koda-format/go-koda/parse"
	"github.com/koda-format/go-koda/wire"
)

// Marshal converts a Go value to Koda text. Encoder options pass
// through WithEncodeOptions.
func Marshal(v any, opts ...MapOption) ([]byte, error) {
	node, err := ToIR(v)
	if err != nil {
		return nil, err
	}
	if debug.Map() {
		debug.Logf("gomap: marshal %T ->\n%s\n", v, debug.Koda{Value: node})
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, ToEncodeOptions(opts...)...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses Koda text and stores the result in target. Parser
// options pass through WithParseOptions.
func Unmarshal(d []byte, target any, opts ...UnmapOption) error {
	node, err := parse.Parse(d, ToParseOptions(opts...)...)
	if err != nil {
		return err
	}
	if debug.Map() {
		debug.Logf("gomap: unmarshal into %T <-\n%s\n", target, debug.Koda{Value: node})
	}
	return FromIR(node, target)
}

// MarshalWire converts a Go value to the Koda binary form. Encoder
// options pass through WithWireEncodeOptions.
func MarshalWire(v any, opts ...MapOption) ([]byte, error) {
	node, err := ToIR(v)
	if err != nil {
		return nil, err
	}
	if debug.Map() {
		debug.Logf("gomap: marshal %T (wire) ->\n%s\n", v, debug.Koda{Value: node})
	}
	return wire.Encode(node, ToWireEncodeOptions(opts...)...)
}

// UnmarshalWire decodes the Koda binary form and stores the result in
// target. Decoder options pass through WithWireDecodeOptions.
func UnmarshalWire(d []byte, target any, opts ...UnmapOption) error {
	node, err := wire.Decode(d, ToWireDecodeOptions(opts...)...)
	if err != nil {
		return err
	}
	if debug.Map() {
		debug.Logf("gomap: unmarshal into %T (wire) <-\n%s\n", target, debug.Koda{Value: node})
	}
	return FromIR(node, target)
}
