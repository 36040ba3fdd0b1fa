// Package wire implements the Koda binary form.
//
// # Layout
//
//	buffer := version , node
//	node   := tag , payload
//
// The version byte is 0x01. Tags and payloads:
//
//	0x00 null       no payload
//	0x01 bool       1 byte, 0x00 or 0x01
//	0x02 int        8 bytes little-endian two's complement
//	0x03 float      8 bytes little-endian IEEE-754
//	0x04 string     uvarint byte length, then the bytes
//	0x05 stringref  uvarint index into the string dictionary
//	0x06 array      uvarint count, then count nodes
//	0x07 object     uvarint count, then count key/value pairs; keys are
//	                string or stringref nodes
//
// Both sides keep a per-call dictionary of strings in first-occurrence
// order. The encoder emits each distinct string once and references it
// afterwards, so a repeated object key costs two bytes. Encoding is
// deterministic: equal values produce equal bytes.
//
// Decoding is built for untrusted input. Declared lengths and counts
// are checked against the configured limits and against the remaining
// buffer before anything is allocated, and a failed decode returns no
// partial value.
//
// # Usage
//
//	b, err := wire.Encode(v)
//	v2, err := wire.Decode(b)
//	v3, err := wire.Decode(b, wire.MaxDepth(32), wire.MaxStringLength(4096))
//
// # Related Packages
//
//   - github.com/koda-format/go-koda/ir - IR representation
//   - github.com/koda-format/go-koda/parse - text form parser
package wire
