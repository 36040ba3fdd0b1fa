// Package format names the two serialized forms of a Koda document.
//
// # Usage
//
//	f, err := format.ParseFormat("wire")
//
//	// Pick the form of raw input before decoding it
//	switch format.Detect(data) {
//	case format.TextFormat:
//	    v, err = parse.Parse(data)
//	case format.WireFormat:
//	    v, err = wire.Decode(data)
//	}
//
// # Related Packages
//
//   - github.com/koda-format/go-koda/parse - Parse text to IR
//   - github.com/koda-format/go-koda/wire - binary form
package format
