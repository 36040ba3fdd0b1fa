// Package bridge converts between Koda values and neighboring
// representations: JSON, JSONC, YAML, and CBOR.
//
// The JSON bridges work on the token stream and preserve object field
// order and duplicate keys. YAML and CBOR travel through plain Go
// data ([]any, map[string]any) and take the same host number
// classification gomap applies, so field order and duplicates are not
// preserved there.
//
// # Usage
//
//	node, err := bridge.FromJSONC(configBytes)
//	out, err := bridge.ToYAML(node)
//
// # Related Packages
//
//   - github.com/koda-format/go-koda/gomap - Go value mapping
//   - github.com/koda-format/go-koda/encode - text encoding
package bridge
