package wire

const (
	DefaultMaxDepth          = 256
	DefaultMaxDictionarySize = 65536
	DefaultMaxStringLength   = 1000000
)

type encodeOpts struct {
	maxDepth int
}

type EncodeOption func(*encodeOpts)

// EncodeMaxDepth bounds container nesting during encoding. A value
// holding a reference cycle fails with ir.ErrDepth instead of
// recursing without bound.
func EncodeMaxDepth(n int) EncodeOption {
	return func(o *encodeOpts) { o.maxDepth = n }
}

type decodeOpts struct {
	maxDepth   int
	maxDictLen int
	maxStrLen  int
}

type DecodeOption func(*decodeOpts)

// MaxDepth bounds container nesting during decoding.
func MaxDepth(n int) DecodeOption {
	return func(o *decodeOpts) { o.maxDepth = n }
}

// MaxDictionarySize bounds the string dictionary. Input that inlines
// more distinct strings than the cap, or references an index at or
// above it, is rejected.
func MaxDictionarySize(n int) DecodeOption {
	return func(o *decodeOpts) { o.maxDictLen = n }
}

// MaxStringLength bounds a single decoded string. The declared length
// is checked before the body is read.
func MaxStringLength(n int) DecodeOption {
	return func(o *decodeOpts) { o.maxStrLen = n }
}
