package gomap

import (
	"github.com/koda-format/go-koda/encode"
	"github.com/koda-format/go-koda/parse"
	"github.com/koda-format/go-koda/wire"
)

// MapOption configures marshaling from Go values.
type MapOption interface {
	applyMap(*mapConfig)
}

// UnmapOption configures unmarshaling into Go values.
type UnmapOption interface {
	applyUnmap(*unmapConfig)
}

type mapConfig struct {
	EncodeOptions     []encode.EncodeOption
	WireEncodeOptions []wire.EncodeOption
}

type unmapConfig struct {
	ParseOptions      []parse.ParseOption
	WireDecodeOptions []wire.DecodeOption
}

func newMapConfig(opts ...MapOption) *mapConfig {
	cfg := &mapConfig{}
	for _, opt := range opts {
		opt.applyMap(cfg)
	}
	return cfg
}

func newUnmapConfig(opts ...UnmapOption) *unmapConfig {
	cfg := &unmapConfig{}
	for _, opt := range opts {
		opt.applyUnmap(cfg)
	}
	return cfg
}

type encodeOptions []encode.EncodeOption

func (o encodeOptions) applyMap(c *mapConfig) {
	c.EncodeOptions = append(c.EncodeOptions, o...)
}

// WithEncodeOptions passes text encoder options through Marshal.
func WithEncodeOptions(opts ...encode.EncodeOption) MapOption {
	return encodeOptions(opts)
}

type wireEncodeOptions []wire.EncodeOption

func (o wireEncodeOptions) applyMap(c *mapConfig) {
	c.WireEncodeOptions = append(c.WireEncodeOptions, o...)
}

// WithWireEncodeOptions passes binary encoder options through
// MarshalWire.
func WithWireEncodeOptions(opts ...wire.EncodeOption) MapOption {
	return wireEncodeOptions(opts)
}

type parseOptions []parse.ParseOption

func (o parseOptions) applyUnmap(c *unmapConfig) {
	c.ParseOptions = append(c.ParseOptions, o...)
}

// WithParseOptions passes text parser options through Unmarshal.
func WithParseOptions(opts ...parse.ParseOption) UnmapOption {
	return parseOptions(opts)
}

type wireDecodeOptions []wire.DecodeOption

func (o wireDecodeOptions) applyUnmap(c *unmapConfig) {
	c.WireDecodeOptions = append(c.WireDecodeOptions, o...)
}

// WithWireDecodeOptions passes binary decoder options through
// UnmarshalWire.
func WithWireDecodeOptions(opts ...wire.DecodeOption) UnmapOption {
	return wireDecodeOptions(opts)
}

// ToEncodeOptions extracts the text encoder options carried by opts.
func ToEncodeOptions(opts ...MapOption) []encode.EncodeOption {
	return newMapConfig(opts...).EncodeOptions
}

// ToParseOptions extracts the text parser options carried by opts.
func ToParseOptions(opts ...UnmapOption) []parse.ParseOption {
	return newUnmapConfig(opts...).ParseOptions
}

// ToWireEncodeOptions extracts the binary encoder options carried by
// opts.
func ToWireEncodeOptions(opts ...MapOption) []wire.EncodeOption {
	return newMapConfig(opts...).WireEncodeOptions
}

// ToWireDecodeOptions extracts the binary decoder options carried by
// opts.
func ToWireDecodeOptions(opts ...UnmapOption) []wire.DecodeOption {
	return newUnmapConfig(opts...).WireDecodeOptions
}
