package format

import (
	"errors"
	"fmt"

	"github.com/koda-format/go-koda/wire"
)

type Format int

const (
	TextFormat Format = iota
	WireFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":    TextFormat,
		"text": TextFormat,
		"koda": TextFormat,
		"w":    WireFormat,
		"wire": WireFormat,
		"kodb": WireFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case WireFormat:
		return []byte("wire"), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsText() bool { return f == TextFormat }
func (f Format) IsWire() bool { return f == WireFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case TextFormat:
		return ".koda"
	case WireFormat:
		return ".kodb"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{TextFormat, WireFormat}
}

// Detect classifies raw bytes as text or wire by the leading byte. A
// wire buffer always starts with the version byte 0x01, which cannot
// begin any text document.
func Detect(d []byte) Format {
	if len(d) > 0 && d[0] == wire.Version {
		return WireFormat
	}
	return TextFormat
}
