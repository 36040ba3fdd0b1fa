package encode

import (
	"bytes"

	"github.com/koda-format/go-koda/ir"
)

// String encodes v to a string.
func String(v *ir.Value, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustString encodes v to a string and panics on error. Encoding a
// well-formed value to a buffer cannot fail, so the panic only fires
// for nil or corrupt values.
func MustString(v *ir.Value, opts ...EncodeOption) string {
	s, err := String(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
