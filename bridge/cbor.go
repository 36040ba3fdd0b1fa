package bridge

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/koda-format/go-koda/gomap"
	"github.com/koda-format/go-koda/ir"
)

// cborEnc is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items.
var cborEnc cbor.EncMode

// cborDec accepts standard CBOR. any-typed targets decode maps as
// map[string]any so the result feeds straight into gomap.
var cborDec cbor.DecMode

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("bridge: CBOR encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("bridge: CBOR decoder initialization failed: " + err.Error())
	}
}

// FromCBOR decodes CBOR into a Koda value through plain Go data.
// CBOR byte strings arrive as String the way gomap maps []byte.
func FromCBOR(d []byte) (*ir.Value, error) {
	var v any
	if err := cborDec.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return gomap.ToIR(v)
}

// ToCBOR encodes a Koda value as deterministic CBOR through plain Go
// data. Duplicate object keys collapse last-wins on the way out.
func ToCBOR(v *ir.Value) ([]byte, error) {
	x, err := gomap.ToGo(v)
	if err != nil {
		return nil, err
	}
	return cborEnc.Marshal(x)
}
