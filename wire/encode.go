package wire

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/koda-format/go-koda/ir"
)

// Version is the leading byte of every encoded buffer.
const Version byte = 0x01

const (
	tagNull      byte = 0x00
	tagBool      byte = 0x01
	tagInt       byte = 0x02
	tagFloat     byte = 0x03
	tagString    byte = 0x04
	tagStringRef byte = 0x05
	tagArray     byte = 0x06
	tagObject    byte = 0x07
)

type encState struct {
	buf      []byte
	dict     map[string]int
	maxDepth int
}

// Encode serializes v to the binary form. Output is deterministic:
// equal values encode to equal bytes, with repeated strings collapsed
// to dictionary references in first-occurrence order.
func Encode(v *ir.Value, opts ...EncodeOption) ([]byte, error) {
	eOpts := &encodeOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(eOpts)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: nil value", ErrTag)
	}
	es := &encState{
		buf:      make([]byte, 0, 64),
		dict:     map[string]int{},
		maxDepth: eOpts.maxDepth,
	}
	es.buf = append(es.buf, Version)
	if err := es.encode(v, 0); err != nil {
		return nil, err
	}
	return es.buf, nil
}

func (es *encState) encode(v *ir.Value, depth int) error {
	switch v.Type {
	case ir.NullType:
		es.buf = append(es.buf, tagNull)
	case ir.BoolType:
		b := byte(0x00)
		if v.Bool {
			b = 0x01
		}
		es.buf = append(es.buf, tagBool, b)
	case ir.IntType:
		es.buf = append(es.buf, tagInt)
		es.buf = binary.LittleEndian.AppendUint64(es.buf, uint64(v.Int64))
	case ir.FloatType:
		es.buf = append(es.buf, tagFloat)
		es.buf = binary.LittleEndian.AppendUint64(es.buf, math.Float64bits(v.Float64))
	case ir.StringType:
		es.encodeString(v.String)
	case ir.ArrayType:
		if depth+1 > es.maxDepth {
			return fmt.Errorf("%w: encoding array", ir.ErrDepth)
		}
		es.buf = append(es.buf, tagArray)
		es.buf = binary.AppendUvarint(es.buf, uint64(len(v.Values)))
		for _, el := range v.Values {
			if err := es.encode(el, depth+1); err != nil {
				return err
			}
		}
	case ir.ObjectType:
		if depth+1 > es.maxDepth {
			return fmt.Errorf("%w: encoding object", ir.ErrDepth)
		}
		es.buf = append(es.buf, tagObject)
		es.buf = binary.AppendUvarint(es.buf, uint64(len(v.Fields)))
		for i, field := range v.Fields {
			es.encodeString(field)
			if err := es.encode(v.Values[i], depth+1); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: unknown type %d", ErrTag, int(v.Type))
	}
	return nil
}

func (es *encState) encodeString(s string) {
	if idx, ok := es.dict[s]; ok {
		es.buf = append(es.buf, tagStringRef)
		es.buf = binary.AppendUvarint(es.buf, uint64(idx))
		return
	}
	es.dict[s] = len(es.dict)
	es.buf = append(es.buf, tagString)
	es.buf = binary.AppendUvarint(es.buf, uint64(len(s)))
	es.buf = append(es.buf, s...)
}
