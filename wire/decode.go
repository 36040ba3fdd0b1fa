package wire

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/koda-format/go-koda/ir"
)

type decState struct {
	d    []byte
	off  int
	dict []string

	maxDepth   int
	maxDictLen int
	maxStrLen  int
}

// Decode deserializes the binary form back into a value. It returns
// either a complete value or an error, never a partial result. All
// declared lengths and counts are validated against the limits and
// the remaining input before allocation, so Decode is safe on
// untrusted input.
func Decode(d []byte, opts ...DecodeOption) (*ir.Value, error) {
	dOpts := &decodeOpts{
		maxDepth:   DefaultMaxDepth,
		maxDictLen: DefaultMaxDictionarySize,
		maxStrLen:  DefaultMaxStringLength,
	}
	for _, f := range opts {
		f(dOpts)
	}
	if len(d) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrEOF)
	}
	if d[0] != Version {
		return nil, fmt.Errorf("%w: byte 0x%02x", ErrVersion, d[0])
	}
	ds := &decState{
		d:          d,
		off:        1,
		maxDepth:   dOpts.maxDepth,
		maxDictLen: dOpts.maxDictLen,
		maxStrLen:  dOpts.maxStrLen,
	}
	v, err := ds.decode(0)
	if err != nil {
		return nil, err
	}
	if ds.off != len(ds.d) {
		return nil, fmt.Errorf("%w: %d bytes at offset %d", ErrTrailing, len(ds.d)-ds.off, ds.off)
	}
	return v, nil
}

func (ds *decState) decode(depth int) (*ir.Value, error) {
	tag, err := ds.readByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagNull:
		return ir.Null(), nil
	case tagBool:
		b, err := ds.readByte()
		if err != nil {
			return nil, err
		}
		if b > 0x01 {
			return nil, fmt.Errorf("%w: bool payload 0x%02x at offset %d", ErrTag, b, ds.off-1)
		}
		return ir.FromBool(b == 0x01), nil
	case tagInt:
		u, err := ds.readUint64()
		if err != nil {
			return nil, err
		}
		return ir.FromInt(int64(u)), nil
	case tagFloat:
		u, err := ds.readUint64()
		if err != nil {
			return nil, err
		}
		return ir.FromFloat(math.Float64frombits(u)), nil
	case tagString:
		s, err := ds.readString()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case tagStringRef:
		s, err := ds.readStringRef()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case tagArray:
		if depth+1 > ds.maxDepth {
			return nil, fmt.Errorf("%w: at offset %d", ir.ErrDepth, ds.off-1)
		}
		n, err := ds.readCount()
		if err != nil {
			return nil, err
		}
		vals := make([]*ir.Value, 0, n)
		for i := 0; i < n; i++ {
			el, err := ds.decode(depth + 1)
			if err != nil {
				return nil, err
			}
			vals = append(vals, el)
		}
		return &ir.Value{Type: ir.ArrayType, Values: vals}, nil
	case tagObject:
		if depth+1 > ds.maxDepth {
			return nil, fmt.Errorf("%w: at offset %d", ir.ErrDepth, ds.off-1)
		}
		n, err := ds.readCount()
		if err != nil {
			return nil, err
		}
		fields := make([]string, 0, n)
		vals := make([]*ir.Value, 0, n)
		for i := 0; i < n; i++ {
			key, err := ds.readKey()
			if err != nil {
				return nil, err
			}
			val, err := ds.decode(depth + 1)
			if err != nil {
				return nil, err
			}
			fields = append(fields, key)
			vals = append(vals, val)
		}
		return &ir.Value{Type: ir.ObjectType, Fields: fields, Values: vals}, nil
	default:
		return nil, fmt.Errorf("%w: 0x%02x at offset %d", ErrTag, tag, ds.off-1)
	}
}

func (ds *decState) readKey() (string, error) {
	tag, err := ds.readByte()
	if err != nil {
		return "", err
	}
	switch tag {
	case tagString:
		return ds.readString()
	case tagStringRef:
		return ds.readStringRef()
	default:
		return "", fmt.Errorf("%w: object key tag 0x%02x at offset %d", ErrTag, tag, ds.off-1)
	}
}

func (ds *decState) readByte() (byte, error) {
	if ds.off >= len(ds.d) {
		return 0, fmt.Errorf("%w: at offset %d", ErrEOF, ds.off)
	}
	b := ds.d[ds.off]
	ds.off++
	return b, nil
}

func (ds *decState) readUint64() (uint64, error) {
	if len(ds.d)-ds.off < 8 {
		return 0, fmt.Errorf("%w: need 8 bytes at offset %d", ErrEOF, ds.off)
	}
	u := binary.LittleEndian.Uint64(ds.d[ds.off:])
	ds.off += 8
	return u, nil
}

func (ds *decState) readUvarint() (uint64, error) {
	u, n := binary.Uvarint(ds.d[ds.off:])
	if n == 0 {
		return 0, fmt.Errorf("%w: truncated varint at offset %d", ErrEOF, ds.off)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: varint overflows 64 bits at offset %d", ErrLimit, ds.off)
	}
	ds.off += n
	return u, nil
}

// readCount reads a container length prefix. Each node takes at least
// one byte, so a count beyond the remaining buffer cannot be satisfied
// and fails here before any allocation.
func (ds *decState) readCount() (int, error) {
	off := ds.off
	u, err := ds.readUvarint()
	if err != nil {
		return 0, err
	}
	if u > uint64(len(ds.d)-ds.off) {
		return 0, fmt.Errorf("%w: count %d exceeds %d remaining bytes at offset %d", ErrEOF, u, len(ds.d)-ds.off, off)
	}
	return int(u), nil
}

func (ds *decState) readString() (string, error) {
	off := ds.off
	u, err := ds.readUvarint()
	if err != nil {
		return "", err
	}
	if u > uint64(ds.maxStrLen) {
		return "", fmt.Errorf("%w: string length %d exceeds cap %d at offset %d", ErrLimit, u, ds.maxStrLen, off)
	}
	if u > uint64(len(ds.d)-ds.off) {
		return "", fmt.Errorf("%w: string length %d exceeds %d remaining bytes at offset %d", ErrEOF, u, len(ds.d)-ds.off, off)
	}
	if len(ds.dict) >= ds.maxDictLen {
		return "", fmt.Errorf("%w: dictionary full at %d entries at offset %d", ErrLimit, ds.maxDictLen, off)
	}
	s := string(ds.d[ds.off : ds.off+int(u)])
	ds.off += int(u)
	ds.dict = append(ds.dict, s)
	return s, nil
}

func (ds *decState) readStringRef() (string, error) {
	off := ds.off
	u, err := ds.readUvarint()
	if err != nil {
		return "", err
	}
	if u >= uint64(ds.maxDictLen) {
		return "", fmt.Errorf("%w: reference %d exceeds dictionary cap %d at offset %d", ErrLimit, u, ds.maxDictLen, off)
	}
	if u >= uint64(len(ds.dict)) {
		return "", fmt.Errorf("%w: reference %d with %d dictionary entries at offset %d", ErrReference, u, len(ds.dict), off)
	}
	return ds.dict[u], nil
}
