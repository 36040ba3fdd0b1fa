package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// hashSeed is shared so equal values hash equally for the lifetime of
// the process. The seed still varies across processes.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit content hash of the value.
// It panics if v is nil.
func (v *Value) Hash() uint64 {
	if v == nil {
		panic("ir: Hash called on nil value")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(v.Type))

	switch v.Type {
	case NullType:
	case BoolType:
		if v.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(v.Int64))
		h.Write(b[:])
	case FloatType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v.Float64))
		h.Write(b[:])
	case StringType:
		h.WriteString(v.String)
	case ArrayType:
		var b [8]byte
		for _, vv := range v.Values {
			// Combining child hashes order-dependently keeps
			// [a b] distinct from [b a].
			binary.LittleEndian.PutUint64(b[:], vv.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		var b [8]byte
		for i, field := range v.Fields {
			binary.LittleEndian.PutUint64(b[:], maphash.String(hashSeed, field))
			h.Write(b[:])
			binary.LittleEndian.PutUint64(b[:], v.Values[i].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
