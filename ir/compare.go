package ir

import (
	"cmp"
	"math"
	"math/big"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntType, FloatType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Int/Float < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntType, FloatType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

// compareNumbers orders Int and Float values by numeric value; when an
// Int and a Float denote the same number, the Int sorts first.
func compareNumbers(a, b *Value) int {
	switch {
	case a.Type == IntType && b.Type == IntType:
		return cmp.Compare(a.Int64, b.Int64)
	case a.Type == FloatType && b.Type == FloatType:
		return cmp.Compare(a.Float64, b.Float64)
	case a.Type == IntType:
		if c := compareIntFloat(a.Int64, b.Float64); c != 0 {
			return c
		}
		return -1
	default:
		if c := compareIntFloat(b.Int64, a.Float64); c != 0 {
			return -c
		}
		return 1
	}
}

// compareIntFloat compares i against f exactly. Converting int64 to
// float64 loses precision above 2^53, so the comparison goes through
// big.Float, which represents both operands without rounding.
func compareIntFloat(i int64, f float64) int {
	if math.IsNaN(f) {
		// NaN sorts before every other number, matching cmp.Compare.
		return 1
	}
	return -new(big.Float).SetFloat64(f).Cmp(new(big.Float).SetInt64(i))
}

func compareArrays(a, b *Value) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Value) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// Equal reports whether a and b are structurally identical: same types,
// same scalars, same field order including duplicates. Floats compare by
// IEEE bits, so NaN equals NaN and 0.0 differs from -0.0. An Int is
// never Equal to a Float.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case IntType:
		return a.Int64 == b.Int64
	case FloatType:
		return math.Float64bits(a.Float64) == math.Float64bits(b.Float64)
	case StringType:
		return a.String == b.String
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i] != b.Fields[i] {
				return false
			}
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}
	return false
}
