package ir

import (
	"maps"
	"slices"
)

// Value is a single Koda value. The Type field selects which of the
// remaining fields carry content.
type Value struct {
	Type Type

	Bool    bool
	Int64   int64
	Float64 float64
	String  string

	// Fields[i] is the key for Values[i] when Type is ObjectType.
	// Arrays use Values alone. Order is significant and duplicate
	// keys are permitted.
	Fields []string
	Values []*Value
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(v bool) *Value {
	return &Value{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Value {
	return &Value{
		Type:  IntType,
		Int64: v,
	}
}

func FromFloat(f float64) *Value {
	return &Value{
		Type:    FloatType,
		Float64: f,
	}
}

func FromString(v string) *Value {
	return &Value{
		Type:   StringType,
		String: v,
	}
}

func FromSlice(vs []*Value) *Value {
	res := &Value{
		Type:   ArrayType,
		Values: make([]*Value, len(vs)),
	}
	copy(res.Values, vs)
	return res
}

// KeyVal is one object pair.
type KeyVal struct {
	Key string
	Val *Value
}

func FromKeyVals(kvs ...KeyVal) *Value {
	res := &Value{
		Type:   ObjectType,
		Fields: make([]string, len(kvs)),
		Values: make([]*Value, len(kvs)),
	}
	for i := range kvs {
		res.Fields[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

// FromMap builds an object from a Go map. Keys are sorted so the result
// is deterministic.
func FromMap(m map[string]*Value) *Value {
	res := &Value{
		Type:   ObjectType,
		Fields: make([]string, 0, len(m)),
		Values: make([]*Value, 0, len(m)),
	}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, m[key])
	}
	return res
}

// ToMap flattens an object into a Go map. Duplicate keys collapse with
// the last pair winning. Returns nil for non-objects.
func ToMap(v *Value) map[string]*Value {
	if v.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Value, len(v.Fields))
	for i, field := range v.Fields {
		res[field] = v.Values[i]
	}
	return res
}

// Get returns the value under the first occurrence of field, or nil.
func Get(v *Value, field string) *Value {
	if v.Type != ObjectType {
		return nil
	}
	for i := range v.Fields {
		if v.Fields[i] == field {
			return v.Values[i]
		}
	}
	return nil
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	dst := &Value{
		Type:    v.Type,
		Bool:    v.Bool,
		Int64:   v.Int64,
		Float64: v.Float64,
		String:  v.String,
	}
	if v.Fields != nil {
		dst.Fields = slices.Clone(v.Fields)
	}
	if v.Values != nil {
		dst.Values = make([]*Value, len(v.Values))
		for i, vv := range v.Values {
			dst.Values[i] = vv.Clone()
		}
	}
	return dst
}

// Visit walks the tree. f is called before and after each value's
// children (isPost false, then true). Returning dive=false from the pre
// call skips the children; any error aborts the walk.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for _, vv := range v.Values {
			if err := vv.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}
