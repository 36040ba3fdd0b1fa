package gomap

import (
	"encoding"
	"fmt"
	"math"
	"reflect"

	"github.com/koda-format/go-koda/ir"
)

// maxSafeInt is 2^53, the largest magnitude at which a float64 still
// distinguishes adjacent integers.
const maxSafeInt = 1 << 53

// ToIR converts a Go value to a Koda value.
//
// nil becomes Null, bool Bool, strings String, and []byte String
// holding the raw bytes. Every integer kind becomes Int, except that
// a uint64 above MaxInt64 becomes Float. A float becomes Int when it
// is integral with magnitude at most 2^53, Float otherwise.
//
// Slices and arrays become Array. Maps with string keys become Object
// with sorted keys; a nil map becomes Null. Structs become Object in
// field declaration order, honoring `koda:"name,omitempty"` and
// `koda:"-"` tags; anonymous struct fields without a tag name are
// flattened into the enclosing Object. Values implementing
// encoding.TextMarshaler become String. Pointers are followed, nil
// pointers becoming Null; circular references are an error.
func ToIR(v any) (*ir.Value, error) {
	if v == nil {
		return ir.Null(), nil
	}
	visited := make(map[uintptr]string)
	return toIRValue(reflect.ValueOf(v), "", visited)
}

// toIRValue converts a single reflect value, threading the field path
// for error messages and the visited pointer set for cycle detection.
func toIRValue(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Value, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}

	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
	}

	if tm, ok := textMarshaler(val); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return nil, &MarshalError{FieldPath: fieldPath, Message: "MarshalText failed", Err: err}
		}
		return ir.FromString(string(text)), nil
	}

	switch val.Kind() {
	case reflect.Pointer:
		ptr := val.Pointer()
		if prevPath, seen := visited[ptr]; seen {
			return nil, circularErr(fieldPath, prevPath)
		}
		visited[ptr] = fieldPath
		defer delete(visited, ptr)
		return toIRValue(val.Elem(), fieldPath, visited)
	case reflect.Interface:
		return toIRValue(val.Elem(), fieldPath, visited)
	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := val.Uint()
		if u > math.MaxInt64 {
			return ir.FromFloat(float64(u)), nil
		}
		return ir.FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return fromHostFloat(val.Float()), nil
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Slice:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			return ir.FromString(string(val.Bytes())), nil
		}
		return toIRSlice(val, fieldPath, visited)
	case reflect.Array:
		return toIRSlice(val, fieldPath, visited)
	case reflect.Map:
		return toIRMap(val, fieldPath, visited)
	case reflect.Struct:
		return toIRStruct(val, fieldPath, visited)
	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type %s", val.Type()),
		}
	}
}

// fromHostFloat classifies a host float: integral values with
// magnitude at most 2^53 become Int, everything else Float. NaN and
// the infinities always classify as Float.
func fromHostFloat(f float64) *ir.Value {
	if f == math.Trunc(f) && math.Abs(f) <= maxSafeInt {
		return ir.FromInt(int64(f))
	}
	return ir.FromFloat(f)
}

func toIRSlice(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Value, error) {
	if val.Kind() == reflect.Slice && !val.IsNil() {
		ptr := val.Pointer()
		if prevPath, seen := visited[ptr]; seen {
			return nil, circularErr(fieldPath, prevPath)
		}
		visited[ptr] = fieldPath
		defer delete(visited, ptr)
	}
	n := val.Len()
	elements := make([]*ir.Value, 0, n)
	for i := 0; i < n; i++ {
		node, err := toIRValue(val.Index(i), indexPath(fieldPath, i), visited)
		if err != nil {
			return nil, err
		}
		elements = append(elements, node)
	}
	return ir.FromSlice(elements), nil
}

func toIRMap(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Value, error) {
	if val.IsNil() {
		return ir.Null(), nil
	}
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
		}
	}
	ptr := val.Pointer()
	if prevPath, seen := visited[ptr]; seen {
		return nil, circularErr(fieldPath, prevPath)
	}
	visited[ptr] = fieldPath
	defer delete(visited, ptr)

	m := make(map[string]*ir.Value, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		node, err := toIRValue(iter.Value(), joinPath(fieldPath, key), visited)
		if err != nil {
			return nil, err
		}
		m[key] = node
	}
	return ir.FromMap(m), nil
}

func toIRStruct(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Value, error) {
	typ := val.Type()
	kvs := make([]ir.KeyVal, 0, typ.NumField())
	seen := make(map[string]bool, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldVal := val.Field(i)

		// Untagged anonymous struct fields splice their fields in at
		// the embed position.
		if embedded, ok := embeddedStruct(field, fieldVal); ok {
			if !embedded.IsValid() {
				continue
			}
			inner, err := toIREmbedded(fieldVal, embedded, fieldPath, visited)
			if err != nil {
				return nil, err
			}
			for j, name := range inner.Fields {
				if seen[name] {
					return nil, fieldConflictErr(fieldPath, name)
				}
				seen[name] = true
				kvs = append(kvs, ir.KeyVal{Key: name, Val: inner.Values[j]})
			}
			continue
		}

		name, opts, ok := fieldName(field)
		if !ok {
			continue
		}
		if opts.Contains("omitempty") && isEmptyValue(fieldVal) {
			continue
		}
		if seen[name] {
			return nil, fieldConflictErr(fieldPath, name)
		}
		node, err := toIRValue(fieldVal, joinPath(fieldPath, name), visited)
		if err != nil {
			return nil, err
		}
		seen[name] = true
		kvs = append(kvs, ir.KeyVal{Key: name, Val: node})
	}
	return ir.FromKeyVals(kvs...), nil
}

// toIREmbedded walks an embedded struct, tracking the pointer when
// the field is a pointer to struct so a self-embedding cycle errors
// like any other circular reference.
func toIREmbedded(fieldVal, embedded reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Value, error) {
	if fieldVal.Kind() == reflect.Pointer {
		ptr := fieldVal.Pointer()
		if prevPath, seen := visited[ptr]; seen {
			return nil, circularErr(fieldPath, prevPath)
		}
		visited[ptr] = fieldPath
		defer delete(visited, ptr)
	}
	return toIRStruct(embedded, fieldPath, visited)
}

// embeddedStruct reports whether field is an untagged anonymous
// struct (or pointer to struct) to flatten, returning the struct
// value to walk. A nil embedded pointer yields an invalid value, which
// the caller skips.
func embeddedStruct(field reflect.StructField, val reflect.Value) (reflect.Value, bool) {
	if !field.Anonymous || field.Tag.Get("koda") != "" {
		return reflect.Value{}, false
	}
	switch field.Type.Kind() {
	case reflect.Struct:
		return val, true
	case reflect.Pointer:
		if field.Type.Elem().Kind() != reflect.Struct {
			return reflect.Value{}, false
		}
		if val.IsNil() {
			return reflect.Value{}, true
		}
		return val.Elem(), true
	}
	return reflect.Value{}, false
}

// isEmptyValue mirrors the encoding/json notion of emptiness used by
// the omitempty tag option.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return v.IsZero()
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}

// textMarshaler returns the value's TextMarshaler implementation,
// checking the addressable form as well for pointer receivers.
func textMarshaler(val reflect.Value) (encoding.TextMarshaler, bool) {
	if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
		return tm, true
	}
	if val.CanAddr() {
		if tm, ok := val.Addr().Interface().(encoding.TextMarshaler); ok {
			return tm, true
		}
	}
	return nil, false
}

func circularErr(fieldPath, prevPath string) *MarshalError {
	return &MarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("circular reference detected (previously seen at %q)", prevPath),
	}
}

func fieldConflictErr(fieldPath, name string) *MarshalError {
	return &MarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("duplicate field name %q", name),
	}
}

func joinPath(fieldPath, key string) string {
	if fieldPath == "" {
		return key
	}
	return fieldPath + "." + key
}

func indexPath(fieldPath string, i int) string {
	return fmt.Sprintf("%s[%d]", fieldPath, i)
}
