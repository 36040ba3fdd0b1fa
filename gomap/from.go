package gomap

import (
	"encoding"
	"fmt"
	"math"
	"reflect"

	"github.com/koda-format/go-koda/ir"
)

// FromIR converts a Koda value into target, which must be a non-nil
// pointer.
//
// Numbers coerce across the Int/Float divide: an Int fills a float
// target, and a Float fills an integer target when it is integral and
// in range. Null zeroes the target. Object fields fill struct fields
// by encoded name (unknown fields are skipped) or map entries; when a
// duplicate key appears, the last value wins. A String fills a []byte
// target with its raw bytes, and targets implementing
// encoding.TextUnmarshaler take Strings through that interface.
//
// Interface targets with no methods receive plain Go data: nil, bool,
// int64, float64, string, []any, or map[string]any.
func FromIR(node *ir.Value, target any) error {
	if target == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(target)
	if val.Kind() != reflect.Pointer {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	return fromIRValue(node, val.Elem(), "")
}

// ToGo materializes node as plain Go data, the forms an empty
// interface target receives. Duplicate object keys resolve last-wins.
func ToGo(node *ir.Value) (any, error) {
	var v any
	if err := FromIR(node, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func fromIRValue(node *ir.Value, val reflect.Value, fieldPath string) error {
	if node == nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: "nil value"}
	}

	if val.Kind() == reflect.Pointer {
		if node.Type == ir.NullType {
			val.Set(reflect.Zero(val.Type()))
			return nil
		}
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		return fromIRValue(node, val.Elem(), fieldPath)
	}

	if node.Type == ir.NullType {
		val.Set(reflect.Zero(val.Type()))
		return nil
	}

	if node.Type == ir.StringType && val.CanAddr() {
		if tu, ok := val.Addr().Interface().(encoding.TextUnmarshaler); ok {
			if err := tu.UnmarshalText([]byte(node.String)); err != nil {
				return &UnmarshalError{FieldPath: fieldPath, Message: "UnmarshalText failed", Err: err}
			}
			return nil
		}
	}

	switch val.Kind() {
	case reflect.Bool:
		if node.Type != ir.BoolType {
			return typeMismatchErr(fieldPath, "bool", node)
		}
		val.SetBool(node.Bool)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromIRInt(node, val, fieldPath)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fromIRUint(node, val, fieldPath)
	case reflect.Float32, reflect.Float64:
		return fromIRFloat(node, val, fieldPath)
	case reflect.String:
		if node.Type != ir.StringType {
			return typeMismatchErr(fieldPath, "string", node)
		}
		val.SetString(node.String)
		return nil
	case reflect.Slice:
		return fromIRSlice(node, val, fieldPath)
	case reflect.Array:
		return fromIRArray(node, val, fieldPath)
	case reflect.Map:
		return fromIRMap(node, val, fieldPath)
	case reflect.Struct:
		return fromIRStruct(node, val, fieldPath)
	case reflect.Interface:
		return fromIRInterface(node, val, fieldPath)
	default:
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type %s", val.Type()),
		}
	}
}

func fromIRInt(node *ir.Value, val reflect.Value, fieldPath string) error {
	var i int64
	switch node.Type {
	case ir.IntType:
		i = node.Int64
	case ir.FloatType:
		f := node.Float64
		if f != math.Trunc(f) || f < math.MinInt64 || f >= 1<<63 {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("float %v is not representable as %s", f, val.Type()),
			}
		}
		i = int64(f)
	default:
		return typeMismatchErr(fieldPath, "number", node)
	}
	if val.OverflowInt(i) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %d overflows %s", i, val.Type()),
		}
	}
	val.SetInt(i)
	return nil
}

func fromIRUint(node *ir.Value, val reflect.Value, fieldPath string) error {
	var u uint64
	switch node.Type {
	case ir.IntType:
		if node.Int64 < 0 {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("negative value %d for %s", node.Int64, val.Type()),
			}
		}
		u = uint64(node.Int64)
	case ir.FloatType:
		f := node.Float64
		if f != math.Trunc(f) || f < 0 || f >= 1<<64 {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("float %v is not representable as %s", f, val.Type()),
			}
		}
		u = uint64(f)
	default:
		return typeMismatchErr(fieldPath, "number", node)
	}
	if val.OverflowUint(u) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %d overflows %s", u, val.Type()),
		}
	}
	val.SetUint(u)
	return nil
}

func fromIRFloat(node *ir.Value, val reflect.Value, fieldPath string) error {
	var f float64
	switch node.Type {
	case ir.FloatType:
		f = node.Float64
	case ir.IntType:
		f = float64(node.Int64)
	default:
		return typeMismatchErr(fieldPath, "number", node)
	}
	if val.OverflowFloat(f) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %v overflows %s", f, val.Type()),
		}
	}
	val.SetFloat(f)
	return nil
}

func fromIRSlice(node *ir.Value, val reflect.Value, fieldPath string) error {
	if node.Type == ir.StringType && val.Type().Elem().Kind() == reflect.Uint8 {
		val.SetBytes([]byte(node.String))
		return nil
	}
	if node.Type != ir.ArrayType {
		return typeMismatchErr(fieldPath, "array", node)
	}
	out := reflect.MakeSlice(val.Type(), len(node.Values), len(node.Values))
	for i, el := range node.Values {
		if err := fromIRValue(el, out.Index(i), indexPath(fieldPath, i)); err != nil {
			return err
		}
	}
	val.Set(out)
	return nil
}

func fromIRArray(node *ir.Value, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ArrayType {
		return typeMismatchErr(fieldPath, "array", node)
	}
	if len(node.Values) != val.Len() {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("array length mismatch: %d values for %s", len(node.Values), val.Type()),
		}
	}
	for i, el := range node.Values {
		if err := fromIRValue(el, val.Index(i), indexPath(fieldPath, i)); err != nil {
			return err
		}
	}
	return nil
}

func fromIRMap(node *ir.Value, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ObjectType {
		return typeMismatchErr(fieldPath, "object", node)
	}
	typ := val.Type()
	if typ.Key().Kind() != reflect.String {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", typ.Key()),
		}
	}
	val.Set(reflect.MakeMapWithSize(typ, len(node.Fields)))
	for i, field := range node.Fields {
		elem := reflect.New(typ.Elem()).Elem()
		if err := fromIRValue(node.Values[i], elem, joinPath(fieldPath, field)); err != nil {
			return err
		}
		// duplicate keys: the later entry overwrites
		val.SetMapIndex(reflect.ValueOf(field).Convert(typ.Key()), elem)
	}
	return nil
}

func fromIRStruct(node *ir.Value, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ObjectType {
		return typeMismatchErr(fieldPath, "object", node)
	}
	fields := make(map[string]reflect.Value)
	collectFields(val, fields)
	for i, name := range node.Fields {
		fv, ok := fields[name]
		if !ok {
			continue
		}
		if err := fromIRValue(node.Values[i], fv, joinPath(fieldPath, name)); err != nil {
			return err
		}
	}
	return nil
}

// collectFields maps encoded names to settable field values,
// flattening untagged anonymous structs the same way ToIR does. The
// first field claiming a name keeps it.
func collectFields(val reflect.Value, out map[string]reflect.Value) {
	structFields(val, out, map[reflect.Type]bool{})
}

// structFields does the walk. Each struct type contributes fields
// once, so a self-embedding chain terminates.
func structFields(val reflect.Value, out map[string]reflect.Value, seen map[reflect.Type]bool) {
	typ := val.Type()
	if seen[typ] {
		return
	}
	seen[typ] = true
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := val.Field(i)
		if field.Anonymous && field.Tag.Get("koda") == "" {
			switch {
			case field.Type.Kind() == reflect.Struct:
				structFields(fv, out, seen)
				continue
			case field.Type.Kind() == reflect.Pointer && field.Type.Elem().Kind() == reflect.Struct:
				if seen[field.Type.Elem()] {
					continue
				}
				if fv.IsNil() {
					fv.Set(reflect.New(field.Type.Elem()))
				}
				structFields(fv.Elem(), out, seen)
				continue
			}
		}
		name, _, ok := fieldName(field)
		if !ok {
			continue
		}
		if _, exists := out[name]; !exists {
			out[name] = fv
		}
	}
}

func fromIRInterface(node *ir.Value, val reflect.Value, fieldPath string) error {
	if val.NumMethod() != 0 {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("cannot decode into non-empty interface %s", val.Type()),
		}
	}
	x, err := goValue(node, fieldPath)
	if err != nil {
		return err
	}
	if x == nil {
		val.Set(reflect.Zero(val.Type()))
		return nil
	}
	val.Set(reflect.ValueOf(x))
	return nil
}

// goValue materializes a node as plain Go data.
func goValue(node *ir.Value, fieldPath string) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.IntType:
		return node.Int64, nil
	case ir.FloatType:
		return node.Float64, nil
	case ir.StringType:
		return node.String, nil
	case ir.ArrayType:
		arr := make([]any, len(node.Values))
		for i, el := range node.Values {
			x, err := goValue(el, indexPath(fieldPath, i))
			if err != nil {
				return nil, err
			}
			arr[i] = x
		}
		return arr, nil
	case ir.ObjectType:
		m := make(map[string]any, len(node.Fields))
		for i, field := range node.Fields {
			x, err := goValue(node.Values[i], joinPath(fieldPath, field))
			if err != nil {
				return nil, err
			}
			// duplicate keys: the later entry overwrites
			m[field] = x
		}
		return m, nil
	default:
		return nil, &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unknown type %d", int(node.Type)),
		}
	}
}

func typeMismatchErr(fieldPath, want string, node *ir.Value) *UnmarshalError {
	return &UnmarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("expected %s, got %s", want, node.Type),
	}
}
