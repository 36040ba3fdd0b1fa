package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/koda-format/go-koda/ir"
	"github.com/koda-format/go-koda/token"
)

// EncState carries the encoder configuration. Options mutate it before
// encoding starts.
type EncState struct {
	depth  int
	indent int
	pretty bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes v to w as Koda text. The default output is compact and
// canonical: no whitespace, object fields in stored order, duplicates
// included, so equal values always render to equal bytes. Indent
// switches to multi-line output.
func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if v == nil {
		return fmt.Errorf("%w: nil value", ErrEncoding)
	}
	return encode(v, w, es)
}

func encode(v *ir.Value, w io.Writer, es *EncState) error {
	switch v.Type {
	case ir.ObjectType:
		return encodeObject(v, w, es)
	case ir.ArrayType:
		return encodeArray(v, w, es)
	case ir.StringType:
		return encodeString(v, w, es)
	case ir.IntType:
		return encodeInt(v, w, es)
	case ir.FloatType:
		return encodeFloat(v, w, es)
	case ir.BoolType:
		return encodeBool(v, w, es)
	case ir.NullType:
		return encodeNull(w, es)
	default:
		return fmt.Errorf("%w: unknown type %d", ErrEncoding, int(v.Type))
	}
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if !es.pretty {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(strings.Repeat(" ", es.indent), es.depth))
}

func writeSep(w io.Writer, es *EncState, cType ir.Type, sep string) error {
	if es.Color != nil {
		sep = es.Color(cType, SepColor, sep)
	}
	return writeString(w, sep)
}

func writeField(w io.Writer, f string, es *EncState) error {
	sep := ":"
	if es.pretty {
		sep = ": "
	}
	q := token.Quote(f)
	if es.Color != nil {
		q = es.Color(ir.ObjectType, FieldColor, q)
		sep = es.Color(ir.ObjectType, SepColor, sep)
	}
	return writeString(w, q+sep)
}

// Color application helper

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

// Object encoding

func encodeObject(v *ir.Value, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	for i, field := range v.Fields {
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, field, es); err != nil {
			return err
		}
		if err := encode(v.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if len(v.Fields) != 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

// Array encoding

func encodeArray(v *ir.Value, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	es.depth++
	for i, el := range v.Values {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(el, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if len(v.Values) != 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

// Leaf encoding

func encodeString(v *ir.Value, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, ir.StringType, ValueColor, token.Quote(v.String)))
}

func encodeInt(v *ir.Value, w io.Writer, es *EncState) error {
	s := strconv.FormatInt(v.Int64, 10)
	return writeString(w, applyColor(es, ir.IntType, ValueColor, s))
}

// encodeFloat keeps the integer/float distinction in the output: a
// float whose shortest representation carries no '.' or exponent gets
// a ".0" suffix so it reads back as a float. NaN and infinities have
// no textual form and encode as null.
func encodeFloat(v *ir.Value, w io.Writer, es *EncState) error {
	f := v.Float64
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return encodeNull(w, es)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return writeString(w, applyColor(es, ir.FloatType, ValueColor, s))
}

func encodeBool(v *ir.Value, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, ir.BoolType, ValueColor, strconv.FormatBool(v.Bool)))
}

func encodeNull(w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, ir.NullType, ValueColor, "null"))
}
