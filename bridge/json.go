package bridge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/koda-format/go-koda/encode"
	"github.com/koda-format/go-koda/ir"
)

// FromJSON parses strict JSON into a Koda value. Object field order
// and duplicate keys are preserved. Integral literals in int64 range
// become Int, everything else Float, the same classification the text
// parser applies.
func FromJSON(d []byte) (*ir.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := fromJSONToken(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return node, nil
}

// FromJSONC parses JSON with comments and trailing commas by
// stripping them first.
func FromJSONC(d []byte) (*ir.Value, error) {
	return FromJSON(jsonc.ToJSON(d))
}

// ToJSON renders a Koda value as compact JSON. The text form is JSON,
// so this is the text encoder; non-finite floats render as null.
func ToJSON(v *ir.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode.Encode(v, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fromJSONToken(dec *json.Decoder) (*ir.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("unexpected end of JSON input")
		}
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			res := &ir.Value{Type: ir.ObjectType}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				val, err := fromJSONToken(dec)
				if err != nil {
					return nil, err
				}
				res.Fields = append(res.Fields, key)
				res.Values = append(res.Values, val)
			}
			// closing brace
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		case '[':
			res := &ir.Value{Type: ir.ArrayType}
			for dec.More() {
				el, err := fromJSONToken(dec)
				if err != nil {
					return nil, err
				}
				res.Values = append(res.Values, el)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case json.Number:
		return numberNode(t)
	case nil:
		return ir.Null(), nil
	}
	return nil, fmt.Errorf("unexpected JSON token %v", tok)
}

// numberNode applies the text parser's classification to a JSON
// number literal: integral syntax in int64 range is Int, the rest is
// Float, with out-of-range literals saturating at infinity.
func numberNode(n json.Number) (*ir.Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return ir.FromInt(i), nil
		}
		if !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("invalid number %q: %v", s, err)
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("invalid number %q: %v", s, err)
	}
	return ir.FromFloat(f), nil
}
