package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/koda-format/go-koda/ir"
	"github.com/koda-format/go-koda/token"
)

// DefaultMaxDepth bounds container nesting when no MaxDepth option is
// given.
const DefaultMaxDepth = 256

func Parse(d []byte, opts ...ParseOption) (*ir.Value, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	off := 0
	res, err := parseValue(toks, &off, 0, pOpts)
	if err != nil {
		return nil, err
	}
	if t := &toks[off]; t.Type != token.TEOF {
		return nil, fmt.Errorf("%w: trailing %q %s", ErrSyntax, t.String(), t.Pos)
	}
	return res, nil
}

func parseValue(toks []token.Token, pi *int, depth int, opts *parseOpts) (*ir.Value, error) {
	t := &toks[*pi]
	switch t.Type {
	case token.TNull:
		*pi++
		return ir.Null(), nil
	case token.TTrue:
		*pi++
		return ir.FromBool(true), nil
	case token.TFalse:
		*pi++
		return ir.FromBool(false), nil
	case token.TInteger:
		*pi++
		return parseInt(t)
	case token.TFloat:
		*pi++
		return parseFloat(t)
	case token.TString:
		*pi++
		return ir.FromString(t.String()), nil
	case token.TLSquare:
		if depth+1 > opts.maxDepth {
			return nil, fmt.Errorf("%w: %s", ir.ErrDepth, t.Pos)
		}
		*pi++
		return parseArr(toks, pi, depth+1, opts)
	case token.TLCurl:
		if depth+1 > opts.maxDepth {
			return nil, fmt.Errorf("%w: %s", ir.ErrDepth, t.Pos)
		}
		*pi++
		return parseObj(toks, pi, depth+1, opts)
	case token.TEOF:
		return nil, fmt.Errorf("%w: unexpected end of input %s", ErrSyntax, t.Pos)
	default:
		return nil, fmt.Errorf("%w: unexpected %q %s", ErrSyntax, t.String(), t.Pos)
	}
}

// parseInt classifies an integral literal. Literals outside the int64
// range fall back to float, saturating at infinity the way the host
// number type does.
func parseInt(t *token.Token) (*ir.Value, error) {
	i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
	if err == nil {
		return ir.FromInt(i), nil
	}
	if !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%w: invalid integer (%v) %s", ErrSyntax, err, t.Pos)
	}
	return parseFloat(t)
}

func parseFloat(t *token.Token) (*ir.Value, error) {
	f, err := strconv.ParseFloat(string(t.Bytes), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%w: invalid number (%v) %s", ErrSyntax, err, t.Pos)
	}
	return ir.FromFloat(f), nil
}

func parseArr(toks []token.Token, pi *int, depth int, opts *parseOpts) (*ir.Value, error) {
	res := &ir.Value{Type: ir.ArrayType}
	if toks[*pi].Type == token.TRSquare {
		*pi++
		return res, nil
	}
	for {
		elt, err := parseValue(toks, pi, depth, opts)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, elt)
		t := &toks[*pi]
		switch t.Type {
		case token.TComma:
			*pi++
		case token.TRSquare:
			*pi++
			return res, nil
		default:
			return nil, fmt.Errorf("%w: expected ',' or ']', got %q %s",
				ErrSyntax, t.String(), t.Pos)
		}
	}
}

func parseObj(toks []token.Token, pi *int, depth int, opts *parseOpts) (*ir.Value, error) {
	res := &ir.Value{Type: ir.ObjectType}
	if toks[*pi].Type == token.TRCurl {
		*pi++
		return res, nil
	}
	for {
		kt := &toks[*pi]
		if kt.Type != token.TString {
			return nil, fmt.Errorf("%w: expected object key, got %q %s",
				ErrSyntax, kt.String(), kt.Pos)
		}
		*pi++
		if ct := &toks[*pi]; ct.Type != token.TColon {
			return nil, fmt.Errorf("%w: expected ':', got %q %s",
				ErrSyntax, ct.String(), ct.Pos)
		}
		*pi++
		val, err := parseValue(toks, pi, depth, opts)
		if err != nil {
			return nil, err
		}
		res.Fields = append(res.Fields, kt.String())
		res.Values = append(res.Values, val)
		t := &toks[*pi]
		switch t.Type {
		case token.TComma:
			*pi++
		case token.TRCurl:
			*pi++
			return res, nil
		default:
			return nil, fmt.Errorf("%w: expected ',' or '}', got %q %s",
				ErrSyntax, t.String(), t.Pos)
		}
	}
}
