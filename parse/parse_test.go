package parse

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/koda-format/go-koda/ir"
	"github.com/koda-format/go-koda/token"
)

type parseTest struct {
	in string
	e  *ir.Value
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in: `null`,
			e:  ir.Null(),
		},
		{
			in: `true`,
			e:  ir.FromBool(true),
		},
		{
			in: `false`,
			e:  ir.FromBool(false),
		},
		{
			in: `22`,
			e:  ir.FromInt(22),
		},
		{
			in: `-7`,
			e:  ir.FromInt(-7),
		},
		{
			in: `-0`,
			e:  ir.FromInt(0),
		},
		{
			in: `1e14`,
			e:  ir.FromFloat(1e14),
		},
		{
			in: `1.0`,
			e:  ir.FromFloat(1.0),
		},
		{
			in: `-0.5`,
			e:  ir.FromFloat(-0.5),
		},
		{
			in: `"hello"`,
			e:  ir.FromString("hello"),
		},
		{
			in: `""`,
			e:  ir.FromString(""),
		},
		{
			in: `"é\n"`,
			e:  ir.FromString("é\n"),
		},
		{
			in: `[]`,
			e:  ir.FromSlice(nil),
		},
		{
			in: `["a","b"]`,
			e:  ir.FromSlice([]*ir.Value{ir.FromString("a"), ir.FromString("b")}),
		},
		{
			in: `[[]]`,
			e:  ir.FromSlice([]*ir.Value{ir.FromSlice(nil)}),
		},
		{
			in: `["a",["b",["c"]]]`,
			e: ir.FromSlice([]*ir.Value{
				ir.FromString("a"),
				ir.FromSlice([]*ir.Value{
					ir.FromString("b"),
					ir.FromSlice([]*ir.Value{ir.FromString("c")}),
				}),
			}),
		},
		{
			in: `{}`,
			e:  ir.FromKeyVals(),
		},
		{
			in: `{"a": "b"}`,
			e:  ir.FromKeyVals(ir.KeyVal{Key: "a", Val: ir.FromString("b")}),
		},
		{
			in: ` { "a" : { "b" : 9 } , "c" : { "d" : 8 } } `,
			e: ir.FromKeyVals(
				ir.KeyVal{Key: "a", Val: ir.FromKeyVals(ir.KeyVal{Key: "b", Val: ir.FromInt(9)})},
				ir.KeyVal{Key: "c", Val: ir.FromKeyVals(ir.KeyVal{Key: "d", Val: ir.FromInt(8)})},
			),
		},
		{
			in: `{"a": [1,2], "f[0]": [0,1,2,"three"]}`,
			e: ir.FromKeyVals(
				ir.KeyVal{Key: "a", Val: ir.FromSlice([]*ir.Value{ir.FromInt(1), ir.FromInt(2)})},
				ir.KeyVal{Key: "f[0]", Val: ir.FromSlice([]*ir.Value{
					ir.FromInt(0), ir.FromInt(1), ir.FromInt(2), ir.FromString("three"),
				})},
			),
		},
		{
			in: "[0, {\"f\": 2, \"g\": 3}]",
			e: ir.FromSlice([]*ir.Value{
				ir.FromInt(0),
				ir.FromKeyVals(
					ir.KeyVal{Key: "f", Val: ir.FromInt(2)},
					ir.KeyVal{Key: "g", Val: ir.FromInt(3)},
				),
			}),
		},
		{
			in: `{"null": null}`,
			e:  ir.FromKeyVals(ir.KeyVal{Key: "null", Val: ir.Null()}),
		},
		{
			in: "\n\t {\"a\":\n 1} \r\n",
			e:  ir.FromKeyVals(ir.KeyVal{Key: "a", Val: ir.FromInt(1)}),
		},
	}
	for i := range pts {
		pt := &pts[i]
		v, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", pt.in, err)
			continue
		}
		if !ir.Equal(v, pt.e) {
			t.Errorf("# doc\n%s\n# got %+v want %+v", pt.in, v, pt.e)
		}
	}
}

func TestParseDupKeysKeepOrder(t *testing.T) {
	v, err := Parse([]byte(`{"a": 1, "b": 2, "a": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	wantFields := []string{"a", "b", "a"}
	wantInts := []int64{1, 2, 3}
	if len(v.Fields) != 3 {
		t.Fatalf("fields = %v", v.Fields)
	}
	for i := range wantFields {
		if v.Fields[i] != wantFields[i] {
			t.Errorf("field %d = %q, want %q", i, v.Fields[i], wantFields[i])
		}
		if v.Values[i].Int64 != wantInts[i] {
			t.Errorf("value %d = %d, want %d", i, v.Values[i].Int64, wantInts[i])
		}
	}
}

func TestParseNumberClassification(t *testing.T) {
	tests := []struct {
		in      string
		typ     ir.Type
		i       int64
		f       float64
	}{
		{`0`, ir.IntType, 0, 0},
		{`-0`, ir.IntType, 0, 0},
		{`9007199254740993`, ir.IntType, 9007199254740993, 0},
		{`9223372036854775807`, ir.IntType, math.MaxInt64, 0},
		{`-9223372036854775808`, ir.IntType, math.MinInt64, 0},
		{`1.0`, ir.FloatType, 0, 1.0},
		{`0.0`, ir.FloatType, 0, 0.0},
		{`1e2`, ir.FloatType, 0, 100.0},
		{`2.5e-1`, ir.FloatType, 0, 0.25},
		// past int64, integral literals fall back to float
		{`9223372036854775808`, ir.FloatType, 0, 9223372036854775808.0},
		{`92233720368547758079`, ir.FloatType, 0, 92233720368547758079.0},
	}
	for _, tt := range tests {
		v, err := Parse([]byte(tt.in))
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if v.Type != tt.typ {
			t.Errorf("%s: type = %s, want %s", tt.in, v.Type, tt.typ)
			continue
		}
		if tt.typ == ir.IntType && v.Int64 != tt.i {
			t.Errorf("%s: int = %d, want %d", tt.in, v.Int64, tt.i)
		}
		if tt.typ == ir.FloatType && v.Float64 != tt.f {
			t.Errorf("%s: float = %g, want %g", tt.in, v.Float64, tt.f)
		}
	}
}

func TestParseHugeExponentSaturates(t *testing.T) {
	v, err := Parse([]byte(`1e999`))
	if err != nil {
		t.Fatal(err)
	}
	if v.Type != ir.FloatType || !math.IsInf(v.Float64, 1) {
		t.Errorf("1e999 = %+v, want +Inf float", v)
	}
	v, err = Parse([]byte(`-1e999`))
	if err != nil {
		t.Fatal(err)
	}
	if v.Type != ir.FloatType || !math.IsInf(v.Float64, -1) {
		t.Errorf("-1e999 = %+v, want -Inf float", v)
	}
}

func TestParseErrs(t *testing.T) {
	tests := []struct {
		in string
		e  error
	}{
		{``, ErrSyntax},
		{` `, ErrSyntax},
		{`[1`, ErrSyntax},
		{`[1,]`, ErrSyntax},
		{`{"a"}`, ErrSyntax},
		{`{"a": 1,}`, ErrSyntax},
		{`{a: 1}`, ErrSyntax},
		{`{"a": 1 "b": 2}`, ErrSyntax},
		{`{1: 2}`, ErrSyntax},
		{`1 2`, ErrSyntax},
		{`null true`, ErrSyntax},
		{`[1] []`, ErrSyntax},
		{`nan`, ErrSyntax},
		{`01`, token.ErrNumberLeadingZero},
		{`"abc`, token.ErrUnterminated},
		{`"\q"`, token.ErrBadEscape},
		{"\"\xff\"", token.ErrBadUTF8},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.in))
		if err == nil {
			t.Errorf("%q: expected error", tt.in)
			continue
		}
		if !errors.Is(err, tt.e) {
			t.Errorf("%q: got %v, want %v", tt.in, err, tt.e)
		}
	}
}

func TestParseTokenErrsAreSyntax(t *testing.T) {
	// lexical failures surface as ErrSyntax too
	for _, in := range []string{`01`, `"abc`, `@`} {
		_, err := Parse([]byte(in))
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: %v does not wrap ErrSyntax", in, err)
		}
	}
}

func TestParseDepth(t *testing.T) {
	nest := func(n int) string {
		return strings.Repeat("[", n) + strings.Repeat("]", n)
	}

	if _, err := Parse([]byte(nest(DefaultMaxDepth))); err != nil {
		t.Errorf("depth %d should parse: %v", DefaultMaxDepth, err)
	}
	if _, err := Parse([]byte(nest(DefaultMaxDepth + 1))); !errors.Is(err, ir.ErrDepth) {
		t.Errorf("depth %d: got %v, want ir.ErrDepth", DefaultMaxDepth+1, err)
	}

	if _, err := Parse([]byte(nest(3)), MaxDepth(3)); err != nil {
		t.Errorf("depth 3 at limit 3 should parse: %v", err)
	}
	if _, err := Parse([]byte(nest(4)), MaxDepth(3)); !errors.Is(err, ir.ErrDepth) {
		t.Errorf("depth 4 at limit 3: got %v, want ir.ErrDepth", err)
	}

	// mixed nesting counts containers, not tokens
	if _, err := Parse([]byte(`{"a": [{"b": []}]}`), MaxDepth(4)); err != nil {
		t.Errorf("mixed depth 4 at limit 4: %v", err)
	}
	if _, err := Parse([]byte(`{"a": [{"b": []}]}`), MaxDepth(3)); !errors.Is(err, ir.ErrDepth) {
		t.Errorf("mixed depth 4 at limit 3: got %v, want ir.ErrDepth", err)
	}
}

func TestParseErrPositions(t *testing.T) {
	_, err := Parse([]byte("{\n  \"a\": @\n}"))
	if err == nil {
		t.Fatal("expected error")
	}
	var te *token.TokenizeErr
	if !errors.As(err, &te) {
		t.Fatalf("no position in %v", err)
	}
	if l, c := te.Pos.LineCol(); l != 1 || c != 7 {
		t.Errorf("error at line=%d col=%d, want 1, 7", l, c)
	}
}
