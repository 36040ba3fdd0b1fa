package koda

import (
	"errors"
	"testing"

	"github.com/koda-format/go-koda/ir"
	"github.com/koda-format/go-koda/parse"
	"github.com/koda-format/go-koda/wire"
)

func TestDuplicateKeysPreserved(t *testing.T) {
	v, err := Parse([]byte(`{"a":1,"a":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Fields) != 2 || v.Fields[0] != "a" || v.Fields[1] != "a" {
		t.Fatalf("got fields %v, expected two a's", v.Fields)
	}
	if v.Values[0].Int64 != 1 || v.Values[1].Int64 != 2 {
		t.Errorf("got values %d, %d", v.Values[0].Int64, v.Values[1].Int64)
	}

	s, err := Stringify(v)
	if err != nil {
		t.Fatal(err)
	}
	if s != `{"a":1,"a":2}` {
		t.Errorf("got %s", s)
	}
}

func TestNull(t *testing.T) {
	v, err := Parse([]byte("null"))
	if err != nil {
		t.Fatal(err)
	}
	if v.Type != ir.NullType {
		t.Errorf("got %s", v.Type)
	}
	s, err := Stringify(ir.Null())
	if err != nil || s != "null" {
		t.Errorf("got %q, %v", s, err)
	}
}

func TestLargeIntBeyondSafeDouble(t *testing.T) {
	// 2^53 + 1: the full 64-bit range is native to both forms; the
	// 2^53 boundary only matters at the Go value boundary in gomap.
	const n = 9007199254740993
	v, err := Parse([]byte("9007199254740993"))
	if err != nil {
		t.Fatal(err)
	}
	if v.Type != ir.IntType || v.Int64 != n {
		t.Fatalf("got %s %d", v.Type, v.Int64)
	}

	b, err := Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if back.Type != ir.IntType || back.Int64 != n {
		t.Errorf("got %s %d after round trip", back.Type, back.Int64)
	}
}

func TestStringLengthLimit(t *testing.T) {
	// A declared string length of 2,000,000 exceeds the default cap.
	b := []byte{wire.Version, 0x04, 0x80, 0x89, 0x7a}
	_, err := Decode(b)
	if !errors.Is(err, wire.ErrLimit) {
		t.Errorf("got %v, expected limit error", err)
	}
}

func TestTruncatedArray(t *testing.T) {
	full, err := Encode(mustParse(t, `[1,2,3]`))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Decode(full[:len(full)-3])
	if !errors.Is(err, wire.ErrEOF) {
		t.Errorf("got %v, expected eof error", err)
	}
}

func TestUnterminatedArray(t *testing.T) {
	_, err := Parse([]byte(`[1,2,`))
	if !errors.Is(err, parse.ErrSyntax) {
		t.Errorf("got %v, expected syntax error", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	docs := []string{
		`{"a":1,"a":2,"b":[null,true,0.5],"c":"x"}`,
		`[]`,
		`{}`,
		`-9223372036854775808`,
		`"héllo"`,
		`1.0`,
	}
	for _, d := range docs {
		v := mustParse(t, d)
		s, err := Stringify(v)
		if err != nil {
			t.Fatal(err)
		}
		back, err := Parse([]byte(s))
		if err != nil {
			t.Fatalf("re-parse %q: %v", s, err)
		}
		if !ir.Equal(v, back) {
			t.Errorf("round trip of %q changed the value", d)
		}
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	v := mustParse(t, `{"svc":"koda","svc":"again","n":[1,2,3],"f":0.25}`)
	b1, err := Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(b1) != string(b2) {
		t.Error("encoding is not deterministic")
	}
	back, err := Decode(b1)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(v, back) {
		t.Error("binary round trip changed the value")
	}
}

func TestUnmarshalSniffsFormat(t *testing.T) {
	type cfg struct {
		Name string `koda:"name"`
		Port int    `koda:"port"`
	}
	doc := mustParse(t, `{"name":"api","port":8080}`)

	text := []byte(`{"name":"api","port":8080}`)
	var fromText cfg
	if err := Unmarshal(text, &fromText); err != nil {
		t.Fatal(err)
	}

	bin, err := Encode(doc)
	if err != nil {
		t.Fatal(err)
	}
	var fromWire cfg
	if err := Unmarshal(bin, &fromWire); err != nil {
		t.Fatal(err)
	}

	if fromText != fromWire {
		t.Errorf("text gave %+v, wire gave %+v", fromText, fromWire)
	}
	if fromText.Name != "api" || fromText.Port != 8080 {
		t.Errorf("got %+v", fromText)
	}
}

func TestDepthBoundary(t *testing.T) {
	depth := func(n int) []byte {
		b := make([]byte, 0, 2*n+1)
		for range n {
			b = append(b, '[')
		}
		b = append(b, '1')
		for range n {
			b = append(b, ']')
		}
		return b
	}

	if _, err := Parse(depth(256)); err != nil {
		t.Errorf("depth 256: %v", err)
	}
	if _, err := Parse(depth(257)); !errors.Is(err, ir.ErrDepth) {
		t.Error("expected depth error at 257")
	}
	if _, err := Parse(depth(257), parse.MaxDepth(300)); err != nil {
		t.Errorf("raised limit: %v", err)
	}
}

func mustParse(t *testing.T, d string) *ir.Value {
	t.Helper()
	v, err := Parse([]byte(d))
	if err != nil {
		t.Fatalf("Parse(%q): %v", d, err)
	}
	return v
}
