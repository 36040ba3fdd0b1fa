package format

import (
	"errors"
	"testing"

	"github.com/koda-format/go-koda/ir"
	"github.com/koda-format/go-koda/wire"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in string
		e  Format
	}{
		{in: "t", e: TextFormat},
		{in: "text", e: TextFormat},
		{in: "koda", e: TextFormat},
		{in: "w", e: WireFormat},
		{in: "wire", e: WireFormat},
		{in: "kodb", e: WireFormat},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.e {
			t.Errorf("%q: got %v want %v", tc.in, got, tc.e)
		}
	}
	if _, err := ParseFormat("yaml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v want ErrBadFormat", err)
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatalf("%v: %v", f, err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if back != f {
			t.Errorf("%s: got %v want %v", d, back, f)
		}
	}
	if _, err := Format(99).MarshalText(); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v want ErrBadFormat", err)
	}
}

func TestSuffix(t *testing.T) {
	if s := TextFormat.Suffix(); s != ".koda" {
		t.Errorf("got %q", s)
	}
	if s := WireFormat.Suffix(); s != ".kodb" {
		t.Errorf("got %q", s)
	}
}

func TestDetect(t *testing.T) {
	b, err := wire.Encode(ir.FromKeyVals(
		ir.KeyVal{Key: "a", Val: ir.FromInt(1)},
	))
	if err != nil {
		t.Fatal(err)
	}
	if f := Detect(b); f != WireFormat {
		t.Errorf("wire bytes: got %v", f)
	}
	texts := []string{`{"a":1}`, `  [1]`, `null`, `"x"`, "\n42", ""}
	for _, s := range texts {
		if f := Detect([]byte(s)); f != TextFormat {
			t.Errorf("%q: got %v", s, f)
		}
	}
}
