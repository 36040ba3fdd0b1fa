package bridge

import (
	"strings"
	"testing"

	"github.com/koda-format/go-koda/encode"
	"github.com/koda-format/go-koda/ir"
)

func TestFromYAML(t *testing.T) {
	in := `
name: api
port: 8080
ratio: 0.5
debug: true
empty: null
tags:
  - edge
  - prod
`
	node, err := FromYAML([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	// Mapping keys come out sorted, the gomap map rule.
	want := ir.FromKeyVals(
		ir.KeyVal{Key: "debug", Val: ir.FromBool(true)},
		ir.KeyVal{Key: "empty", Val: ir.Null()},
		ir.KeyVal{Key: "name", Val: ir.FromString("api")},
		ir.KeyVal{Key: "port", Val: ir.FromInt(8080)},
		ir.KeyVal{Key: "ratio", Val: ir.FromFloat(0.5)},
		ir.KeyVal{Key: "tags", Val: ir.FromSlice([]*ir.Value{
			ir.FromString("edge"), ir.FromString("prod"),
		})},
	)
	if !ir.Equal(node, want) {
		t.Errorf("got %s, expected %s", encode.MustString(node), encode.MustString(want))
	}
}

func TestFromYAMLHostNumbers(t *testing.T) {
	// The host split applies through the any tree: integral floats
	// come back as Int.
	node, err := FromYAML([]byte("x: 2.0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node.Values[0], ir.FromInt(2)) {
		t.Errorf("got %s, expected 2", encode.MustString(node.Values[0]))
	}

	node, err = FromYAML([]byte("x: -3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node.Values[0], ir.FromInt(-3)) {
		t.Errorf("got %s, expected -3", encode.MustString(node.Values[0]))
	}
}

func TestToYAML(t *testing.T) {
	node := ir.FromKeyVals(ir.KeyVal{Key: "k", Val: ir.FromString("v")})
	d, err := ToYAML(node)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(d)) != "k: v" {
		t.Errorf("got %q", d)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	// Keys pre-sorted so the map traversal is invisible.
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "half", Val: ir.FromFloat(0.5)},
		ir.KeyVal{Key: "list", Val: ir.FromSlice([]*ir.Value{
			ir.FromInt(1), ir.FromString("two"), ir.Null(),
		})},
		ir.KeyVal{Key: "name", Val: ir.FromString("svc")},
		ir.KeyVal{Key: "nested", Val: ir.FromKeyVals(
			ir.KeyVal{Key: "deep", Val: ir.FromBool(false)},
		)},
	)
	d, err := ToYAML(node)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromYAML(d)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(back, node) {
		t.Errorf("got %s, expected %s", encode.MustString(back), encode.MustString(node))
	}
}

func TestFromYAMLErr(t *testing.T) {
	if _, err := FromYAML([]byte("a: [unclosed\n")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
