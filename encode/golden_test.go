package encode

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/koda-format/go-koda/ir"
)

func goldenDoc() *ir.Value {
	return ir.FromKeyVals(
		ir.KeyVal{Key: "service", Val: ir.FromString("koda")},
		ir.KeyVal{Key: "version", Val: ir.FromInt(3)},
		ir.KeyVal{Key: "ratio", Val: ir.FromFloat(0.5)},
		ir.KeyVal{Key: "debug", Val: ir.FromBool(false)},
		ir.KeyVal{Key: "notes", Val: ir.Null()},
		ir.KeyVal{Key: "ports", Val: ir.FromSlice([]*ir.Value{
			ir.FromInt(80),
			ir.FromInt(443),
		})},
		ir.KeyVal{Key: "meta", Val: ir.FromKeyVals(
			ir.KeyVal{Key: "empty", Val: ir.FromKeyVals()},
			ir.KeyVal{Key: "tags", Val: ir.FromSlice([]*ir.Value{
				ir.FromString("a"),
				ir.FromString("b"),
			})},
		)},
	)
}

// Golden files pin the exact output bytes. Regenerate with
// go test ./encode -update after an intentional output change.
func TestEncodeGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	doc := goldenDoc()

	compact, err := String(doc)
	if err != nil {
		t.Fatal(err)
	}
	g.Assert(t, "compact", []byte(compact))

	pretty, err := String(doc, Indent(2))
	if err != nil {
		t.Fatal(err)
	}
	g.Assert(t, "pretty", []byte(pretty))
}
