package libdiff

import (
	"math"
	"testing"

	"github.com/koda-format/go-koda/encode"
	"github.com/koda-format/go-koda/ir"
	"github.com/koda-format/go-koda/parse"
)

func mustParse(t *testing.T, d string) *ir.Value {
	t.Helper()
	v, err := parse.Parse([]byte(d))
	if err != nil {
		t.Fatalf("Parse(%q): %v", d, err)
	}
	return v
}

func checkDiff(t *testing.T, got, want *ir.Value) {
	t.Helper()
	if got == nil || want == nil {
		if got != want {
			t.Errorf("got %v, expected %v", got, want)
		}
		return
	}
	if !ir.Equal(got, want) {
		t.Errorf("got %s, expected %s", encode.MustString(got), encode.MustString(want))
	}
}

func TestDiffEqual(t *testing.T) {
	docs := []string{
		`null`, `true`, `42`, `0.5`, `"hi"`,
		`[1,2,3]`, `{"a":1,"b":[true,null]}`, `{}`, `[]`,
	}
	for _, d := range docs {
		if res := Diff(mustParse(t, d), mustParse(t, d)); res != nil {
			t.Errorf("Diff(%q, same): got %s, expected nil", d, encode.MustString(res))
		}
	}

	// Equality is IEEE bit equality, so NaN documents are stable.
	if res := Diff(ir.FromFloat(math.NaN()), ir.FromFloat(math.NaN())); res != nil {
		t.Errorf("NaN: got %s, expected nil", encode.MustString(res))
	}
}

func TestDiffLeaf(t *testing.T) {
	got := Diff(ir.FromInt(1), ir.FromInt(2))
	checkDiff(t, got, mustParse(t, `{"-":1,"+":2}`))

	got = Diff(ir.FromInt(1), ir.FromString("1"))
	checkDiff(t, got, mustParse(t, `{"-":1,"+":"1"}`))

	// Int and Float are distinct values even at equal magnitude.
	got = Diff(ir.FromInt(1), ir.FromFloat(1))
	checkDiff(t, got, mustParse(t, `{"-":1,"+":1.0}`))
}

func TestDiffNil(t *testing.T) {
	if res := Diff(nil, nil); res != nil {
		t.Errorf("got %s, expected nil", encode.MustString(res))
	}
	checkDiff(t, Diff(nil, ir.FromInt(1)), mustParse(t, `{"+":1}`))
	checkDiff(t, Diff(ir.FromInt(1), nil), mustParse(t, `{"-":1}`))
}

func TestDiffObject(t *testing.T) {
	from := mustParse(t, `{"a":1,"b":2,"c":3}`)
	to := mustParse(t, `{"a":1,"b":9,"d":4}`)
	got := Diff(from, to)
	want := mustParse(t, `{"b":{"-":2,"+":9},"c":{"-":3},"d":{"+":4}}`)
	checkDiff(t, got, want)
}

func TestDiffObjectNested(t *testing.T) {
	from := mustParse(t, `{"cfg":{"x":1,"keep":true},"other":[]}`)
	to := mustParse(t, `{"cfg":{"x":2,"keep":true},"other":[]}`)
	got := Diff(from, to)
	want := mustParse(t, `{"cfg":{"x":{"-":1,"+":2}}}`)
	checkDiff(t, got, want)
}

func TestDiffTypeChange(t *testing.T) {
	from := mustParse(t, `{"a":[1]}`)
	to := mustParse(t, `{"a":{"x":1}}`)
	got := Diff(from, to)
	want := mustParse(t, `{"a":{"-":[1],"+":{"x":1}}}`)
	checkDiff(t, got, want)
}

func TestDiffArray(t *testing.T) {
	from := mustParse(t, `[1,2,3]`)
	to := mustParse(t, `[1,3,4]`)
	got := Diff(from, to)
	want := mustParse(t, `[{"@":1,"-":2},{"@":2,"+":4}]`)
	checkDiff(t, got, want)
}

func TestDiffArrayInsertFront(t *testing.T) {
	from := mustParse(t, `["b","c"]`)
	to := mustParse(t, `["a","b","c"]`)
	got := Diff(from, to)
	want := mustParse(t, `[{"@":0,"+":"a"}]`)
	checkDiff(t, got, want)
}

func TestDiffArrayReorder(t *testing.T) {
	from := mustParse(t, `[1,2]`)
	to := mustParse(t, `[2,1]`)
	got := Diff(from, to)
	if got == nil || got.Type != ir.ArrayType {
		t.Fatalf("got %v, expected array diff", got)
	}
	// A swap is one deletion plus one insertion; the aligned element
	// is untouched.
	dels, ins := 0, 0
	for _, entry := range got.Values {
		for _, f := range entry.Fields {
			switch f {
			case DeleteField:
				dels++
			case InsertField:
				ins++
			}
		}
	}
	if dels != 1 || ins != 1 {
		t.Errorf("got %d deletions and %d insertions, expected 1 and 1: %s",
			dels, ins, encode.MustString(got))
	}
}

func TestDiffArrayOfObjects(t *testing.T) {
	from := mustParse(t, `[{"id":1,"v":"a"},{"id":2,"v":"b"}]`)
	to := mustParse(t, `[{"id":1,"v":"a"},{"id":2,"v":"c"}]`)
	got := Diff(from, to)
	// Content alignment matches only the unchanged element; the
	// changed one appears as delete plus insert.
	want := mustParse(t, `[{"@":1,"-":{"id":2,"v":"b"}},{"@":1,"+":{"id":2,"v":"c"}}]`)
	checkDiff(t, got, want)
}

func TestDiffEmptyContainers(t *testing.T) {
	checkDiff(t, Diff(mustParse(t, `{}`), mustParse(t, `{"a":1}`)),
		mustParse(t, `{"a":{"+":1}}`))
	checkDiff(t, Diff(mustParse(t, `[]`), mustParse(t, `[5]`)),
		mustParse(t, `[{"@":0,"+":5}]`))
	checkDiff(t, Diff(mustParse(t, `{"a":1}`), mustParse(t, `{}`)),
		mustParse(t, `{"a":{"-":1}}`))
}
