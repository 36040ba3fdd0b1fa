package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/koda-format/go-koda/debug"
	"github.com/koda-format/go-koda/ir"
)

// Field names used in diff output.
const (
	// DeleteField holds the old value in a change marker.
	DeleteField = "-"
	// InsertField holds the new value in a change marker.
	InsertField = "+"
	// AtField holds the element index in array diff entries.
	AtField = "@"
)

// Diff computes a structural diff between two values, nil when they
// are equal. Deletions are indexed by position in from, insertions by
// position in to.
func Diff(from, to *ir.Value) *ir.Value {
	var res *ir.Value
	switch {
	case from == nil && to == nil:
		res = nil
	case from == nil || to == nil:
		res = MakeDiff(from, to)
	case ir.Equal(from, to):
		res = nil
	default:
		res = diffValue(from, to)
	}
	if debug.Diff() {
		debug.Logf("libdiff: from\n%s\nto\n%s\ndiff\n%s\n",
			debug.Koda{Value: from}, debug.Koda{Value: to}, debug.Koda{Value: res})
	}
	return res
}

// MakeDiff builds a change marker, dropping whichever side is absent.
func MakeDiff(old, new *ir.Value) *ir.Value {
	res := &ir.Value{Type: ir.ObjectType}
	if old != nil {
		res.Fields = append(res.Fields, DeleteField)
		res.Values = append(res.Values, old)
	}
	if new != nil {
		res.Fields = append(res.Fields, InsertField)
		res.Values = append(res.Values, new)
	}
	return res
}

func diffValue(from, to *ir.Value) *ir.Value {
	if from.Type != to.Type {
		return MakeDiff(from, to)
	}
	switch from.Type {
	case ir.ObjectType:
		return diffObject(from, to)
	case ir.ArrayType:
		return diffArray(from, to)
	default:
		if ir.Equal(from, to) {
			return nil
		}
		return MakeDiff(from, to)
	}
}

// diffObject aligns the two field-name sequences as rune strings and
// runs a text diff over them. Equal runs recurse on the values,
// delete/insert runs become one-sided markers. Field order in the
// result follows the alignment walk.
func diffObject(from, to *ir.Value) *ir.Value {
	fieldMap := map[string]rune{}
	fromRunes := fieldRunes(fieldMap, from)
	toRunes := fieldRunes(fieldMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := &ir.Value{Type: ir.ObjectType}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				res.Fields = append(res.Fields, from.Fields[fi])
				res.Values = append(res.Values, MakeDiff(from.Values[fi], nil))
				fi++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				if sub := diffValue(from.Values[fi], to.Values[ti]); sub != nil {
					res.Fields = append(res.Fields, from.Fields[fi])
					res.Values = append(res.Values, sub)
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				res.Fields = append(res.Fields, to.Fields[ti])
				res.Values = append(res.Values, MakeDiff(nil, to.Values[ti]))
				ti++
			}
		}
	}
	if len(res.Fields) == 0 {
		return nil
	}
	return res
}

// diffArray aligns elements by content hash through the same rune
// mapping. Aligned pairs that still differ (hash collisions) become
// two-pair markers.
func diffArray(from, to *ir.Value) *ir.Value {
	elemMap := map[uint64]rune{}
	fromRunes := elemRunes(elemMap, from)
	toRunes := elemRunes(elemMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var entries []*ir.Value
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				entries = append(entries, atEntry(fi, MakeDiff(from.Values[fi], nil)))
				fi++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				if !ir.Equal(from.Values[fi], to.Values[ti]) {
					entries = append(entries, atEntry(fi, MakeDiff(from.Values[fi], to.Values[ti])))
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				entries = append(entries, atEntry(ti, MakeDiff(nil, to.Values[ti])))
				ti++
			}
		}
	}
	if len(entries) == 0 {
		return nil
	}
	return ir.FromSlice(entries)
}

// atEntry prefixes a change marker with its element index.
func atEntry(i int, marker *ir.Value) *ir.Value {
	res := &ir.Value{Type: ir.ObjectType}
	res.Fields = append(res.Fields, AtField)
	res.Values = append(res.Values, ir.FromInt(int64(i)))
	res.Fields = append(res.Fields, marker.Fields...)
	res.Values = append(res.Values, marker.Values...)
	return res
}

func fieldRunes(m map[string]rune, node *ir.Value) []rune {
	rs := make([]rune, len(node.Fields))
	for i, f := range node.Fields {
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
		}
		rs[i] = r
	}
	return rs
}

func elemRunes(m map[uint64]rune, arr *ir.Value) []rune {
	rs := make([]rune, len(arr.Values))
	for i, v := range arr.Values {
		h := v.Hash()
		r, ok := m[h]
		if !ok {
			r = rune(len(m))
			m[h] = r
		}
		rs[i] = r
	}
	return rs
}
