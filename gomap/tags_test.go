package gomap

import (
	"reflect"
	"testing"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag  string
		name string
		opts tagOptions
	}{
		{"", "", ""},
		{"name", "name", ""},
		{"name,omitempty", "name", "omitempty"},
		{",omitempty", "", "omitempty"},
		{"name,omitempty,future", "name", "omitempty,future"},
	}
	for _, test := range tests {
		name, opts := parseTag(test.tag)
		if name != test.name || opts != test.opts {
			t.Errorf("parseTag(%q): got (%q, %q), expected (%q, %q)",
				test.tag, name, opts, test.name, test.opts)
		}
	}
}

func TestTagOptionsContains(t *testing.T) {
	opts := tagOptions("omitempty,future")
	if !opts.Contains("omitempty") {
		t.Error("expected omitempty")
	}
	if !opts.Contains("future") {
		t.Error("expected future")
	}
	if opts.Contains("omit") {
		t.Error("did not expect omit")
	}
	if tagOptions("").Contains("omitempty") {
		t.Error("empty options contain nothing")
	}
}

func TestFieldName(t *testing.T) {
	type tagged struct {
		A string `koda:"renamed"`
		B string `koda:"b,omitempty"`
		C string `koda:"-"`
		D string
		E string `koda:",omitempty"`
	}
	typ := reflect.TypeOf(tagged{})

	tests := []struct {
		field string
		name  string
		omit  bool
		keep  bool
	}{
		{"A", "renamed", false, true},
		{"B", "b", true, true},
		{"C", "", false, false},
		{"D", "D", false, true},
		{"E", "E", true, true},
	}
	for _, test := range tests {
		f, _ := typ.FieldByName(test.field)
		name, opts, keep := fieldName(f)
		if keep != test.keep {
			t.Errorf("%s: got keep=%v, expected %v", test.field, keep, test.keep)
			continue
		}
		if !keep {
			continue
		}
		if name != test.name {
			t.Errorf("%s: got name %q, expected %q", test.field, name, test.name)
		}
		if opts.Contains("omitempty") != test.omit {
			t.Errorf("%s: got omitempty=%v, expected %v", test.field, !test.omit, test.omit)
		}
	}
}
