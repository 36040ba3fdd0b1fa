package gomap

import (
	"reflect"
	"strings"
)

// parseTag splits a koda struct tag into its name and trailing
// options, the same shape encoding/json uses: `koda:"name,omitempty"`.
func parseTag(tag string) (string, tagOptions) {
	name, opts, _ := strings.Cut(tag, ",")
	return name, tagOptions(opts)
}

type tagOptions string

func (o tagOptions) Contains(name string) bool {
	s := string(o)
	for s != "" {
		var next string
		next, s, _ = strings.Cut(s, ",")
		if next == name {
			return true
		}
	}
	return false
}

// fieldName resolves the encoded name for a struct field, honoring
// the koda tag. The last result is false when the field is excluded
// with `koda:"-"`.
func fieldName(f reflect.StructField) (string, tagOptions, bool) {
	tag := f.Tag.Get("koda")
	if tag == "-" {
		return "", "", false
	}
	name, opts := parseTag(tag)
	if name == "" {
		name = f.Name
	}
	return name, opts, true
}
