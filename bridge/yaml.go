package bridge

import (
	"github.com/goccy/go-yaml"

	"github.com/koda-format/go-koda/gomap"
	"github.com/koda-format/go-koda/ir"
)

// FromYAML parses YAML into a Koda value through plain Go data, so
// gomap's number classification applies and mapping key order follows
// the sorted-map rule.
func FromYAML(d []byte) (*ir.Value, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return gomap.ToIR(v)
}

// ToYAML renders a Koda value as YAML through plain Go data.
// Duplicate object keys collapse last-wins on the way out.
func ToYAML(v *ir.Value) ([]byte, error) {
	x, err := gomap.ToGo(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(x)
}
