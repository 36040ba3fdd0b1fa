package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/koda-format/go-koda/encode"
	"github.com/koda-format/go-koda/ir"
)

// Koda renders a value as indented text when logged.
type Koda struct{ *ir.Value }

func (y Koda) String() string {
	x := y.Value
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf, encode.Indent(2)); err != nil {
		return fmt.Sprintf("[raw value] %v", x)
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Value:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw value] %v", x)
				continue
			}
			args[i] = buf.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
