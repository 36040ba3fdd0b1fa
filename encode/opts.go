package encode

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type EncodeOption func(*EncState)

// Indent switches the encoder to multi-line output with n spaces per
// nesting level.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		es.pretty = true
		es.indent = n
	}
}

// Depth sets the starting nesting depth for indented output. Useful
// when splicing encoded text into an already indented document.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EncodeColors renders the output with ANSI colors.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// AutoColors enables colors when w is a terminal. Writers that are not
// terminal files are left uncolored.
func AutoColors(w io.Writer) EncodeOption {
	return func(es *EncState) {
		f, ok := w.(*os.File)
		if !ok {
			return
		}
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			es.Color = NewColors().Color
		}
	}
}
