package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Diff  bool
	Patch bool
	Eval  bool
	Map   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("KODA_DEBUG_DIFF")
	d.Patch = boolEnv("KODA_DEBUG_PATCH")
	d.Eval = boolEnv("KODA_DEBUG_EVAL")
	d.Map = boolEnv("KODA_DEBUG_MAP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
func Map() bool {
	return d.Map
}
