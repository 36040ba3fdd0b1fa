// Package eval runs expressions against Koda documents.
//
// Expressions use the expr language and see the document as `value`
// in its plain Go form: objects are map[string]any (duplicate keys
// last-wins), arrays []any, numbers int64 or float64.
//
// # Usage
//
//	out, err := eval.Eval(doc, `value.port > 1024`)
//	admins, err := eval.Select(users, `value.role == "admin"`)
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/koda-format/go-koda/debug"
	"github.com/koda-format/go-koda/gomap"
	"github.com/koda-format/go-koda/ir"
)

// Program is a compiled expression, reusable across documents.
type Program struct {
	src string
	prg *vm.Program
}

// Compile compiles src once for repeated evaluation.
func Compile(src string) (*Program, error) {
	prg, err := expr.Compile(src)
	if err != nil {
		return nil, err
	}
	return &Program{src: src, prg: prg}, nil
}

// Run evaluates the program with doc bound to `value`.
func (p *Program) Run(doc *ir.Value) (any, error) {
	v, err := gomap.ToGo(doc)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval: %s on\n%s\n", p.src, debug.Koda{Value: doc})
	}
	return expr.Run(p.prg, map[string]any{"value": v})
}

// Eval compiles and runs src against doc.
func Eval(doc *ir.Value, src string) (any, error) {
	prg, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return prg.Run(doc)
}

// Select returns the elements of arr for which src evaluates to true.
// The expression must produce a bool for every element.
func Select(arr *ir.Value, src string) (*ir.Value, error) {
	if arr == nil {
		return nil, fmt.Errorf("select only applies to arrays, got nothing")
	}
	if arr.Type != ir.ArrayType {
		return nil, fmt.Errorf("select only applies to arrays, got %s", arr.Type)
	}
	prg, err := Compile(src)
	if err != nil {
		return nil, err
	}
	res := &ir.Value{Type: ir.ArrayType}
	for i, el := range arr.Values {
		out, err := prg.Run(el)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		keep, ok := out.(bool)
		if !ok {
			return nil, fmt.Errorf("element %d: expression returned %T, expected bool", i, out)
		}
		if keep {
			res.Values = append(res.Values, el)
		}
	}
	return res, nil
}
