package main

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// EvalNumber evaluates a numeric expression for the inspector fields.
// vars are exposed as globals, so "x + w/2" works when x and w are
// bound. Only the math module is importable from expressions.
func EvalNumber(src string, vars map[string]float64) (float64, error) {
	script := tengo.NewScript([]byte("__result__ := " + src))
	for name, val := range vars {
		_ = script.Add(name, val)
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return 0, fmt.Errorf("eval %q: %w", src, err)
	}
	if err := compiled.Run(); err != nil {
		return 0, fmt.Errorf("eval %q: %w", src, err)
	}

	switch obj := compiled.Get("__result__").Object().(type) {
	case *tengo.Int:
		return float64(obj.Value), nil
	case *tengo.Float:
		return obj.Value, nil
	default:
		return 0, fmt.Errorf("eval %q: result is %T, want a number", src, obj)
	}
}
