// Package query evaluates expr-lang expressions against a fetched
// configuration.
//
// The configuration is available as "config", and each top-level key is
// also bound directly, so "config.maxItems > 10" and "maxItems > 10" are
// equivalent.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// Evaluate compiles and runs expression against cfg.
func Evaluate(expression string, cfg map[string]any) (any, error) {
	env := environment(cfg)

	program, err := expr.Compile(expression, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("failed to compile expression: %w", err)
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate expression: %w", err)
	}

	return result, nil
}

// EvaluateBool is Evaluate for expressions that must yield a boolean.
func EvaluateBool(expression string, cfg map[string]any) (bool, error) {
	result, err := Evaluate(expression, cfg)
	if err != nil {
		return false, err
	}

	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("expression returned non-boolean: %T", result)
	}
	return b, nil
}

func environment(cfg map[string]any) map[string]any {
	env := make(map[string]any, len(cfg)+1)
	for k, v := range cfg {
		env[k] = v
	}
	env["config"] = cfg
	return env
}
