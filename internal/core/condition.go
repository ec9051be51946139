package core

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// conditionEnv exposes the context fields a `when:` expression may read.
func conditionEnv(ctx *SystemContext) map[string]interface{} {
	return map[string]interface{}{
		"os":       ctx.OS,
		"distro":   ctx.Distro,
		"version":  ctx.Version,
		"hostname": ctx.Hostname,
		"user":     ctx.User,
		"home":     ctx.HomeDir,
		"vars":     ctx.Vars,
	}
}

// EvaluateCondition compiles and runs a boolean expression against the
// system context, e.g. `os == "darwin"` or `distro in ["ubuntu", "debian"]`.
func EvaluateCondition(expression string, ctx *SystemContext) (bool, error) {
	env := conditionEnv(ctx)

	program, err := expr.Compile(expression, expr.Env(env), expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("invalid condition %q: %w", expression, err)
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("condition %q: %w", expression, err)
	}

	result, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("condition %q did not evaluate to a boolean", expression)
	}
	return result, nil
}
