package transform

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// evaluator runs mapping-table transform expressions. Compiled programs are
// cached per expression string since the same transform runs once per product.
type evaluator struct {
	cache sync.Map // expression string → *vm.Program
}

func (e *evaluator) apply(expression string, env map[string]any) (any, error) {
	program, err := e.compile(expression, env)
	if err != nil {
		return nil, fmt.Errorf("compile transform %q: %w", expression, err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("run transform %q: %w", expression, err)
	}
	return out, nil
}

func (e *evaluator) compile(expression string, env map[string]any) (*vm.Program, error) {
	if cached, ok := e.cache.Load(expression); ok {
		return cached.(*vm.Program), nil
	}
	program, err := expr.Compile(expression, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}
	e.cache.Store(expression, program)
	return program, nil
}
