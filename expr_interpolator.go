package localizer

import (
	"fmt"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
)

// ExprInterpolatorOption configures an expr interpolator instance.
type ExprInterpolatorOption func(*exprInterpolator)

// ExprWithProgramCache wires a ProgramCache into the expr interpolator.
func ExprWithProgramCache(cache ProgramCache) ExprInterpolatorOption {
	return func(e *exprInterpolator) {
		e.cache = cache
	}
}

// ExprWithFunctionRegistry wires a FunctionRegistry into the expr
// interpolator.
func ExprWithFunctionRegistry(registry *FunctionRegistry) ExprInterpolatorOption {
	return func(e *exprInterpolator) {
		if registry == nil {
			return
		}
		e.registry = registry.Clone()
	}
}

// exprInterpolator substitutes placeholders using github.com/expr-lang/expr.
type exprInterpolator struct {
	cache    ProgramCache
	registry *FunctionRegistry
}

// NewExprInterpolator constructs an Interpolator backed by expr-lang/expr.
func NewExprInterpolator(opts ...ExprInterpolatorOption) Interpolator {
	e := &exprInterpolator{}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Render substitutes each ${...} expression evaluated against data.
func (e *exprInterpolator) Render(template string, data any) (string, error) {
	env := e.environment(dataAsMap(data))
	return renderTemplate(template, func(expression string) (any, error) {
		return e.eval(template, expression, env)
	})
}

func (e *exprInterpolator) eval(template, expression string, env map[string]any) (any, error) {
	if expression == "" {
		return nil, wrapRenderError("expr", template, expression, fmt.Errorf("expression must not be empty"))
	}
	if e.cache == nil {
		result, err := exprlang.Eval(expression, env)
		if err != nil {
			return nil, wrapRenderError("expr", template, expression, err)
		}
		return result, nil
	}
	program, err := e.loadOrCompile(template, expression)
	if err != nil {
		return nil, err
	}
	result, err := exprlang.Run(program, env)
	if err != nil {
		return nil, wrapRenderError("expr", template, expression, err)
	}
	return result, nil
}

func (e *exprInterpolator) loadOrCompile(template, expression string) (*exprvm.Program, error) {
	if e.cache != nil {
		if cached, ok := e.cache.Get(expression); ok {
			if program, ok := cached.(*exprvm.Program); ok {
				return program, nil
			}
		}
	}
	options := []exprlang.Option{
		exprlang.Env(map[string]any{}),
		exprlang.AllowUndefinedVariables(),
	}
	for _, name := range e.registryNames() {
		fn := e.registryFunction(name)
		options = append(options, exprlang.Function(name, fn))
	}
	program, err := exprlang.Compile(expression, options...)
	if err != nil {
		return nil, wrapRenderError("expr", template, expression, err)
	}
	if e.cache != nil {
		e.cache.Set(expression, program)
	}
	return program, nil
}

func (e *exprInterpolator) environment(data map[string]any) map[string]any {
	env := make(map[string]any, len(data)+2)
	for key, value := range data {
		env[key] = value
	}
	if e.registry != nil {
		env["call"] = func(name string, arguments ...any) (any, error) {
			return e.registry.Call(name, arguments...)
		}
		for _, name := range e.registry.Names() {
			fn := name
			env[fn] = func(arguments ...any) (any, error) {
				return e.registry.Call(fn, arguments...)
			}
		}
	}
	return env
}

func (e *exprInterpolator) registryNames() []string {
	if e == nil || e.registry == nil {
		return nil
	}
	return e.registry.Names()
}

func (e *exprInterpolator) registryFunction(name string) func(...any) (any, error) {
	if e == nil || e.registry == nil {
		return nil
	}
	return func(arguments ...any) (any, error) {
		return e.registry.Call(name, arguments...)
	}
}
