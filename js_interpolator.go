//go:build js_eval

package localizer

import (
	"fmt"

	"github.com/dop251/goja"
)

type jsInterpolator struct {
	cache    ProgramCache
	registry *FunctionRegistry
}

// NewJSInterpolator constructs an Interpolator backed by goja.
func NewJSInterpolator(opts ...JSInterpolatorOption) Interpolator {
	cfg := applyJSInterpolatorOptions(opts)
	return &jsInterpolator{
		cache:    cfg.cache,
		registry: cfg.registry,
	}
}

// Render substitutes each ${...} expression evaluated against data.
func (e *jsInterpolator) Render(template string, data any) (string, error) {
	env := dataAsMap(data)
	return renderTemplate(template, func(expression string) (any, error) {
		return e.eval(template, expression, env)
	})
}

func (e *jsInterpolator) eval(template, expression string, data map[string]any) (any, error) {
	if expression == "" {
		return nil, wrapRenderError("js", template, expression, fmt.Errorf("expression must not be empty"))
	}
	if e.cache == nil {
		return e.run(template, expression, data, nil)
	}
	program, err := e.loadOrCompile(template, expression)
	if err != nil {
		return nil, err
	}
	return e.run(template, expression, data, program)
}

func (e *jsInterpolator) loadOrCompile(template, expression string) (*goja.Program, error) {
	if e.cache != nil {
		if cached, ok := e.cache.Get(expression); ok {
			if program, ok := cached.(*goja.Program); ok {
				return program, nil
			}
		}
	}
	program, err := goja.Compile("", e.wrapExpression(expression), false)
	if err != nil {
		return nil, wrapRenderError("js", template, expression, err)
	}
	if e.cache != nil {
		e.cache.Set(expression, program)
	}
	return program, nil
}

func (e *jsInterpolator) run(template, expression string, data map[string]any, program *goja.Program) (any, error) {
	vm := goja.New()
	e.injectContext(vm, data)
	if program != nil {
		value, err := vm.RunProgram(program)
		if err != nil {
			return nil, wrapRenderError("js", template, expression, err)
		}
		return value.Export(), nil
	}
	value, err := vm.RunString(e.wrapExpression(expression))
	if err != nil {
		return nil, wrapRenderError("js", template, expression, err)
	}
	return value.Export(), nil
}

func (e *jsInterpolator) injectContext(vm *goja.Runtime, data map[string]any) {
	for key, value := range data {
		vm.Set(key, value)
	}
	if e.registry != nil {
		vm.Set("call", func(name string, arguments ...any) (any, error) {
			return e.registry.Call(name, arguments...)
		})
		for _, name := range e.registry.Names() {
			fn := name
			vm.Set(fn, func(arguments ...any) (any, error) {
				return e.registry.Call(fn, arguments...)
			})
		}
	}
}

func (e *jsInterpolator) wrapExpression(expression string) string {
	return fmt.Sprintf("(function(){ return (%s); })()", expression)
}

func jsInterpolatorAvailable() bool {
	return true
}
