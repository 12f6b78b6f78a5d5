package localizer

import (
	"fmt"

	celgo "github.com/google/cel-go/cel"
	functions "github.com/google/cel-go/common/functions"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
)

// CELInterpolatorOption configures the CEL interpolator.
type CELInterpolatorOption func(*celInterpolator)

// CELWithProgramCache wires a ProgramCache into the CEL interpolator.
func CELWithProgramCache(cache ProgramCache) CELInterpolatorOption {
	return func(e *celInterpolator) {
		e.cache = cache
	}
}

// CELWithFunctionRegistry wires a FunctionRegistry into the CEL interpolator.
func CELWithFunctionRegistry(registry *FunctionRegistry) CELInterpolatorOption {
	return func(e *celInterpolator) {
		if registry == nil {
			return
		}
		e.registry = registry.Clone()
	}
}

type celProgram struct {
	env     *celgo.Env
	program celgo.Program
}

type celInterpolator struct {
	cache    ProgramCache
	registry *FunctionRegistry
}

// NewCELInterpolator constructs an Interpolator backed by cel-go.
func NewCELInterpolator(opts ...CELInterpolatorOption) Interpolator {
	e := &celInterpolator{}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Render substitutes each ${...} expression evaluated against data.
func (e *celInterpolator) Render(template string, data any) (string, error) {
	env := dataAsMap(data)
	return renderTemplate(template, func(expression string) (any, error) {
		return e.eval(template, expression, env)
	})
}

func (e *celInterpolator) eval(template, expression string, data map[string]any) (any, error) {
	if expression == "" {
		return nil, wrapRenderError("cel", template, expression, fmt.Errorf("expression must not be empty"))
	}
	program, err := e.loadOrCompile(template, expression, data)
	if err != nil {
		return nil, err
	}
	out, _, err := program.program.Eval(e.activation(data))
	if err != nil {
		return nil, wrapRenderError("cel", template, expression, err)
	}
	return out.Value(), nil
}

func (e *celInterpolator) loadOrCompile(template, expression string, data map[string]any) (*celProgram, error) {
	if data == nil {
		data = map[string]any{}
	}
	if e.cache != nil {
		if cached, ok := e.cache.Get(expression); ok {
			if program, ok := cached.(*celProgram); ok {
				return program, nil
			}
		}
	}

	env, err := e.buildEnv(data)
	if err != nil {
		return nil, wrapRenderError("cel", template, expression, err)
	}
	ast, issues := env.Parse(expression)
	if issues != nil && issues.Err() != nil {
		return nil, wrapRenderError("cel", template, expression, issues.Err())
	}
	checked, issues := env.Check(ast)
	if issues != nil && issues.Err() != nil {
		return nil, wrapRenderError("cel", template, expression, issues.Err())
	}
	prg, err := env.Program(checked)
	if err != nil {
		return nil, wrapRenderError("cel", template, expression, err)
	}

	bundle := &celProgram{
		env:     env,
		program: prg,
	}
	if e.cache != nil {
		e.cache.Set(expression, bundle)
	}
	return bundle, nil
}

func (e *celInterpolator) buildEnv(data map[string]any) (*celgo.Env, error) {
	opts := []celgo.EnvOption{}
	if e.registry != nil {
		// cel-go has no variadic overloads; declare one overload per arity
		// (function name plus up to 7 dyn arguments) sharing a single binding.
		const maxCallArgs = 7
		callOverloads := make([]celgo.FunctionOpt, 0, maxCallArgs+1)
		args := []*celgo.Type{celgo.StringType}
		for i := 0; i <= maxCallArgs; i++ {
			callOverloads = append(callOverloads, celgo.Overload(
				fmt.Sprintf("call_dyn_%d", i),
				append([]*celgo.Type(nil), args...),
				celgo.DynType,
				celgo.FunctionBinding(e.callBinding()),
			))
			args = append(args, celgo.DynType)
		}
		opts = append(opts, celgo.Function("call", callOverloads...))
	}
	for key := range data {
		opts = append(opts, celgo.Variable(key, celgo.DynType))
	}
	return celgo.NewEnv(opts...)
}

func (e *celInterpolator) activation(data map[string]any) map[string]any {
	activation := make(map[string]any, len(data)+1)
	for key, value := range data {
		activation[key] = value
	}
	if e.registry != nil {
		activation["call"] = func(name string, arguments ...any) (any, error) {
			return e.registry.Call(name, arguments...)
		}
	}
	return activation
}

func (e *celInterpolator) callBinding() functions.FunctionOp {
	return func(values ...ref.Val) ref.Val {
		if e.registry == nil {
			return types.NewErr("localizer: function registry not configured")
		}
		if len(values) == 0 {
			return types.NewErr("localizer: call requires function name")
		}
		name, ok := values[0].Value().(string)
		if !ok {
			return types.NewErr("localizer: call name must be string")
		}
		args := make([]any, 0, len(values)-1)
		for _, val := range values[1:] {
			args = append(args, val.Value())
		}
		result, err := e.registry.Call(name, args...)
		if err != nil {
			return types.NewErr("%s", err.Error())
		}
		if result == nil {
			return types.NullValue
		}
		return types.DefaultTypeAdapter.NativeToValue(result)
	}
}
