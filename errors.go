package localizer

import (
	"errors"
	"fmt"
)

// ResourceNotFoundError reports a key that no loader in the chain could
// supply, under a throw-on-missing policy.
type ResourceNotFoundError struct {
	Key string
}

func (e *ResourceNotFoundError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("localizer: string resource for %q not found", e.Key)
}

// IsNotFound reports whether err carries a ResourceNotFoundError.
func IsNotFound(err error) bool {
	var notFound *ResourceNotFoundError
	return errors.As(err, &notFound)
}

// RenderError captures interpolation engine metadata alongside the
// originating error.
type RenderError struct {
	Engine   string
	Template string
	Expr     string
	Err      error
}

func (e *RenderError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("localizer: %s interpolator %s: %v", e.Engine, describeExpression(e.Expr), e.Err)
}

func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func describeExpression(expr string) string {
	if expr == "" {
		return "expr=<empty>"
	}
	return fmt.Sprintf("expr=%q", expr)
}

func wrapRenderError(engine, template, expr string, err error) error {
	if err == nil {
		return nil
	}

	var renderErr *RenderError
	if errors.As(err, &renderErr) {
		if renderErr.Engine == "" {
			renderErr.Engine = engine
		}
		if renderErr.Template == "" {
			renderErr.Template = template
		}
		if renderErr.Expr == "" {
			renderErr.Expr = expr
		}
		return renderErr
	}

	return &RenderError{
		Engine:   engine,
		Template: template,
		Expr:     expr,
		Err:      err,
	}
}
