package localizer

import (
	"fmt"
	"strings"
)

// renderTemplate scans template for ${...} placeholder expressions and
// substitutes each with the result of eval. A nil evaluation result leaves
// the placeholder text in place so unresolved variables stay visible; an
// unterminated placeholder is emitted verbatim.
func renderTemplate(template string, eval func(expr string) (any, error)) (string, error) {
	if !strings.Contains(template, "${") {
		return template, nil
	}
	var b strings.Builder
	rest := template
	for {
		idx := strings.Index(rest, "${")
		if idx < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:idx])
		body, tail, ok := splitPlaceholder(rest[idx+2:])
		if !ok {
			b.WriteString(rest[idx:])
			return b.String(), nil
		}
		value, err := eval(body)
		if err != nil {
			return "", err
		}
		if value == nil {
			b.WriteString("${")
			b.WriteString(body)
			b.WriteString("}")
		} else {
			fmt.Fprintf(&b, "%v", value)
		}
		rest = tail
	}
}

// splitPlaceholder returns the expression body up to the matching close
// brace, tracking nesting so engine literals like {"a": 1} survive.
func splitPlaceholder(s string) (body, tail string, ok bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return s[:i], s[i+1:], true
			}
			depth--
		}
	}
	return "", "", false
}

// dataAsMap normalizes the interpolation data object: map keys become
// top-level variables in every engine, any other value binds to "data".
func dataAsMap(data any) map[string]any {
	if data == nil {
		return map[string]any{}
	}
	if m, ok := data.(map[string]any); ok {
		return m
	}
	return map[string]any{"data": data}
}
