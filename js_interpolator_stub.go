//go:build !js_eval

package localizer

// NewJSInterpolator is unavailable without the js_eval build tag.
func NewJSInterpolator(opts ...JSInterpolatorOption) Interpolator {
	_ = applyJSInterpolatorOptions(opts)
	return nil
}

func jsInterpolatorAvailable() bool {
	return false
}
