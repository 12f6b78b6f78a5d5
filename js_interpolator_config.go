package localizer

type jsInterpolatorConfig struct {
	cache    ProgramCache
	registry *FunctionRegistry
}

// JSInterpolatorOption configures the JS interpolator.
type JSInterpolatorOption func(*jsInterpolatorConfig)

// JSWithProgramCache applies a ProgramCache to the JS interpolator.
func JSWithProgramCache(cache ProgramCache) JSInterpolatorOption {
	return func(cfg *jsInterpolatorConfig) {
		cfg.cache = cache
	}
}

// JSWithFunctionRegistry applies a FunctionRegistry to the JS interpolator.
func JSWithFunctionRegistry(registry *FunctionRegistry) JSInterpolatorOption {
	return func(cfg *jsInterpolatorConfig) {
		if registry == nil {
			return
		}
		cfg.registry = registry.Clone()
	}
}

func applyJSInterpolatorOptions(opts []JSInterpolatorOption) jsInterpolatorConfig {
	cfg := jsInterpolatorConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
