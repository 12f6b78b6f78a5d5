package localizer

// ProgramCache stores compiled placeholder programs keyed by expression
// strings.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// WithProgramCache registers a program cache used by the default
// interpolation engine.
func WithProgramCache(cache ProgramCache) Option {
	return func(cfg *localizerConfig) {
		cfg.programCache = cache
	}
}
