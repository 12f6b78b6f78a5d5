package localizer

import "time"

// ResolveLogEvent describes one resolution attempt for logging.
type ResolveLogEvent struct {
	Key      string
	Locale   string
	Style    string
	Loader   string
	Hit      bool
	Duration time.Duration
	Err      error
}

// ResolveLogger records resolution events.
type ResolveLogger interface {
	LogResolution(ResolveLogEvent)
}

// ResolveLoggerFunc adapts a function to ResolveLogger.
type ResolveLoggerFunc func(ResolveLogEvent)

// LogResolution implements ResolveLogger.
func (f ResolveLoggerFunc) LogResolution(event ResolveLogEvent) {
	if f != nil {
		f(event)
	}
}

type noopResolveLogger struct{}

func (noopResolveLogger) LogResolution(ResolveLogEvent) {}

// WithResolveLogger attaches a resolution logger to the Localizer.
func WithResolveLogger(logger ResolveLogger) Option {
	return func(cfg *localizerConfig) {
		if logger == nil {
			cfg.logger = noopResolveLogger{}
			return
		}
		cfg.logger = logger
	}
}
