package localizer

import (
	"context"

	"github.com/goliatone/go-localizer/pkg/activity"
)

// Query carries the lookup tuple handed to each loader in the chain.
type Query struct {
	Key       string
	Requester any
	Locale    string
	Style     string
}

// Loader supplies string resources for lookup queries. Implementations may
// apply their own internal fallback (locale → language-only → style-less)
// but must report an ordinary miss as found=false with a nil error; a non-nil
// error is treated as a collaborator failure and propagated unchanged.
// Loaders are shared across concurrent resolutions and must be safe for
// concurrent use.
type Loader interface {
	Load(ctx context.Context, q Query) (value string, found bool, err error)
}

// LoaderFunc adapts a plain function to Loader.
type LoaderFunc func(ctx context.Context, q Query) (string, bool, error)

// Load implements Loader.
func (f LoaderFunc) Load(ctx context.Context, q Query) (string, bool, error) {
	if f == nil {
		return "", false, nil
	}
	return f(ctx, q)
}

// Interpolator substitutes placeholder expressions in a found string using
// values derived from a caller-supplied data object. Implementations must be
// safe for concurrent use.
type Interpolator interface {
	Render(template string, data any) (string, error)
}

// Request names the optional inputs of a single resolution call. Key is the
// only required field. A nil Default means "no default supplied"; an empty
// string default remains a usable value.
type Request struct {
	Key       string
	Requester any
	Data      any
	Locale    string
	Style     string
	Default   *string
}

// Default wraps a literal default value for Request.Default.
func Default(value string) *string {
	return &value
}

// withRequesterContext fills Locale and Style from the requester's session
// context when they were not supplied explicitly. Runs once per resolution,
// before loader iteration.
func (req Request) withRequesterContext() Request {
	if req.Requester == nil {
		return req
	}
	if req.Locale == "" {
		if s, ok := req.Requester.(interface{ Locale() string }); ok {
			req.Locale = s.Locale()
		}
	}
	if req.Style == "" {
		if s, ok := req.Requester.(interface{ Style() string }); ok {
			req.Style = s.Style()
		}
	}
	return req
}

func (req Request) query() Query {
	return Query{
		Key:       req.Key,
		Requester: req.Requester,
		Locale:    req.Locale,
		Style:     req.Style,
	}
}

// Option configures a Localizer at construction time.
type Option func(*localizerConfig)

type localizerConfig struct {
	loaders       []Loader
	policy        Policy
	interpolator  Interpolator
	programCache  ProgramCache
	functions     *FunctionRegistry
	logger        ResolveLogger
	activityHooks activity.Hooks
}

func applyOptions(opts []Option) localizerConfig {
	cfg := localizerConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithLoaders registers the loader chain in priority order. Nil entries are
// dropped; the remaining registration order is preserved exactly.
func WithLoaders(loaders ...Loader) Option {
	return func(cfg *localizerConfig) {
		cfg.loaders = cloneLoaders(loaders)
	}
}

// WithPolicy configures the missing-resource policy.
func WithPolicy(policy Policy) Option {
	return func(cfg *localizerConfig) {
		cfg.policy = policy
	}
}

// WithInterpolator configures the interpolation engine applied to found
// strings. Defaults to the expr engine when unset.
func WithInterpolator(engine Interpolator) Option {
	return func(cfg *localizerConfig) {
		cfg.interpolator = engine
	}
}

func cloneLoaders(loaders []Loader) []Loader {
	if len(loaders) == 0 {
		return nil
	}
	out := make([]Loader, 0, len(loaders))
	for _, loader := range loaders {
		if loader == nil {
			continue
		}
		out = append(out, loader)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
