package localizer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Localizer resolves symbolic lookup keys into locale- and style-specific
// strings by consulting an ordered loader chain, interpolating placeholders
// on a hit, and applying the missing-resource policy on exhaustion. One
// instance is shared per application and handed to callers explicitly; it is
// safe for concurrent use.
type Localizer struct {
	mu    sync.Mutex
	state atomic.Pointer[snapshot]
	cfg   localizerConfig
}

// New constructs a Localizer from the supplied options.
func New(opts ...Option) *Localizer {
	cfg := applyOptions(opts)
	if cfg.interpolator == nil {
		exprOpts := []ExprInterpolatorOption{}
		if cfg.programCache != nil {
			exprOpts = append(exprOpts, ExprWithProgramCache(cfg.programCache))
		}
		if cfg.functions != nil {
			exprOpts = append(exprOpts, ExprWithFunctionRegistry(cfg.functions))
		}
		cfg.interpolator = NewExprInterpolator(exprOpts...)
	}
	l := &Localizer{cfg: cfg}
	l.state.Store(&snapshot{loaders: cfg.loaders, policy: cfg.policy})
	return l
}

// Get resolves key with no requester, data, or default.
func (l *Localizer) Get(ctx context.Context, key string) (string, error) {
	return l.Resolve(ctx, Request{Key: key})
}

// GetFor resolves key for requester, obtaining locale and style from the
// requester's session context when available.
func (l *Localizer) GetFor(ctx context.Context, requester any, key string) (string, error) {
	return l.Resolve(ctx, Request{Key: key, Requester: requester})
}

// GetWithData resolves key and interpolates placeholders against data.
func (l *Localizer) GetWithData(ctx context.Context, key string, data any) (string, error) {
	return l.Resolve(ctx, Request{Key: key, Data: data})
}

// Resolve runs a single resolution call. Loaders are consulted in
// registration order and the first hit wins; later loaders are never
// queried. A hit is interpolated against req.Data unless data is absent, in
// which case the loaded string is returned verbatim. On exhaustion the
// policy decides between the supplied default, a ResourceNotFoundError, and
// the sentinel warning string, in that fixed order.
func (l *Localizer) Resolve(ctx context.Context, req Request) (string, error) {
	value, _, err := l.resolve(ctx, req, nil)
	return value, err
}

// ResolveTrace behaves like Resolve while recording one attempt per loader
// consulted, for diagnostics and missing-translation reports.
func (l *Localizer) ResolveTrace(ctx context.Context, req Request) (string, Trace, error) {
	trace := &Trace{}
	value, _, err := l.resolve(ctx, req, trace)
	return value, *trace, err
}

func (l *Localizer) resolve(ctx context.Context, req Request, trace *Trace) (string, bool, error) {
	if req.Key == "" {
		return "", false, fmt.Errorf("localizer: key must not be empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	snap := l.state.Load()
	req = req.withRequesterContext()
	q := req.query()
	if trace != nil {
		trace.Key = q.Key
		trace.Locale = q.Locale
		trace.Style = q.Style
	}

	start := time.Now()
	for _, loader := range snap.loaders {
		value, found, err := loader.Load(ctx, q)
		if trace != nil {
			trace.Attempts = append(trace.Attempts, Attempt{
				Loader: loaderName(loader),
				Found:  found,
				Value:  value,
			})
		}
		if err != nil {
			l.logResolve(q, loaderName(loader), false, time.Since(start), err)
			return "", false, err
		}
		if !found {
			continue
		}
		rendered, renderErr := l.render(value, req.Data)
		l.logResolve(q, loaderName(loader), true, time.Since(start), renderErr)
		if renderErr != nil {
			return "", false, renderErr
		}
		l.emitResolved(ctx, q, loaderName(loader))
		return rendered, true, nil
	}

	l.emitMissing(ctx, q)
	if snap.policy.UseDefaultOnMissing && req.Default != nil {
		l.logResolve(q, "", false, time.Since(start), nil)
		return *req.Default, false, nil
	}
	if snap.policy.ThrowOnMissing {
		err := &ResourceNotFoundError{Key: req.Key}
		l.logResolve(q, "", false, time.Since(start), err)
		return "", false, err
	}
	l.logResolve(q, "", false, time.Since(start), nil)
	return missingWarning(req.Key), false, nil
}

// render applies the configured interpolation engine. Absent data
// short-circuits so the loaded string passes through unchanged.
func (l *Localizer) render(value string, data any) (string, error) {
	if data == nil {
		return value, nil
	}
	return l.cfg.interpolator.Render(value, data)
}

func (l *Localizer) logResolve(q Query, loader string, hit bool, duration time.Duration, err error) {
	l.logger().LogResolution(ResolveLogEvent{
		Key:      q.Key,
		Locale:   q.Locale,
		Style:    q.Style,
		Loader:   loader,
		Hit:      hit,
		Duration: duration,
		Err:      err,
	})
}

func (l *Localizer) logger() ResolveLogger {
	if l.cfg.logger != nil {
		return l.cfg.logger
	}
	return noopResolveLogger{}
}

// Interpolator exposes the configured interpolation engine.
func (l *Localizer) Interpolator() Interpolator {
	return l.cfg.interpolator
}

// loaderName reports a stable identifier for logging and trace output.
// Loaders may implement Name() string; the dynamic type is used otherwise.
func loaderName(loader Loader) string {
	if loader == nil {
		return "unknown"
	}
	if named, ok := loader.(interface{ Name() string }); ok {
		if name := named.Name(); name != "" {
			return name
		}
	}
	return fmt.Sprintf("%T", loader)
}

func missingWarning(key string) string {
	return fmt.Sprintf("[Warning: String resource for '%s' not found]", key)
}
