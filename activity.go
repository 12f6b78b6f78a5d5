package localizer

import (
	"context"

	"github.com/goliatone/go-localizer/pkg/activity"
)

// WithActivityHooks attaches activity hooks notified on resolution hits and
// misses. Hooks are cloned and nil entries dropped to preserve immutability.
func WithActivityHooks(hooks activity.Hooks) Option {
	normalized := cloneActivityHooks(hooks)
	return func(cfg *localizerConfig) {
		cfg.activityHooks = normalized
	}
}

// ActivityHooks returns a cloned slice of activity hooks configured on the
// Localizer. The returned slice can be safely mutated by the caller.
func (l *Localizer) ActivityHooks() activity.Hooks {
	if l == nil {
		return nil
	}
	return cloneActivityHooks(l.cfg.activityHooks)
}

// emitResolved notifies hooks about a hit. Hook failures never alter the
// resolution result.
func (l *Localizer) emitResolved(ctx context.Context, q Query, loader string) {
	if !l.cfg.activityHooks.Enabled() {
		return
	}
	_ = l.cfg.activityHooks.Notify(ctx, activity.BuildStringResolvedEvent(activity.ResolutionEventInput{
		Key:    q.Key,
		Locale: q.Locale,
		Style:  q.Style,
		Loader: loader,
	}))
}

// emitMissing notifies hooks that no loader produced the key, before the
// policy decides the outcome.
func (l *Localizer) emitMissing(ctx context.Context, q Query) {
	if !l.cfg.activityHooks.Enabled() {
		return
	}
	_ = l.cfg.activityHooks.Notify(ctx, activity.BuildStringMissingEvent(activity.ResolutionEventInput{
		Key:    q.Key,
		Locale: q.Locale,
		Style:  q.Style,
	}))
}

func cloneActivityHooks(hooks activity.Hooks) activity.Hooks {
	if len(hooks) == 0 {
		return nil
	}
	normalized := make([]activity.Hook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		normalized = append(normalized, hook)
	}
	if len(normalized) == 0 {
		return nil
	}
	return activity.Hooks(normalized)
}
