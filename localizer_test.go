package localizer

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type staticLoader struct {
	name    string
	entries map[string]string
	calls   int
}

func (l *staticLoader) Name() string {
	return l.name
}

func (l *staticLoader) Load(_ context.Context, q Query) (string, bool, error) {
	l.calls++
	value, found := l.entries[q.Key]
	return value, found, nil
}

type failingLoader struct {
	err error
}

func (l *failingLoader) Name() string {
	return "failing"
}

func (l *failingLoader) Load(context.Context, Query) (string, bool, error) {
	return "", false, l.err
}

type session struct {
	locale string
	style  string
}

func (s session) Locale() string {
	return s.locale
}

func (s session) Style() string {
	return s.style
}

func TestResolveFirstMatchWins(t *testing.T) {
	first := &staticLoader{name: "first", entries: map[string]string{"greeting": "Hello"}}
	second := &staticLoader{name: "second", entries: map[string]string{"greeting": "Hi"}}
	l := New(WithLoaders(first, second))

	value, err := l.Get(context.Background(), "greeting")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "Hello" {
		t.Fatalf("expected first loader to win, got %q", value)
	}
	if second.calls != 0 {
		t.Fatalf("expected second loader to never be queried, got %d calls", second.calls)
	}
}

func TestResolveFallsThroughMisses(t *testing.T) {
	first := &staticLoader{name: "first", entries: map[string]string{}}
	second := &staticLoader{name: "second", entries: map[string]string{"greeting": "Hi"}}
	l := New(WithLoaders(first, second))

	value, err := l.Get(context.Background(), "greeting")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "Hi" {
		t.Fatalf("expected second loader value, got %q", value)
	}
	if first.calls != 1 {
		t.Fatalf("expected first loader consulted once, got %d", first.calls)
	}
}

func TestResolveEmptyStringIsAHit(t *testing.T) {
	first := &staticLoader{name: "first", entries: map[string]string{"blank": ""}}
	second := &staticLoader{name: "second", entries: map[string]string{"blank": "not blank"}}
	l := New(WithLoaders(first, second))

	value, err := l.Get(context.Background(), "blank")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "" {
		t.Fatalf("expected empty hit to be returned as-is, got %q", value)
	}
	if second.calls != 0 {
		t.Fatalf("empty hit must terminate the chain, second loader called %d times", second.calls)
	}
}

func TestResolveEmptyKeyRejected(t *testing.T) {
	l := New()
	if _, err := l.Get(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestResolveMissingSentinel(t *testing.T) {
	l := New(WithLoaders(&staticLoader{name: "empty", entries: map[string]string{}}))

	value, err := l.Get(context.Background(), "absent.key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[Warning: String resource for 'absent.key' not found]"
	if value != want {
		t.Fatalf("expected sentinel %q, got %q", want, value)
	}
}

func TestResolveMissingThrow(t *testing.T) {
	l := New(WithPolicy(Policy{ThrowOnMissing: true}))

	_, err := l.Get(context.Background(), "absent.key")
	if err == nil {
		t.Fatalf("expected resource-not-found error")
	}
	if !IsNotFound(err) {
		t.Fatalf("expected IsNotFound to match, got %v", err)
	}
	var notFound *ResourceNotFoundError
	if !errors.As(err, &notFound) || notFound.Key != "absent.key" {
		t.Fatalf("expected error to carry the key, got %v", err)
	}
}

func TestResolveMissingDefaultBeatsThrow(t *testing.T) {
	l := New(WithPolicy(Policy{UseDefaultOnMissing: true, ThrowOnMissing: true}))

	value, err := l.Resolve(context.Background(), Request{Key: "absent.key", Default: Default("fallback")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "fallback" {
		t.Fatalf("expected supplied default, got %q", value)
	}
}

func TestResolveMissingDefaultRequiresValue(t *testing.T) {
	l := New(WithPolicy(Policy{UseDefaultOnMissing: true, ThrowOnMissing: true}))

	_, err := l.Resolve(context.Background(), Request{Key: "absent.key"})
	if !IsNotFound(err) {
		t.Fatalf("expected throw when no default was supplied, got %v", err)
	}
}

func TestResolveMissingEmptyDefaultIsUsable(t *testing.T) {
	l := New(WithPolicy(Policy{UseDefaultOnMissing: true, ThrowOnMissing: true}))

	value, err := l.Resolve(context.Background(), Request{Key: "absent.key", Default: Default("")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "" {
		t.Fatalf("expected empty default, got %q", value)
	}
}

func TestResolveLoaderErrorPropagates(t *testing.T) {
	errDown := errors.New("backend down")
	l := New(WithLoaders(
		&failingLoader{err: errDown},
		&staticLoader{name: "second", entries: map[string]string{"greeting": "Hi"}},
	))

	_, err := l.Get(context.Background(), "greeting")
	if !errors.Is(err, errDown) {
		t.Fatalf("expected loader error to propagate unchanged, got %v", err)
	}
}

func TestResolveInterpolatesData(t *testing.T) {
	l := New(WithLoaders(&staticLoader{
		name:    "memory",
		entries: map[string]string{"greeting": "Hello ${name}"},
	}))

	value, err := l.GetWithData(context.Background(), "greeting", map[string]any{"name": "Ann"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "Hello Ann" {
		t.Fatalf("expected interpolated greeting, got %q", value)
	}
}

func TestResolveNilDataLeavesPlaceholders(t *testing.T) {
	l := New(WithLoaders(&staticLoader{
		name:    "memory",
		entries: map[string]string{"greeting": "Hello ${name}"},
	}))

	value, err := l.Get(context.Background(), "greeting")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "Hello ${name}" {
		t.Fatalf("expected verbatim template without data, got %q", value)
	}
}

func TestResolveRenderErrorWrapped(t *testing.T) {
	l := New(WithLoaders(&staticLoader{
		name:    "memory",
		entries: map[string]string{"broken": "value ${1 +}"},
	}))

	_, err := l.GetWithData(context.Background(), "broken", map[string]any{"name": "Ann"})
	if err == nil {
		t.Fatalf("expected render error")
	}
	var renderErr *RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("expected RenderError, got %T: %v", err, err)
	}
	if renderErr.Engine != "expr" {
		t.Fatalf("expected expr engine in error, got %q", renderErr.Engine)
	}
}

func TestGetForUsesRequesterSession(t *testing.T) {
	var seen Query
	capture := LoaderFunc(func(_ context.Context, q Query) (string, bool, error) {
		seen = q
		return "ok", true, nil
	})
	l := New(WithLoaders(capture))

	if _, err := l.GetFor(context.Background(), session{locale: "fr-FR", style: "formal"}, "greeting"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen.Locale != "fr-FR" || seen.Style != "formal" {
		t.Fatalf("expected session locale/style to fill the query, got %+v", seen)
	}
}

func TestResolveExplicitLocaleOverridesRequester(t *testing.T) {
	var seen Query
	capture := LoaderFunc(func(_ context.Context, q Query) (string, bool, error) {
		seen = q
		return "ok", true, nil
	})
	l := New(WithLoaders(capture))

	_, err := l.Resolve(context.Background(), Request{
		Key:       "greeting",
		Requester: session{locale: "fr-FR", style: "formal"},
		Locale:    "de-DE",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen.Locale != "de-DE" {
		t.Fatalf("expected explicit locale to win, got %q", seen.Locale)
	}
	if seen.Style != "formal" {
		t.Fatalf("expected style still filled from session, got %q", seen.Style)
	}
}

func TestSetPolicyAffectsSubsequentCalls(t *testing.T) {
	l := New()

	value, err := l.Get(context.Background(), "absent")
	if err != nil || !strings.HasPrefix(value, "[Warning:") {
		t.Fatalf("expected sentinel before reconfiguration, got %q err=%v", value, err)
	}

	l.SetPolicy(Policy{ThrowOnMissing: true})
	if _, err := l.Get(context.Background(), "absent"); !IsNotFound(err) {
		t.Fatalf("expected throw after reconfiguration, got %v", err)
	}
	if got := l.Policy(); !got.ThrowOnMissing {
		t.Fatalf("expected Policy() to report the new policy, got %+v", got)
	}
}

func TestAddLoaderAppendsToChain(t *testing.T) {
	first := &staticLoader{name: "first", entries: map[string]string{}}
	l := New(WithLoaders(first))

	l.AddLoader(&staticLoader{name: "second", entries: map[string]string{"greeting": "Hi"}})
	if len(l.Loaders()) != 2 {
		t.Fatalf("expected two loaders, got %d", len(l.Loaders()))
	}

	value, err := l.Get(context.Background(), "greeting")
	if err != nil || value != "Hi" {
		t.Fatalf("expected appended loader to serve the key, got %q err=%v", value, err)
	}
}

func TestSetLoadersReplacesChain(t *testing.T) {
	l := New(WithLoaders(&staticLoader{name: "first", entries: map[string]string{"greeting": "old"}}))

	l.SetLoaders(&staticLoader{name: "replacement", entries: map[string]string{"greeting": "new"}})
	value, err := l.Get(context.Background(), "greeting")
	if err != nil || value != "new" {
		t.Fatalf("expected replacement chain, got %q err=%v", value, err)
	}
}

func TestWithLoadersDropsNilEntries(t *testing.T) {
	l := New(WithLoaders(nil, &staticLoader{name: "only", entries: map[string]string{}}, nil))
	if len(l.Loaders()) != 1 {
		t.Fatalf("expected nil loaders dropped, got %d", len(l.Loaders()))
	}
}

func TestResolveLoggerObservesHitsAndMisses(t *testing.T) {
	events := []ResolveLogEvent{}
	l := New(
		WithLoaders(&staticLoader{name: "memory", entries: map[string]string{"greeting": "Hello"}}),
		WithResolveLogger(ResolveLoggerFunc(func(event ResolveLogEvent) {
			events = append(events, event)
		})),
	)

	if _, err := l.Get(context.Background(), "greeting"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.Get(context.Background(), "absent"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected two log events, got %d", len(events))
	}
	if !events[0].Hit || events[0].Loader != "memory" {
		t.Fatalf("expected hit event for memory loader, got %+v", events[0])
	}
	if events[1].Hit {
		t.Fatalf("expected miss event, got %+v", events[1])
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	l := New(WithLoaders(
		&staticLoader{name: "first", entries: map[string]string{"greeting": "Hello"}},
		&staticLoader{name: "second", entries: map[string]string{"greeting": "Hi"}},
	))

	for i := 0; i < 10; i++ {
		value, err := l.Get(context.Background(), "greeting")
		if err != nil || value != "Hello" {
			t.Fatalf("iteration %d: expected stable result, got %q err=%v", i, value, err)
		}
	}
}
