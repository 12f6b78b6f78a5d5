package localizer

import (
	"context"
	"testing"

	"github.com/goliatone/go-localizer/pkg/activity"
)

func TestActivityHooksObserveHitsAndMisses(t *testing.T) {
	capture := &activity.CaptureHook{}
	l := New(
		WithLoaders(&staticLoader{name: "memory", entries: map[string]string{"greeting": "Hello"}}),
		WithActivityHooks(activity.Hooks{capture}),
	)

	if _, err := l.Resolve(context.Background(), Request{Key: "greeting", Locale: "fr", Style: "formal"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.Get(context.Background(), "absent"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(capture.Events) != 2 {
		t.Fatalf("expected two events, got %d", len(capture.Events))
	}

	hit := capture.Events[0]
	if hit.Verb != "string.resolved" || hit.ObjectID != "greeting" {
		t.Fatalf("unexpected hit event: %+v", hit)
	}
	if hit.Metadata["locale"] != "fr" || hit.Metadata["style"] != "formal" || hit.Metadata["loader"] != "memory" {
		t.Fatalf("unexpected hit metadata: %+v", hit.Metadata)
	}

	miss := capture.Events[1]
	if miss.Verb != "string.missing" || miss.ObjectID != "absent" {
		t.Fatalf("unexpected miss event: %+v", miss)
	}
}

func TestActivityHookFailureDoesNotAlterResult(t *testing.T) {
	capture := &activity.CaptureHook{Err: context.DeadlineExceeded}
	l := New(
		WithLoaders(&staticLoader{name: "memory", entries: map[string]string{"greeting": "Hello"}}),
		WithActivityHooks(activity.Hooks{capture}),
	)

	value, err := l.Get(context.Background(), "greeting")
	if err != nil || value != "Hello" {
		t.Fatalf("expected resolution unaffected by hook error, got %q err=%v", value, err)
	}
}

func TestWithActivityHooksDropsNilEntries(t *testing.T) {
	capture := &activity.CaptureHook{}
	l := New(WithActivityHooks(activity.Hooks{nil, capture, nil}))

	hooks := l.ActivityHooks()
	if len(hooks) != 1 {
		t.Fatalf("expected nil hooks dropped, got %d", len(hooks))
	}
}

func TestActivityHooksAccessorReturnsCopy(t *testing.T) {
	capture := &activity.CaptureHook{}
	l := New(WithActivityHooks(activity.Hooks{capture}))

	hooks := l.ActivityHooks()
	hooks[0] = nil
	if again := l.ActivityHooks(); len(again) != 1 || again[0] == nil {
		t.Fatalf("expected internal hooks unaffected by caller mutation")
	}
}
