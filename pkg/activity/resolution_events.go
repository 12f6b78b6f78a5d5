package activity

import (
	"strings"
	"time"
)

// ResolutionEventInput describes the common fields for string resolution
// lifecycle events.
type ResolutionEventInput struct {
	ActorID    string
	UserID     string
	TenantID   string
	Channel    string
	Recipients []string
	Metadata   map[string]any
	Key        string
	Locale     string
	Style      string
	Loader     string
	OccurredAt time.Time
}

// BuildStringResolvedEvent constructs a normalized activity event for a
// resolution hit.
func BuildStringResolvedEvent(input ResolutionEventInput) Event {
	return buildResolutionEvent("string.resolved", input)
}

// BuildStringMissingEvent constructs a normalized activity event for a key no
// loader could supply. Consumers typically feed these into missing-translation
// reports.
func BuildStringMissingEvent(input ResolutionEventInput) Event {
	return buildResolutionEvent("string.missing", input)
}

func buildResolutionEvent(verb string, input ResolutionEventInput) Event {
	metadata := cloneMap(input.Metadata)
	if input.Locale != "" {
		metadata = ensureMetadata(metadata)
		metadata["locale"] = input.Locale
	}
	if input.Style != "" {
		metadata = ensureMetadata(metadata)
		metadata["style"] = input.Style
	}
	if input.Loader != "" {
		metadata = ensureMetadata(metadata)
		metadata["loader"] = input.Loader
	}

	recipients := input.Recipients
	if len(recipients) > 0 {
		recipients = append([]string{}, input.Recipients...)
	}

	objectID := strings.TrimSpace(input.Key)
	if objectID == "" {
		objectID = "string_resource"
	}

	return Event{
		Verb:       verb,
		ActorID:    strings.TrimSpace(input.ActorID),
		UserID:     strings.TrimSpace(input.UserID),
		TenantID:   strings.TrimSpace(input.TenantID),
		ObjectType: "string_resource",
		ObjectID:   objectID,
		Channel:    strings.TrimSpace(input.Channel),
		Recipients: recipients,
		Metadata:   metadata,
		OccurredAt: input.OccurredAt,
	}
}

func ensureMetadata(meta map[string]any) map[string]any {
	if meta == nil {
		return map[string]any{}
	}
	return meta
}
