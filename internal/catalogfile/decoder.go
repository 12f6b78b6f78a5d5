// Package catalogfile converts raw catalog documents (TOML or JSON) into the
// flat key→value entries a string catalog stores, flattening nested tables
// into dot-separated keys.
package catalogfile

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Format identifies the encoding of a catalog payload.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Context carries identifiers tied to a catalog payload.
type Context struct {
	Source string
	Format Format
}

// PreHook lets callers mutate or normalise the raw document before
// flattening.
type PreHook func(Context, map[string]any) (map[string]any, error)

// PostHook lets callers adjust or validate the flattened entries.
type PostHook func(Context, map[string]string) error

// DecoderOption configures a Decoder instance.
type DecoderOption func(*Decoder)

// Decoder converts catalog payloads into flat string entries.
type Decoder struct {
	preHooks  []PreHook
	postHooks []PostHook
}

// WithPreHook applies hook prior to flattening.
func WithPreHook(hook PreHook) DecoderOption {
	return func(d *Decoder) {
		d.preHooks = append(d.preHooks, hook)
	}
}

// WithPostHook applies hook after flattening completes.
func WithPostHook(hook PostHook) DecoderOption {
	return func(d *Decoder) {
		d.postHooks = append(d.postHooks, hook)
	}
}

// NewDecoder constructs a Decoder with the supplied options.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Decode parses payload per ctx.Format (TOML when unset) and flattens the
// document into dot-separated keys.
func (d *Decoder) Decode(ctx Context, payload []byte) (map[string]string, error) {
	raw := map[string]any{}
	switch ctx.Format {
	case FormatJSON:
		if err := json.Unmarshal(payload, &raw); err != nil {
			return nil, fmt.Errorf("catalogfile: decode %s: %w", ctx.Source, err)
		}
	case FormatTOML, "":
		if err := toml.Unmarshal(payload, &raw); err != nil {
			return nil, fmt.Errorf("catalogfile: decode %s: %w", ctx.Source, err)
		}
	default:
		return nil, fmt.Errorf("catalogfile: unsupported format %q for %s", ctx.Format, ctx.Source)
	}

	for _, hook := range d.preHooks {
		if hook == nil {
			continue
		}
		mutated, err := hook(ctx, raw)
		if err != nil {
			return nil, fmt.Errorf("catalogfile: pre hook for %s: %w", ctx.Source, err)
		}
		if mutated != nil {
			raw = mutated
		}
	}

	entries := map[string]string{}
	if err := flatten(ctx, raw, "", entries); err != nil {
		return nil, err
	}

	for _, hook := range d.postHooks {
		if hook == nil {
			continue
		}
		if err := hook(ctx, entries); err != nil {
			return nil, fmt.Errorf("catalogfile: post hook for %s: %w", ctx.Source, err)
		}
	}
	return entries, nil
}

func flatten(ctx Context, node map[string]any, prefix string, out map[string]string) error {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			if err := flatten(ctx, v, full, out); err != nil {
				return err
			}
		case string:
			out[full] = v
		case bool, float64, int, int64, uint64, json.Number:
			out[full] = fmt.Sprintf("%v", v)
		default:
			return fmt.Errorf("catalogfile: %s: unsupported value for key %q (%T)", ctx.Source, full, value)
		}
	}
	return nil
}
