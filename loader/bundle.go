package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	localizer "github.com/goliatone/go-localizer"
)

// BundleLoader serves lookups from a go-i18n message bundle. Locale fallback
// is delegated to go-i18n's matcher; style variants are addressed as
// "<style>.<key>" message IDs before falling back to the bare key.
type BundleLoader struct {
	bundle *i18n.Bundle
}

var _ localizer.Loader = (*BundleLoader)(nil)

// NewBundleLoader wraps an already populated bundle.
func NewBundleLoader(bundle *i18n.Bundle) *BundleLoader {
	return &BundleLoader{bundle: bundle}
}

// NewBundleLoaderFS builds a bundle from message files in fsys (TOML or
// JSON), using defaultLocale as the final fallback language.
func NewBundleLoaderFS(fsys fs.FS, defaultLocale string, files ...string) (*BundleLoader, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(fsys, file); err != nil {
			return nil, fmt.Errorf("load message file %s: %w", file, err)
		}
	}
	return &BundleLoader{bundle: bundle}, nil
}

// Name identifies the loader in logs and traces.
func (l *BundleLoader) Name() string {
	return "bundle"
}

// Load localizes the key for the query locale, treating go-i18n's
// message-not-found as an ordinary miss.
func (l *BundleLoader) Load(_ context.Context, q localizer.Query) (string, bool, error) {
	langs := []string{}
	if q.Locale != "" {
		langs = append(langs, q.Locale)
	}
	loc := i18n.NewLocalizer(l.bundle, langs...)

	for _, id := range messageIDs(q.Key, q.Style) {
		msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
		if err != nil {
			if isMessageNotFound(err) {
				continue
			}
			return "", false, fmt.Errorf("localize %s: %w", id, err)
		}
		return msg, true, nil
	}
	return "", false, nil
}

func messageIDs(key, style string) []string {
	if style == "" {
		return []string{key}
	}
	return []string{style + "." + key, key}
}

func isMessageNotFound(err error) bool {
	var notFound *i18n.MessageNotFoundErr
	return errors.As(err, &notFound)
}
