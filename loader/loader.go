// Package loader provides Loader implementations for the localizer chain:
// in-memory catalogs, store-backed catalogs, go-i18n bundles, catalog files,
// and PostgreSQL tables. All of them apply the same internal fallback,
// loosening locale and style progressively before reporting a miss.
package loader

import (
	"golang.org/x/text/language"

	"github.com/goliatone/go-localizer/pkg/catalog"
)

// Candidates returns the variant lookup order for a locale/style pair, from
// most to least specific: exact locale with style, base language with style,
// any locale with style, then the same sequence style-less.
func Candidates(locale, style string) []catalog.Variant {
	locales := []string{}
	if locale != "" {
		locales = append(locales, locale)
		if base := baseLanguage(locale); base != "" && base != locale {
			locales = append(locales, base)
		}
	}
	locales = append(locales, "")

	variants := make([]catalog.Variant, 0, len(locales)*2)
	if style != "" {
		for _, loc := range locales {
			variants = append(variants, catalog.Variant{Locale: loc, Style: style})
		}
	}
	for _, loc := range locales {
		variants = append(variants, catalog.Variant{Locale: loc})
	}
	return variants
}

func baseLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}
