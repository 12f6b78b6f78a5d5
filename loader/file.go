package loader

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/goliatone/go-localizer/internal/catalogfile"
	"github.com/goliatone/go-localizer/pkg/catalog"
)

// NewFileLoader builds a memory loader from catalog files in fsys matching
// patterns (all .toml and .json files when none are given). File names carry
// the variant: messages.toml, messages.<locale>.toml, or
// messages.<locale>.<style>.toml; nested tables flatten into dot-separated
// keys.
func NewFileLoader(fsys fs.FS, patterns ...string) (*MemoryLoader, error) {
	if len(patterns) == 0 {
		patterns = []string{"*.toml", "*.json"}
	}
	cat := catalog.New()
	dec := catalogfile.NewDecoder()

	for _, pattern := range patterns {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, file := range matches {
			variant, format, err := parseCatalogFilename(file)
			if err != nil {
				return nil, err
			}
			payload, err := fs.ReadFile(fsys, file)
			if err != nil {
				return nil, fmt.Errorf("read catalog file %s: %w", file, err)
			}
			entries, err := dec.Decode(catalogfile.Context{Source: file, Format: format}, payload)
			if err != nil {
				return nil, err
			}
			cat.AddAll(variant, entries)
		}
	}
	return NewMemoryLoader(cat), nil
}

// parseCatalogFilename extracts the variant and payload format from names of
// the form <name>[.<locale>[.<style>]].<ext>.
func parseCatalogFilename(file string) (catalog.Variant, catalogfile.Format, error) {
	base := path.Base(file)
	ext := path.Ext(base)

	var format catalogfile.Format
	switch ext {
	case ".toml":
		format = catalogfile.FormatTOML
	case ".json":
		format = catalogfile.FormatJSON
	default:
		return catalog.Variant{}, "", fmt.Errorf("unsupported catalog file %s", file)
	}

	segments := strings.Split(strings.TrimSuffix(base, ext), ".")
	variant := catalog.Variant{}
	if len(segments) > 1 {
		variant.Locale = segments[1]
	}
	if len(segments) > 2 {
		variant.Style = segments[2]
	}
	return variant, format, nil
}
