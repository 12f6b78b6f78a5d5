package loader

import (
	"context"
	"fmt"

	localizer "github.com/goliatone/go-localizer"
	"github.com/goliatone/go-localizer/pkg/catalog"
)

// MemoryLoader serves lookups from an in-memory catalog. The catalog must
// not be mutated once the loader is registered; swap in a StoreLoader when
// runtime updates are needed.
type MemoryLoader struct {
	catalog *catalog.Catalog
}

var _ localizer.Loader = (*MemoryLoader)(nil)

// NewMemoryLoader constructs a loader over cat.
func NewMemoryLoader(cat *catalog.Catalog) *MemoryLoader {
	return &MemoryLoader{catalog: cat}
}

// Name identifies the loader in logs and traces.
func (l *MemoryLoader) Name() string {
	return "memory"
}

// Load walks the variant candidates from most to least specific.
func (l *MemoryLoader) Load(_ context.Context, q localizer.Query) (string, bool, error) {
	for _, v := range Candidates(q.Locale, q.Style) {
		if value, ok := l.catalog.Lookup(v, q.Key); ok {
			return value, true, nil
		}
	}
	return "", false, nil
}

// StoreLoader fetches its catalog snapshot from a catalog.Store on every
// lookup, so catalogs can be replaced at runtime without rebuilding the
// loader chain.
type StoreLoader struct {
	store catalog.Store
	ref   catalog.Ref
}

var _ localizer.Loader = (*StoreLoader)(nil)

// NewStoreLoader constructs a loader reading the snapshot registered under
// name in store.
func NewStoreLoader(store catalog.Store, name string) *StoreLoader {
	return &StoreLoader{store: store, ref: catalog.Ref{Name: name}}
}

// Name identifies the loader in logs and traces.
func (l *StoreLoader) Name() string {
	return "store:" + l.ref.Name
}

// Load reads the current snapshot and walks the variant candidates.
func (l *StoreLoader) Load(ctx context.Context, q localizer.Query) (string, bool, error) {
	snapshot, _, ok, err := l.store.Load(ctx, l.ref)
	if err != nil {
		return "", false, fmt.Errorf("load catalog %q: %w", l.ref.Name, err)
	}
	if !ok {
		return "", false, nil
	}
	for _, v := range Candidates(q.Locale, q.Style) {
		if value, found := snapshot.Lookup(v, q.Key); found {
			return value, true, nil
		}
	}
	return "", false, nil
}
