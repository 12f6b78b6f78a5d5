package catalog

import (
	"context"
	"errors"
	"sort"
	"time"
)

var ErrETagMismatch = errors.New("catalog: etag mismatch")

// Variant identifies one locale/style combination of a catalog. The zero
// value is the locale-less, style-less default variant.
type Variant struct {
	Locale string
	Style  string
}

// Catalog stores string resources keyed by lookup key for each variant.
// Catalogs are assembled at configuration time; once shared with loaders
// they must be treated as immutable.
type Catalog struct {
	entries map[Variant]map[string]string
}

// New constructs an empty catalog.
func New() *Catalog {
	return &Catalog{entries: map[Variant]map[string]string{}}
}

// Add stores value under key for the given variant, replacing any previous
// entry.
func (c *Catalog) Add(v Variant, key, value string) *Catalog {
	if key == "" {
		return c
	}
	if c.entries == nil {
		c.entries = map[Variant]map[string]string{}
	}
	bucket := c.entries[v]
	if bucket == nil {
		bucket = map[string]string{}
		c.entries[v] = bucket
	}
	bucket[key] = value
	return c
}

// AddAll stores every entry for the given variant.
func (c *Catalog) AddAll(v Variant, entries map[string]string) *Catalog {
	for key, value := range entries {
		c.Add(v, key, value)
	}
	return c
}

// Lookup returns the value stored under key for exactly the given variant.
// Fallback across variants belongs to loaders, not the catalog.
func (c *Catalog) Lookup(v Variant, key string) (string, bool) {
	if c == nil || c.entries == nil {
		return "", false
	}
	bucket, ok := c.entries[v]
	if !ok {
		return "", false
	}
	value, ok := bucket[key]
	return value, ok
}

// Variants returns the variants with at least one entry, sorted by locale
// then style for deterministic reporting.
func (c *Catalog) Variants() []Variant {
	if c == nil || len(c.entries) == 0 {
		return nil
	}
	variants := make([]Variant, 0, len(c.entries))
	for v := range c.entries {
		variants = append(variants, v)
	}
	sort.Slice(variants, func(i, j int) bool {
		if variants[i].Locale != variants[j].Locale {
			return variants[i].Locale < variants[j].Locale
		}
		return variants[i].Style < variants[j].Style
	})
	return variants
}

// Keys returns the keys stored for the given variant, sorted.
func (c *Catalog) Keys(v Variant) []string {
	if c == nil || c.entries == nil {
		return nil
	}
	bucket := c.entries[v]
	if len(bucket) == 0 {
		return nil
	}
	keys := make([]string, 0, len(bucket))
	for key := range bucket {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the total number of entries across all variants.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	total := 0
	for _, bucket := range c.entries {
		total += len(bucket)
	}
	return total
}

// Clone returns a deep copy detached from the original.
func (c *Catalog) Clone() *Catalog {
	clone := New()
	if c == nil {
		return clone
	}
	for v, bucket := range c.entries {
		clone.AddAll(v, bucket)
	}
	return clone
}

// Ref identifies one persisted catalog snapshot.
type Ref struct {
	Name string
}

// Meta is storage-owned metadata used for trace/audit and concurrency control.
type Meta struct {
	SnapshotID string            `json:"snapshot_id,omitempty"`
	ETag       string            `json:"etag,omitempty"`
	UpdatedAt  time.Time         `json:"updated_at,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// Store loads/saves one catalog snapshot for a single reference.
type Store interface {
	Load(ctx context.Context, ref Ref) (snapshot *Catalog, meta Meta, ok bool, err error)
	Save(ctx context.Context, ref Ref, snapshot *Catalog, meta Meta) (Meta, error)
}
