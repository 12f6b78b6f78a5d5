package catalog

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is a minimal in-memory Store implementation intended for tests
// and examples. It uses Ref.Name as its deterministic key and makes no
// persistence assumptions beyond that.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryRecord
}

type memoryRecord struct {
	snapshot *Catalog
	meta     Meta
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string]memoryRecord{}}
}

func (s *MemoryStore) Load(_ context.Context, ref Ref) (*Catalog, Meta, bool, error) {
	if ref.Name == "" {
		return nil, Meta{}, false, fmt.Errorf("catalog: ref name is required")
	}

	s.mu.RLock()
	record, ok := s.records[ref.Name]
	s.mu.RUnlock()
	if !ok {
		return nil, Meta{}, false, nil
	}
	return record.snapshot.Clone(), cloneMeta(record.meta), true, nil
}

func (s *MemoryStore) Save(_ context.Context, ref Ref, snapshot *Catalog, meta Meta) (Meta, error) {
	if ref.Name == "" {
		return Meta{}, fmt.Errorf("catalog: ref name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if meta.ETag != "" {
		if existing, ok := s.records[ref.Name]; ok && existing.meta.ETag != "" && existing.meta.ETag != meta.ETag {
			return Meta{}, ErrETagMismatch
		}
	}
	s.records[ref.Name] = memoryRecord{snapshot: snapshot.Clone(), meta: cloneMeta(meta)}
	return cloneMeta(meta), nil
}

func cloneMeta(meta Meta) Meta {
	out := meta
	if meta.Extra == nil {
		return out
	}
	out.Extra = make(map[string]string, len(meta.Extra))
	for k, v := range meta.Extra {
		out.Extra[k] = v
	}
	return out
}
