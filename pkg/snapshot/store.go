package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrETagMismatch = errors.New("snapshot: etag mismatch")

// Meta is store-owned metadata used for trace/audit and concurrency control.
type Meta struct {
	SnapshotID string    `json:"snapshot_id,omitempty"`
	ETag       string    `json:"etag,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

// Store loads and saves one registry snapshot per name.
type Store interface {
	Load(ctx context.Context, name string) (objects map[string]any, meta Meta, ok bool, err error)
	Save(ctx context.Context, name string, objects map[string]any, meta Meta) (Meta, error)
}

// MemoryStore is a minimal in-memory Store implementation intended for tests
// and examples. Snapshots live for the process lifetime only.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryRecord
}

type memoryRecord struct {
	objects map[string]any
	meta    Meta
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string]memoryRecord{}}
}

func (s *MemoryStore) Load(_ context.Context, name string) (map[string]any, Meta, bool, error) {
	if name == "" {
		return nil, Meta{}, false, fmt.Errorf("snapshot: name is required")
	}

	s.mu.RLock()
	record, ok := s.records[name]
	s.mu.RUnlock()
	if !ok {
		return nil, Meta{}, false, nil
	}
	return cloneObjects(record.objects), record.meta, true, nil
}

// Save stores objects under name. When meta carries an ETag it must match the
// stored one; a fresh snapshot ID is minted unless the caller supplies one.
func (s *MemoryStore) Save(_ context.Context, name string, objects map[string]any, meta Meta) (Meta, error) {
	if name == "" {
		return Meta{}, fmt.Errorf("snapshot: name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.records[name]; ok && meta.ETag != "" && existing.meta.ETag != "" && meta.ETag != existing.meta.ETag {
		return Meta{}, fmt.Errorf("%w: expected %q, got %q", ErrETagMismatch, meta.ETag, existing.meta.ETag)
	}

	saved := meta
	if saved.SnapshotID == "" {
		saved.SnapshotID = uuid.NewString()
	}
	if saved.ETag == "" {
		saved.ETag = uuid.NewString()
	}
	if saved.UpdatedAt.IsZero() {
		saved.UpdatedAt = time.Now()
	}

	s.records[name] = memoryRecord{objects: cloneObjects(objects), meta: saved}
	return saved, nil
}

func cloneObjects(objects map[string]any) map[string]any {
	if objects == nil {
		return nil
	}
	out := make(map[string]any, len(objects))
	for key, value := range objects {
		out[key] = value
	}
	return out
}
