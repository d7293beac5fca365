package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/okian/scorecard/internal/domain/model"
	"github.com/okian/scorecard/internal/domain/rubric"
	"github.com/okian/scorecard/pkg/metrics"
)

// MemStore is the in-memory Store implementation. Records are keyed by the
// lowercased, trimmed company name; the display name keeps its original
// casing. A single RWMutex guards every operation: operations are O(n)
// over small record counts, so finer locking buys nothing.
type MemStore struct {
	mu     sync.RWMutex
	rubric *rubric.Rubric
	byName map[string]model.Record
}

// NewMemStore constructs an empty store bound to a rubric.
func NewMemStore(r *rubric.Rubric, opts ...Option) *MemStore {
	s := &MemStore{
		rubric: r,
		byName: make(map[string]model.Record),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// normalize produces the case-insensitive uniqueness key for a name.
func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// fill builds a complete values map: every rubric criterion gets either the
// clamped provided value or the neutral default. Unknown keys are dropped.
func (s *MemStore) fill(values map[string]int) map[string]int {
	out := make(map[string]int, s.rubric.Len())
	for _, key := range s.rubric.Keys() {
		v, ok := values[key]
		if !ok {
			v = s.rubric.Neutral()
		}
		out[key] = s.rubric.Clamp(v)
	}
	return out
}

// Add implements Store.Add.
func (s *MemStore) Add(ctx context.Context, name string, values map[string]int) (model.Record, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreLatency(float64(time.Since(start).Milliseconds()))
	}()

	display := strings.TrimSpace(name)
	if display == "" {
		metrics.RecordMutation("add", "rejected")
		return model.Record{}, ErrEmptyName
	}
	key := normalize(display)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[key]; exists {
		metrics.RecordMutation("add", "rejected")
		return model.Record{}, ErrDuplicateName
	}
	rec := model.Record{Name: display, Values: s.fill(values)}
	s.byName[key] = rec
	metrics.RecordMutation("add", "ok")
	metrics.UpdateRecordsTotal(len(s.byName))
	return rec.Clone(), nil
}

// Update implements Store.Update. Only the provided criteria values are
// replaced; absent keys keep their current value.
func (s *MemStore) Update(ctx context.Context, name string, values map[string]int) (model.Record, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreLatency(float64(time.Since(start).Milliseconds()))
	}()

	key := normalize(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.byName[key]
	if !exists {
		metrics.RecordMutation("update", "not_found")
		return model.Record{}, ErrNotFound
	}
	updated := rec.Clone()
	for k, v := range values {
		if !s.rubric.Has(k) {
			continue
		}
		updated.Values[k] = s.rubric.Clamp(v)
	}
	s.byName[key] = updated
	metrics.RecordMutation("update", "ok")
	return updated.Clone(), nil
}

// Delete implements Store.Delete.
func (s *MemStore) Delete(ctx context.Context, name string) error {
	key := normalize(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[key]; !exists {
		metrics.RecordMutation("delete", "not_found")
		return ErrNotFound
	}
	delete(s.byName, key)
	metrics.RecordMutation("delete", "ok")
	metrics.UpdateRecordsTotal(len(s.byName))
	return nil
}

// Get implements Store.Get.
func (s *MemStore) Get(ctx context.Context, name string) (model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.byName[normalize(name)]
	if !exists {
		return model.Record{}, ErrNotFound
	}
	return rec.Clone(), nil
}

// List implements Store.List.
func (s *MemStore) List(ctx context.Context) []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Record, 0, len(s.byName))
	for _, rec := range s.byName {
		out = append(out, rec.Clone())
	}
	return out
}

// Count implements Store.Count.
func (s *MemStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byName)
}

// BulkLoad implements Store.BulkLoad. Duplicate and empty names are
// skipped rather than erroring the whole batch.
func (s *MemStore) BulkLoad(ctx context.Context, records []model.Record) (loaded, skipped int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range records {
		display := strings.TrimSpace(rec.Name)
		if display == "" {
			skipped++
			continue
		}
		key := normalize(display)
		if _, exists := s.byName[key]; exists {
			skipped++
			continue
		}
		s.byName[key] = model.Record{Name: display, Values: s.fill(rec.Values)}
		loaded++
	}
	metrics.RecordIngestionRows(loaded, skipped)
	metrics.UpdateRecordsTotal(len(s.byName))
	return loaded, skipped
}
