// Package repository defines the record store interface and errors.
package repository

import (
	"strings"

	"github.com/okian/scorecard/internal/domain/model"
)

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithRecords preloads the store. Rows follow BulkLoad semantics: empty
// and duplicate names are dropped, values are clamped into the domain.
func WithRecords(records ...model.Record) Option {
	return func(s *MemStore) {
		for _, rec := range records {
			display := strings.TrimSpace(rec.Name)
			key := normalize(display)
			if key == "" {
				continue
			}
			if _, exists := s.byName[key]; exists {
				continue
			}
			s.byName[key] = model.Record{Name: display, Values: s.fill(rec.Values)}
		}
	}
}
