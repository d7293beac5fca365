// Package repository defines the record store interface and errors.
package repository

import (
	"context"

	"github.com/okian/scorecard/internal/domain/model"
)

// Store is the exclusive owner of the company record set; the single
// source of truth read by the ranking view and mutated by the workflow.
type Store interface {
	// Add inserts a new record. The name is trimmed; uniqueness is
	// case-insensitive. Returns ErrEmptyName or ErrDuplicateName.
	Add(ctx context.Context, name string, values map[string]int) (model.Record, error)

	// Update replaces only the provided criteria values of an existing
	// record; it never renames. Returns ErrNotFound for unknown names.
	Update(ctx context.Context, name string, values map[string]int) (model.Record, error)

	// Delete removes a record. Deleting an unknown name is an explicit
	// ErrNotFound, not a silent no-op.
	Delete(ctx context.Context, name string) error

	// Get returns a copy of the record for name, or ErrNotFound.
	Get(ctx context.Context, name string) (model.Record, error)

	// List returns copies of all records in unspecified order.
	List(ctx context.Context) []model.Record

	// Count returns the number of records.
	Count(ctx context.Context) int

	// BulkLoad inserts a batch of externally sourced records. Rows whose
	// name already exists (case-insensitive) or is empty are skipped;
	// out-of-domain values are clamped, never rejected.
	BulkLoad(ctx context.Context, records []model.Record) (loaded, skipped int)
}
