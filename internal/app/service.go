// Package service provides the core business service that implements
// the dependencies required by the HTTP API: the record store, scoring
// engine, ranking view and mutation workflow behind one handle.
package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/okian/scorecard/internal/adapters/repository"
	"github.com/okian/scorecard/internal/adapters/tabular"
	"github.com/okian/scorecard/internal/domain/model"
	"github.com/okian/scorecard/internal/domain/ranking"
	"github.com/okian/scorecard/internal/domain/rubric"
	"github.com/okian/scorecard/internal/domain/scoring"
	"github.com/okian/scorecard/internal/domain/types"
	"github.com/okian/scorecard/internal/domain/workflow"
	"github.com/okian/scorecard/pkg/logger"
	"github.com/okian/scorecard/pkg/metrics"
)

// Service owns one scoring session: a rubric, the record store, the
// derived ranking view, the edit/delete workflow and the display
// preferences (sort mode, search filter). It is created per session and
// discarded with it; there is no process-wide singleton.
//
// All operations are synchronous. The embedded store has its own lock;
// the service mutex guards only workflow state and display preferences.
type Service struct {
	mu sync.RWMutex

	rubric *rubric.Rubric
	engine *scoring.Engine
	store  repository.Store
	view   *ranking.View
	flow   *workflow.Machine

	sortMode     ranking.SortMode
	searchFilter string

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithRubric sets the rubric for the session. Defaults to the weighted
// commercialization rubric.
func WithRubric(r *rubric.Rubric) Option {
	return func(s *Service) {
		if r != nil {
			s.rubric = r
		}
	}
}

// WithStore injects a custom record store. Defaults to an empty MemStore.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSortMode sets the initial sort mode. Defaults to rank order.
func WithSortMode(mode ranking.SortMode) Option {
	return func(s *Service) {
		s.sortMode = mode
	}
}

// New constructs a ready-to-use Service.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		sortMode: ranking.SortByRank,
		flow:     workflow.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.rubric == nil {
		r, err := rubric.New(rubric.ShapeWeighted, rubric.DefaultCommercializationCriteria())
		if err != nil {
			return nil, fmt.Errorf("default rubric: %w", err)
		}
		s.rubric = r
	}
	if s.store == nil {
		s.store = repository.NewMemStore(s.rubric)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.engine = scoring.NewEngine(s.rubric)
	s.view = ranking.NewView(s.store, s.engine)
	return s, nil
}

// Rubric returns the session rubric.
func (s *Service) Rubric() *rubric.Rubric {
	return s.rubric
}

// Add inserts a new company record.
func (s *Service) Add(ctx context.Context, name string, values map[string]int) (model.Record, error) {
	rec, err := s.store.Add(ctx, name, values)
	if err != nil {
		metrics.RecordErrorByComponent("service", "add")
		return model.Record{}, err
	}
	s.logger.Info(ctx, "company added", logger.String("name", rec.Name))
	return rec, nil
}

// Get returns the record for name.
func (s *Service) Get(ctx context.Context, name string) (model.Record, error) {
	return s.store.Get(ctx, name)
}

// StartEdit toggles edit mode for name. Returns true if the session is
// now editing that record.
func (s *Service) StartEdit(ctx context.Context, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	editing := s.flow.StartEdit(name)
	s.logger.Debug(ctx, "edit state changed",
		logger.String("name", strings.TrimSpace(name)),
		logger.Bool("editing", editing),
	)
	return editing
}

// Editing returns the name currently being edited, if any.
func (s *Service) Editing(ctx context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flow.Editing()
}

// SaveEdit updates the record's criteria values and, on success, clears
// the matching edit state. The record name is immutable; only values
// change.
func (s *Service) SaveEdit(ctx context.Context, name string, values map[string]int) (model.Record, error) {
	rec, err := s.store.Update(ctx, name, values)
	if err != nil {
		metrics.RecordErrorByComponent("service", "save_edit")
		return model.Record{}, err
	}

	s.mu.Lock()
	if editing, ok := s.flow.Editing(); ok && strings.EqualFold(editing, rec.Name) {
		s.flow.FinishEdit()
	}
	s.mu.Unlock()

	s.logger.Info(ctx, "company updated", logger.String("name", rec.Name))
	return rec, nil
}

// CancelEdit abandons the in-progress edit.
func (s *Service) CancelEdit(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flow.CancelEdit()
}

// RequestDelete marks name as pending delete confirmation.
func (s *Service) RequestDelete(ctx context.Context, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flow.RequestDelete(name)
}

// PendingDelete returns the name awaiting delete confirmation, if any.
func (s *Service) PendingDelete(ctx context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flow.PendingDelete()
}

// ConfirmDelete consumes the pending delete and removes the record.
// Returns the deleted name. The pending state is consumed even when the
// record turned out to be gone; the store error is surfaced either way.
func (s *Service) ConfirmDelete(ctx context.Context) (string, error) {
	s.mu.Lock()
	name, err := s.flow.ConfirmDelete()
	s.mu.Unlock()
	if err != nil {
		metrics.RecordErrorByComponent("service", "confirm_delete")
		return "", err
	}

	if err := s.store.Delete(ctx, name); err != nil {
		metrics.RecordErrorByComponent("service", "delete")
		return name, err
	}
	s.logger.Info(ctx, "company deleted", logger.String("name", name))
	return name, nil
}

// CancelDelete abandons the pending delete.
func (s *Service) CancelDelete(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flow.CancelDelete()
}

// SetSortMode updates the session's display ordering.
func (s *Service) SetSortMode(ctx context.Context, mode ranking.SortMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortMode = mode
}

// SortMode returns the session's display ordering.
func (s *Service) SortMode(ctx context.Context) ranking.SortMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortMode
}

// SetSearchFilter updates the case-insensitive name filter.
func (s *Service) SetSearchFilter(ctx context.Context, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchFilter = text
}

// SearchFilter returns the current name filter.
func (s *Service) SearchFilter(ctx context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchFilter
}

// Rows rebuilds and returns the scored, ranked projection under the
// session's current sort mode and search filter.
func (s *Service) Rows(ctx context.Context) []types.Row {
	s.mu.RLock()
	filter, mode := s.searchFilter, s.sortMode
	s.mu.RUnlock()
	return s.view.Rows(ctx, filter, mode)
}

// Import bulk-loads records from CSV input. A schema error aborts the
// whole batch with the store untouched; malformed cells are recovered
// per-value. Each import gets a job id for log correlation.
func (s *Service) Import(ctx context.Context, r io.Reader) (loaded, skipped int, err error) {
	job := uuid.NewString()
	records, err := tabular.ReadRecords(r, s.rubric)
	if err != nil {
		metrics.RecordErrorByComponent("service", "import")
		s.logger.Warn(ctx, "import rejected", logger.String("job", job), logger.Error(err))
		return 0, 0, err
	}
	loaded, skipped = s.store.BulkLoad(ctx, records)
	s.logger.Info(ctx, "import finished",
		logger.String("job", job),
		logger.Int("loaded", loaded),
		logger.Int("skipped", skipped),
	)
	return loaded, skipped, nil
}

// Export serializes the current projection as CSV: name, criteria values
// in rubric order, score and rank.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	if err := tabular.WriteRows(w, s.rubric, s.Rows(ctx)); err != nil {
		metrics.RecordErrorByComponent("service", "export")
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()

	s.mu.RLock()
	editing, _ := s.flow.Editing()
	pendingDelete, _ := s.flow.PendingDelete()
	mode := s.sortMode
	filter := s.searchFilter
	s.mu.RUnlock()

	count := s.store.Count(ctx)
	metrics.UpdateRecordsTotal(count)

	return map[string]interface{}{
		"companies":     count,
		"rubricShape":   s.rubric.Shape().String(),
		"criteria":      s.rubric.Len(),
		"maxScore":      s.rubric.MaxScore(),
		"editing":       editing,
		"pendingDelete": pendingDelete,
		"sortMode":      mode.String(),
		"searchFilter":  filter,
	}
}
