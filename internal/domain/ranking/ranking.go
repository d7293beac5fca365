// Package ranking derives the scored, ranked, filterable projection over
// the record store. The projection is rebuilt from scratch on every call;
// nothing here caches rank across mutations.
package ranking

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/okian/scorecard/internal/adapters/repository"
	"github.com/okian/scorecard/internal/domain/scoring"
	"github.com/okian/scorecard/internal/domain/types"
	"github.com/okian/scorecard/pkg/metrics"
)

// SortMode selects the display ordering of the projection.
type SortMode int

const (
	// SortByRank orders by score descending, tie-broken by company name
	// ascending (case-insensitive).
	SortByRank SortMode = iota
	// SortAlphabetical orders by company name ascending (case-insensitive).
	SortAlphabetical
)

// String returns the query-parameter name of the mode.
func (m SortMode) String() string {
	if m == SortAlphabetical {
		return "alpha"
	}
	return "rank"
}

// ParseSortMode maps a query string to a SortMode, defaulting to rank.
func ParseSortMode(s string) SortMode {
	if strings.EqualFold(strings.TrimSpace(s), "alpha") {
		return SortAlphabetical
	}
	return SortByRank
}

// View reads the store and engine; it never mutates either.
type View struct {
	store  repository.Store
	engine *scoring.Engine
}

// NewView builds a view over a store and a scoring engine.
func NewView(store repository.Store, engine *scoring.Engine) *View {
	return &View{store: store, engine: engine}
}

// Rows scores every record currently in the store, assigns min-ranks over
// the full set, then narrows to names containing filter (case-insensitive)
// and orders per mode. Ranks are global: filtering changes what is shown,
// not what rank a company holds. An empty store or a filter with no match
// yields an empty slice.
func (v *View) Rows(ctx context.Context, filter string, mode SortMode) []types.Row {
	start := time.Now()
	defer func() {
		metrics.RecordViewBuildDuration(float64(time.Since(start).Milliseconds()))
	}()

	records := v.store.List(ctx)
	rows := make([]types.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, types.Row{
			Name:   rec.Name,
			Score:  v.engine.Score(rec.Values),
			Values: rec.Values,
		})
	}

	sortByRank(rows)
	assignMinRanks(rows)

	if needle := strings.ToLower(strings.TrimSpace(filter)); needle != "" {
		filtered := rows[:0]
		for _, row := range rows {
			if strings.Contains(strings.ToLower(row.Name), needle) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	if mode == SortAlphabetical {
		sortAlphabetical(rows)
	}
	return rows
}

// sortByRank orders rows by score descending, then name ascending
// (case-insensitive) so ties display deterministically.
func sortByRank(rows []types.Row) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return lessName(rows[i].Name, rows[j].Name)
	})
}

// sortAlphabetical orders rows by company name ascending, case-insensitive.
func sortAlphabetical(rows []types.Row) {
	sort.Slice(rows, func(i, j int) bool {
		return lessName(rows[i].Name, rows[j].Name)
	})
}

func lessName(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

// assignMinRanks assigns min-ranking over rows already sorted by score
// descending: tied scores share the lowest rank and the sequence skips
// past the tie group, so scores [90, 90, 80] rank [1, 1, 3].
func assignMinRanks(rows []types.Row) {
	for i := range rows {
		if i > 0 && rows[i].Score == rows[i-1].Score {
			rows[i].Rank = rows[i-1].Rank
			continue
		}
		rows[i].Rank = i + 1
	}
}
