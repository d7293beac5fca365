package ranking_test

import (
	"context"
	"testing"

	"github.com/okian/scorecard/internal/adapters/repository"
	"github.com/okian/scorecard/internal/domain/model"
	"github.com/okian/scorecard/internal/domain/ranking"
	"github.com/okian/scorecard/internal/domain/rubric"
	"github.com/okian/scorecard/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

// newView builds a view over a two-criterion 50/50 rubric, so a record's
// score is the mean of its two ratings scaled to a percentage.
func newView(t *testing.T, records ...model.Record) *ranking.View {
	t.Helper()
	r, err := rubric.New(rubric.ShapeWeighted, []rubric.Criterion{
		{Key: "A", Weight: 0.5},
		{Key: "B", Weight: 0.5},
	})
	if err != nil {
		t.Fatalf("rubric: %v", err)
	}
	store := repository.NewMemStore(r, repository.WithRecords(records...))
	return ranking.NewView(store, scoring.NewEngine(r))
}

func TestView_MinRanking(t *testing.T) {
	Convey("Given four companies with tied and distinct scores", t, func() {
		// Scores: 90, 90, 80, 70.
		view := newView(t,
			model.Record{Name: "Delta", Values: map[string]int{"A": 5, "B": 4}},
			model.Record{Name: "Alpha", Values: map[string]int{"A": 4, "B": 5}},
			model.Record{Name: "Echo", Values: map[string]int{"A": 4, "B": 4}},
			model.Record{Name: "Foxtrot", Values: map[string]int{"A": 4, "B": 3}},
		)

		Convey("When building the rank view", func() {
			rows := view.Rows(context.Background(), "", ranking.SortByRank)

			Convey("Then ties share the lowest rank and leave a gap", func() {
				So(rows, ShouldHaveLength, 4)
				So(rows[0].Rank, ShouldEqual, 1)
				So(rows[1].Rank, ShouldEqual, 1)
				So(rows[2].Rank, ShouldEqual, 3)
				So(rows[3].Rank, ShouldEqual, 4)
			})

			Convey("And tied scores display in name order", func() {
				So(rows[0].Name, ShouldEqual, "Alpha")
				So(rows[1].Name, ShouldEqual, "Delta")
			})
		})
	})

	Convey("Given two companies with equal scores", t, func() {
		// Both score 60.0.
		view := newView(t,
			model.Record{Name: "Y", Values: map[string]int{"A": 3, "B": 3}},
			model.Record{Name: "X", Values: map[string]int{"A": 5, "B": 1}},
		)

		Convey("Then both hold rank 1, X shown before Y", func() {
			rows := view.Rows(context.Background(), "", ranking.SortByRank)
			So(rows, ShouldHaveLength, 2)
			So(rows[0].Name, ShouldEqual, "X")
			So(rows[0].Score, ShouldEqual, 60.0)
			So(rows[0].Rank, ShouldEqual, 1)
			So(rows[1].Name, ShouldEqual, "Y")
			So(rows[1].Score, ShouldEqual, 60.0)
			So(rows[1].Rank, ShouldEqual, 1)
		})
	})
}

func TestView_Sorting(t *testing.T) {
	Convey("Given companies with mixed-case names", t, func() {
		view := newView(t,
			model.Record{Name: "Beta", Values: map[string]int{"A": 5, "B": 5}},
			model.Record{Name: "alpha", Values: map[string]int{"A": 1, "B": 1}},
			model.Record{Name: "Gamma", Values: map[string]int{"A": 3, "B": 3}},
		)

		Convey("When sorting alphabetically", func() {
			rows := view.Rows(context.Background(), "", ranking.SortAlphabetical)

			Convey("Then ordering is case-insensitive by name", func() {
				names := []string{rows[0].Name, rows[1].Name, rows[2].Name}
				So(names, ShouldResemble, []string{"alpha", "Beta", "Gamma"})
			})

			Convey("And ranks still reflect scores, not display order", func() {
				So(rows[0].Name, ShouldEqual, "alpha")
				So(rows[0].Rank, ShouldEqual, 3)
				So(rows[1].Rank, ShouldEqual, 1)
			})
		})
	})
}

func TestView_Filtering(t *testing.T) {
	Convey("Given three companies", t, func() {
		view := newView(t,
			model.Record{Name: "Acme Labs", Values: map[string]int{"A": 5, "B": 5}},
			model.Record{Name: "Globex", Values: map[string]int{"A": 4, "B": 4}},
			model.Record{Name: "Acme Corp", Values: map[string]int{"A": 3, "B": 3}},
		)
		ctx := context.Background()

		Convey("When filtering by a substring", func() {
			rows := view.Rows(ctx, "aCmE", ranking.SortByRank)

			Convey("Then matching is case-insensitive", func() {
				So(rows, ShouldHaveLength, 2)
			})

			Convey("And ranks are global, computed before filtering", func() {
				// Globex holds rank 2 overall, so Acme Corp keeps rank 3.
				So(rows[0].Name, ShouldEqual, "Acme Labs")
				So(rows[0].Rank, ShouldEqual, 1)
				So(rows[1].Name, ShouldEqual, "Acme Corp")
				So(rows[1].Rank, ShouldEqual, 3)
			})
		})

		Convey("When the filter matches nothing", func() {
			rows := view.Rows(ctx, "zzz", ranking.SortByRank)

			Convey("Then the result is empty, not an error", func() {
				So(rows, ShouldBeEmpty)
			})
		})
	})

	Convey("Given an empty store", t, func() {
		view := newView(t)

		Convey("Then the view is an empty sequence", func() {
			So(view.Rows(context.Background(), "", ranking.SortByRank), ShouldBeEmpty)
		})
	})
}

func TestParseSortMode(t *testing.T) {
	Convey("Given sort mode query values", t, func() {
		So(ranking.ParseSortMode("alpha"), ShouldEqual, ranking.SortAlphabetical)
		So(ranking.ParseSortMode("ALPHA"), ShouldEqual, ranking.SortAlphabetical)
		So(ranking.ParseSortMode("rank"), ShouldEqual, ranking.SortByRank)
		So(ranking.ParseSortMode(""), ShouldEqual, ranking.SortByRank)
		So(ranking.ParseSortMode("garbage"), ShouldEqual, ranking.SortByRank)
	})
}
