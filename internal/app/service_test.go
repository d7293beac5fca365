package service_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/okian/scorecard/internal/adapters/repository"
	service "github.com/okian/scorecard/internal/app"
	"github.com/okian/scorecard/internal/domain/ranking"
	"github.com/okian/scorecard/internal/domain/rubric"
	"github.com/okian/scorecard/internal/domain/workflow"
	"github.com/okian/scorecard/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newService(t *testing.T) *service.Service {
	t.Helper()
	r, err := rubric.New(rubric.ShapeWeighted, []rubric.Criterion{
		{Key: "A", Weight: 0.5},
		{Key: "B", Weight: 0.5},
	})
	if err != nil {
		t.Fatalf("rubric: %v", err)
	}
	svc, err := service.New(service.WithRubric(r))
	if err != nil {
		t.Fatalf("service: %v", err)
	}
	return svc
}

func TestService_Ranking(t *testing.T) {
	Convey("Given two companies with equal scores", t, func() {
		ctx := context.Background()
		svc := newService(t)
		_, err := svc.Add(ctx, "Y", map[string]int{"A": 3, "B": 3})
		So(err, ShouldBeNil)
		_, err = svc.Add(ctx, "X", map[string]int{"A": 5, "B": 1})
		So(err, ShouldBeNil)

		Convey("Then both rank 1 with X shown first", func() {
			rows := svc.Rows(ctx)
			So(rows, ShouldHaveLength, 2)
			So(rows[0].Name, ShouldEqual, "X")
			So(rows[0].Score, ShouldEqual, 60.0)
			So(rows[0].Rank, ShouldEqual, 1)
			So(rows[1].Name, ShouldEqual, "Y")
			So(rows[1].Rank, ShouldEqual, 1)
		})

		Convey("When the session switches to alphabetical order", func() {
			svc.SetSortMode(ctx, ranking.SortAlphabetical)

			Convey("Then rows reorder but ranks are unchanged", func() {
				rows := svc.Rows(ctx)
				So(rows[0].Name, ShouldEqual, "X")
				So(svc.SortMode(ctx), ShouldEqual, ranking.SortAlphabetical)
			})
		})

		Convey("When the session sets a search filter", func() {
			svc.SetSearchFilter(ctx, "x")

			Convey("Then only matching rows survive, with global ranks", func() {
				rows := svc.Rows(ctx)
				So(rows, ShouldHaveLength, 1)
				So(rows[0].Name, ShouldEqual, "X")
				So(rows[0].Rank, ShouldEqual, 1)
				So(svc.SearchFilter(ctx), ShouldEqual, "x")
			})
		})
	})
}

func TestService_EditWorkflow(t *testing.T) {
	Convey("Given a service with one company", t, func() {
		ctx := context.Background()
		svc := newService(t)
		_, err := svc.Add(ctx, "Acme", map[string]int{"A": 5, "B": 2})
		So(err, ShouldBeNil)

		Convey("When editing and saving it", func() {
			So(svc.StartEdit(ctx, "Acme"), ShouldBeTrue)

			rec, err := svc.SaveEdit(ctx, "acme", map[string]int{"B": 4})

			Convey("Then values merge and the edit state clears", func() {
				So(err, ShouldBeNil)
				So(rec.Values, ShouldResemble, map[string]int{"A": 5, "B": 4})
				_, editing := svc.Editing(ctx)
				So(editing, ShouldBeFalse)
			})
		})

		Convey("When a save fails", func() {
			svc.StartEdit(ctx, "Acme")
			_, err := svc.SaveEdit(ctx, "Globex", map[string]int{"A": 1})

			Convey("Then the edit state survives for another attempt", func() {
				So(err, ShouldEqual, repository.ErrNotFound)
				name, editing := svc.Editing(ctx)
				So(editing, ShouldBeTrue)
				So(name, ShouldEqual, "Acme")
			})
		})

		Convey("When cancelling an edit", func() {
			svc.StartEdit(ctx, "Acme")
			svc.CancelEdit(ctx)

			Convey("Then no record is being edited and values are untouched", func() {
				_, editing := svc.Editing(ctx)
				So(editing, ShouldBeFalse)
				rec, err := svc.Get(ctx, "Acme")
				So(err, ShouldBeNil)
				So(rec.Values["B"], ShouldEqual, 2)
			})
		})
	})
}

func TestService_DeleteWorkflow(t *testing.T) {
	Convey("Given a service with two companies", t, func() {
		ctx := context.Background()
		svc := newService(t)
		_, err := svc.Add(ctx, "Acme", map[string]int{"A": 5, "B": 5})
		So(err, ShouldBeNil)
		_, err = svc.Add(ctx, "Globex", map[string]int{"A": 1, "B": 1})
		So(err, ShouldBeNil)

		Convey("When confirming without a pending request", func() {
			_, err := svc.ConfirmDelete(ctx)
			So(err, ShouldEqual, workflow.ErrNoPendingDelete)
		})

		Convey("When requesting and confirming a delete", func() {
			svc.RequestDelete(ctx, "Globex")

			name, pending := svc.PendingDelete(ctx)
			So(pending, ShouldBeTrue)
			So(name, ShouldEqual, "Globex")

			deleted, err := svc.ConfirmDelete(ctx)

			Convey("Then the record leaves the view and nothing stays pending", func() {
				So(err, ShouldBeNil)
				So(deleted, ShouldEqual, "Globex")
				So(svc.Rows(ctx), ShouldHaveLength, 1)
				_, pending := svc.PendingDelete(ctx)
				So(pending, ShouldBeFalse)
			})
		})

		Convey("When the pending record vanished before confirmation", func() {
			svc.RequestDelete(ctx, "Globex")
			_, err := svc.ConfirmDelete(ctx)
			So(err, ShouldBeNil)

			svc.RequestDelete(ctx, "Globex")
			_, err = svc.ConfirmDelete(ctx)

			Convey("Then the pending state is consumed and the miss surfaces", func() {
				So(err, ShouldEqual, repository.ErrNotFound)
				_, pending := svc.PendingDelete(ctx)
				So(pending, ShouldBeFalse)
			})
		})

		Convey("When cancelling a pending delete", func() {
			svc.RequestDelete(ctx, "Acme")
			svc.CancelDelete(ctx)

			Convey("Then the record stays", func() {
				_, pending := svc.PendingDelete(ctx)
				So(pending, ShouldBeFalse)
				So(svc.Rows(ctx), ShouldHaveLength, 2)
			})
		})
	})
}

func TestService_ImportExport(t *testing.T) {
	Convey("Given a service with one existing company", t, func() {
		ctx := context.Background()
		svc := newService(t)
		_, err := svc.Add(ctx, "Acme", map[string]int{"A": 5, "B": 1})
		So(err, ShouldBeNil)

		Convey("When importing a valid CSV", func() {
			src := strings.Join([]string{
				"Company Name,A,B",
				"Globex,4,4",
				"ACME,1,1",
			}, "\n")
			loaded, skipped, err := svc.Import(ctx, strings.NewReader(src))

			Convey("Then new rows load and duplicates are skipped", func() {
				So(err, ShouldBeNil)
				So(loaded, ShouldEqual, 1)
				So(skipped, ShouldEqual, 1)
				So(svc.Rows(ctx), ShouldHaveLength, 2)
			})
		})

		Convey("When importing a CSV missing a criterion column", func() {
			loaded, _, err := svc.Import(ctx, strings.NewReader("Company Name,A\nGlobex,4\n"))

			Convey("Then the whole batch is rejected and the store untouched", func() {
				So(err, ShouldNotBeNil)
				So(loaded, ShouldEqual, 0)
				So(svc.Rows(ctx), ShouldHaveLength, 1)
			})
		})

		Convey("When exporting", func() {
			var buf bytes.Buffer
			err := svc.Export(ctx, &buf)

			Convey("Then the projection serializes with score and rank", func() {
				So(err, ShouldBeNil)
				lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
				So(lines[0], ShouldEqual, "Company Name,A,B,Score,Rank")
				So(lines[1], ShouldEqual, "Acme,5,1,60.00,1")
			})
		})
	})
}

func TestService_Stats(t *testing.T) {
	Convey("Given a service with workflow state", t, func() {
		ctx := context.Background()
		svc := newService(t)
		_, err := svc.Add(ctx, "Acme", map[string]int{"A": 4, "B": 4})
		So(err, ShouldBeNil)
		svc.StartEdit(ctx, "Acme")

		Convey("Then stats reflect the session", func() {
			stats := svc.GetStats()
			So(stats["companies"], ShouldEqual, 1)
			So(stats["rubricShape"], ShouldEqual, "weighted")
			So(stats["criteria"], ShouldEqual, 2)
			So(stats["editing"], ShouldEqual, "Acme")
			So(stats["sortMode"], ShouldEqual, "rank")
		})
	})
}
