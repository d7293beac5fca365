package rubric_test

import (
	"testing"

	"github.com/okian/scorecard/internal/domain/rubric"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given a weighted criteria set", t, func() {
		criteria := []rubric.Criterion{
			{Key: "A", Weight: 0.5},
			{Key: "B", Weight: 0.5},
		}

		Convey("When the weights sum to 1.0", func() {
			r, err := rubric.New(rubric.ShapeWeighted, criteria)

			Convey("Then construction succeeds", func() {
				So(err, ShouldBeNil)
				So(r, ShouldNotBeNil)
				So(r.Len(), ShouldEqual, 2)
				So(r.WeightSum(), ShouldAlmostEqual, 1.0, 1e-6)
			})
		})

		Convey("When the weights do not sum to 1.0", func() {
			bad := []rubric.Criterion{
				{Key: "A", Weight: 0.5},
				{Key: "B", Weight: 0.4},
			}
			_, err := rubric.New(rubric.ShapeWeighted, bad)

			Convey("Then construction fails with ErrWeightSum", func() {
				So(err, ShouldWrap, rubric.ErrWeightSum)
			})
		})

		Convey("When a criterion key is duplicated", func() {
			dup := []rubric.Criterion{
				{Key: "A", Weight: 0.5},
				{Key: "A", Weight: 0.5},
			}
			_, err := rubric.New(rubric.ShapeWeighted, dup)

			Convey("Then construction fails", func() {
				So(err, ShouldWrap, rubric.ErrInvalidCriterion)
			})
		})

		Convey("When a weight is out of (0,1]", func() {
			bad := []rubric.Criterion{
				{Key: "A", Weight: 0},
				{Key: "B", Weight: 1.0},
			}
			_, err := rubric.New(rubric.ShapeWeighted, bad)

			Convey("Then construction fails", func() {
				So(err, ShouldWrap, rubric.ErrInvalidCriterion)
			})
		})

		Convey("When the criteria set is empty", func() {
			_, err := rubric.New(rubric.ShapeWeighted, nil)

			Convey("Then construction fails", func() {
				So(err, ShouldWrap, rubric.ErrNoCriteria)
			})
		})
	})

	Convey("Given the built-in rubrics", t, func() {
		Convey("Then the commercialization rubric validates", func() {
			r, err := rubric.New(rubric.ShapeWeighted, rubric.DefaultCommercializationCriteria())
			So(err, ShouldBeNil)
			So(r.Len(), ShouldEqual, 8)
			So(r.MaxScore(), ShouldEqual, 100)
		})

		Convey("Then the screening questionnaire validates", func() {
			r, err := rubric.New(rubric.ShapeBoolean, rubric.DefaultScreeningCriteria())
			So(err, ShouldBeNil)
			So(r.Len(), ShouldEqual, 10)
			So(r.MaxScore(), ShouldEqual, 10)
		})
	})
}

func TestValueDomain(t *testing.T) {
	Convey("Given a weighted rubric", t, func() {
		r, err := rubric.New(rubric.ShapeWeighted, []rubric.Criterion{
			{Key: "A", Weight: 1.0},
		})
		So(err, ShouldBeNil)

		Convey("Then the neutral default is 3", func() {
			So(r.Neutral(), ShouldEqual, 3)
		})

		Convey("Then out-of-domain values clamp into [1,5]", func() {
			So(r.Clamp(9), ShouldEqual, 5)
			So(r.Clamp(0), ShouldEqual, 1)
			So(r.Clamp(-2), ShouldEqual, 1)
			So(r.Clamp(4), ShouldEqual, 4)
		})
	})

	Convey("Given a boolean rubric", t, func() {
		r, err := rubric.New(rubric.ShapeBoolean, []rubric.Criterion{{Key: "Q1"}, {Key: "Q2"}})
		So(err, ShouldBeNil)

		Convey("Then the neutral default is no", func() {
			So(r.Neutral(), ShouldEqual, 0)
		})

		Convey("Then values clamp to 0/1", func() {
			So(r.Clamp(7), ShouldEqual, 1)
			So(r.Clamp(1), ShouldEqual, 1)
			So(r.Clamp(0), ShouldEqual, 0)
			So(r.Clamp(-1), ShouldEqual, 0)
		})
	})
}

func TestParseShape(t *testing.T) {
	Convey("Given shape names from configuration", t, func() {
		Convey("Then known names parse", func() {
			s, err := rubric.ParseShape("weighted")
			So(err, ShouldBeNil)
			So(s, ShouldEqual, rubric.ShapeWeighted)

			s, err = rubric.ParseShape("boolean")
			So(err, ShouldBeNil)
			So(s, ShouldEqual, rubric.ShapeBoolean)
		})

		Convey("Then the empty string defaults to weighted", func() {
			s, err := rubric.ParseShape("")
			So(err, ShouldBeNil)
			So(s, ShouldEqual, rubric.ShapeWeighted)
		})

		Convey("Then unknown names fail", func() {
			_, err := rubric.ParseShape("likert")
			So(err, ShouldWrap, rubric.ErrInvalidShape)
		})
	})
}

func TestKeysOrder(t *testing.T) {
	Convey("Given a rubric", t, func() {
		r, err := rubric.New(rubric.ShapeWeighted, []rubric.Criterion{
			{Key: "C", Weight: 0.2},
			{Key: "A", Weight: 0.5},
			{Key: "B", Weight: 0.3},
		})
		So(err, ShouldBeNil)

		Convey("Then Keys preserves the declared order", func() {
			So(r.Keys(), ShouldResemble, []string{"C", "A", "B"})
		})

		Convey("Then Has and Weight look up criteria", func() {
			So(r.Has("A"), ShouldBeTrue)
			So(r.Has("Z"), ShouldBeFalse)
			w, ok := r.Weight("B")
			So(ok, ShouldBeTrue)
			So(w, ShouldEqual, 0.3)
		})
	})
}
