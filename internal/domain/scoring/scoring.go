// Package scoring computes normalized scores from raw criteria values.
package scoring

import (
	"math"

	"github.com/okian/scorecard/internal/domain/rubric"
)

// Engine is a pure, deterministic scorer for a single rubric. It carries
// no store state; every call depends only on the values passed in.
type Engine struct {
	rubric *rubric.Rubric
}

// NewEngine creates an engine bound to the given rubric.
func NewEngine(r *rubric.Rubric) *Engine {
	return &Engine{rubric: r}
}

// Score maps one record's criteria values to a score.
//
// Weighted shape: round((sum of rating*weight) / (5 * weight sum) * 100, 2),
// so a record of all 1s floors at 20.0 and all 5s reaches 100.0.
// Boolean shape: the count of yes answers in [0, N].
//
// A value missing for a defined criterion substitutes the rubric neutral;
// out-of-domain values are clamped before summing.
func (e *Engine) Score(values map[string]int) float64 {
	if e.rubric.Shape() == rubric.ShapeBoolean {
		yes := 0
		for _, c := range e.rubric.Criteria() {
			v, ok := values[c.Key]
			if !ok {
				v = e.rubric.Neutral()
			}
			if e.rubric.Clamp(v) == 1 {
				yes++
			}
		}
		return float64(yes)
	}

	sum := 0.0
	for _, c := range e.rubric.Criteria() {
		v, ok := values[c.Key]
		if !ok {
			v = e.rubric.Neutral()
		}
		sum += float64(e.rubric.Clamp(v)) * c.Weight
	}
	pct := sum / (rubric.MaxRating * e.rubric.WeightSum()) * 100
	return round2(pct)
}

// MaxScore returns the highest reachable score for the bound rubric.
func (e *Engine) MaxScore() float64 {
	return e.rubric.MaxScore()
}

// round2 rounds to 2 decimal places, matching the exported percentage.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
