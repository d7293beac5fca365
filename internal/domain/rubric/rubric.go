// Package rubric defines the fixed scoring schema shared by the core.
//
// A rubric is constructed once at startup from configuration and never
// mutated afterwards. Every other component (scoring, store, view,
// ingestion) reads the criteria set and value domain from here.
package rubric

import (
	"fmt"
	"math"
)

// weightEpsilon is the tolerance for the weight-sum invariant.
const weightEpsilon = 1e-6

// Rating scale bounds for the weighted shape.
const (
	MinRating     = 1
	MaxRating     = 5
	NeutralRating = 3
)

// Shape selects the value domain and score formula of a rubric.
type Shape int

const (
	// ShapeWeighted holds integer ratings in [1,5] per criterion and
	// scores as a weighted percentage.
	ShapeWeighted Shape = iota
	// ShapeBoolean holds yes/no answers (stored as 1/0) and scores as
	// the count of yes answers.
	ShapeBoolean
)

// String returns the configuration name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeBoolean:
		return "boolean"
	default:
		return "weighted"
	}
}

// ParseShape maps a configuration string to a Shape.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "weighted", "":
		return ShapeWeighted, nil
	case "boolean":
		return ShapeBoolean, nil
	default:
		return ShapeWeighted, fmt.Errorf("%w: unknown rubric shape %q", ErrInvalidShape, s)
	}
}

// Criterion is a single scored dimension.
type Criterion struct {
	Key         string
	Description string
	// Weight is the share of the total score, only meaningful for the
	// weighted shape where all weights must sum to 1.0.
	Weight float64
}

// Rubric is an immutable, validated criteria set.
type Rubric struct {
	shape     Shape
	criteria  []Criterion
	weightSum float64
}

// New validates the criteria set and builds a Rubric. A malformed weight
// configuration is a construction error; callers treat it as fatal.
func New(shape Shape, criteria []Criterion) (*Rubric, error) {
	if len(criteria) == 0 {
		return nil, ErrNoCriteria
	}
	seen := make(map[string]struct{}, len(criteria))
	sum := 0.0
	for _, c := range criteria {
		if c.Key == "" {
			return nil, fmt.Errorf("%w: empty criterion key", ErrInvalidCriterion)
		}
		if _, dup := seen[c.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate criterion key %q", ErrInvalidCriterion, c.Key)
		}
		seen[c.Key] = struct{}{}
		if shape == ShapeWeighted {
			if c.Weight <= 0 || c.Weight > 1 {
				return nil, fmt.Errorf("%w: criterion %q has weight %v, want (0,1]", ErrInvalidCriterion, c.Key, c.Weight)
			}
			sum += c.Weight
		}
	}
	if shape == ShapeWeighted && math.Abs(sum-1.0) > weightEpsilon {
		return nil, fmt.Errorf("%w: weights sum to %v, want 1.0", ErrWeightSum, sum)
	}

	r := &Rubric{
		shape:     shape,
		criteria:  make([]Criterion, len(criteria)),
		weightSum: sum,
	}
	copy(r.criteria, criteria)
	return r, nil
}

// Shape returns the rubric shape.
func (r *Rubric) Shape() Shape {
	return r.shape
}

// Criteria returns a copy of the criteria in their declared order.
func (r *Rubric) Criteria() []Criterion {
	out := make([]Criterion, len(r.criteria))
	copy(out, r.criteria)
	return out
}

// Keys returns the criterion keys in their declared order. This is the
// stable column order used by ingestion and export.
func (r *Rubric) Keys() []string {
	keys := make([]string, len(r.criteria))
	for i, c := range r.criteria {
		keys[i] = c.Key
	}
	return keys
}

// Len returns the number of criteria.
func (r *Rubric) Len() int {
	return len(r.criteria)
}

// Has reports whether key is a criterion of this rubric.
func (r *Rubric) Has(key string) bool {
	for _, c := range r.criteria {
		if c.Key == key {
			return true
		}
	}
	return false
}

// Weight returns the weight for key, and whether the key exists.
func (r *Rubric) Weight(key string) (float64, bool) {
	for _, c := range r.criteria {
		if c.Key == key {
			return c.Weight, true
		}
	}
	return 0, false
}

// WeightSum returns the sum of all weights (weighted shape only).
func (r *Rubric) WeightSum() float64 {
	return r.weightSum
}

// MaxScore returns the highest score a record can reach: 100 for the
// weighted percentage, or the criteria count for the boolean shape.
func (r *Rubric) MaxScore() float64 {
	if r.shape == ShapeBoolean {
		return float64(len(r.criteria))
	}
	return 100
}

// Neutral returns the default value substituted for a missing criterion:
// 3 on the 1-5 scale, "no" (0) for the boolean shape.
func (r *Rubric) Neutral() int {
	if r.shape == ShapeBoolean {
		return 0
	}
	return NeutralRating
}

// Clamp forces v into the rubric's value domain. Out-of-domain values are
// clamped rather than rejected, matching the tolerant-ingestion policy.
func (r *Rubric) Clamp(v int) int {
	if r.shape == ShapeBoolean {
		if v > 0 {
			return 1
		}
		return 0
	}
	if v < MinRating {
		return MinRating
	}
	if v > MaxRating {
		return MaxRating
	}
	return v
}
