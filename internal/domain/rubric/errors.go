package rubric

import "errors"

// Sentinel kinds for rubric configuration errors.
var (
	ErrNoCriteria       = errors.New("rubric has no criteria")
	ErrInvalidCriterion = errors.New("invalid criterion")
	ErrWeightSum        = errors.New("criteria weights must sum to 1.0")
	ErrInvalidShape     = errors.New("invalid rubric shape")
)
