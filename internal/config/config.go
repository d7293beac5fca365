// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Layer optional file and environment overrides in Load.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"fmt"

	"github.com/okian/scorecard/internal/domain/rubric"
)

// Criterion mirrors one rubric criterion in configuration.
type Criterion struct {
	Key         string  `koanf:"key"`
	Description string  `koanf:"description"`
	Weight      float64 `koanf:"weight"`
}

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RubricShape selects the scoring shape: "weighted" or "boolean".
	RubricShape string `koanf:"rubric_shape"`

	// Criteria overrides the rubric criteria set. When empty, the
	// built-in rubric for the configured shape is used.
	Criteria []Criterion `koanf:"criteria"`

	// DefaultSortMode selects the initial ordering: "rank" or "alpha".
	DefaultSortMode string `koanf:"default_sort_mode"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9080",
		RubricShape:     "weighted",
		DefaultSortMode: "rank",
	}
}

// Rubric builds the validated rubric described by this configuration. A
// malformed rubric (bad shape, weights not summing to 1.0) is a startup
// error, never a runtime one.
func (c *Config) Rubric() (*rubric.Rubric, error) {
	shape, err := rubric.ParseShape(c.RubricShape)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	criteria := make([]rubric.Criterion, 0, len(c.Criteria))
	for _, cc := range c.Criteria {
		criteria = append(criteria, rubric.Criterion{
			Key:         cc.Key,
			Description: cc.Description,
			Weight:      cc.Weight,
		})
	}
	if len(criteria) == 0 {
		if shape == rubric.ShapeBoolean {
			criteria = rubric.DefaultScreeningCriteria()
		} else {
			criteria = rubric.DefaultCommercializationCriteria()
		}
	}

	r, err := rubric.New(shape, criteria)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return r, nil
}
