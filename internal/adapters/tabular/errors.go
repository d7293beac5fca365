package tabular

import "errors"

// Sentinel kinds for tabular boundary errors.
var (
	ErrMissingColumns = errors.New("source missing required columns")
)
