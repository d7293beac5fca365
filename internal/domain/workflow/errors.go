package workflow

import "errors"

// Sentinel kinds for workflow errors.
var (
	ErrNoPendingDelete = errors.New("no delete pending confirmation")
)
