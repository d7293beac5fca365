package repository

import "errors"

// Sentinel kinds for record store errors.
var (
	ErrEmptyName     = errors.New("company name must not be empty")
	ErrDuplicateName = errors.New("company already exists")
	ErrNotFound      = errors.New("company not found")
)
