package store

import "errors"

// ErrNotFound is returned by the ByID lookups when no record matches.
var ErrNotFound = errors.New("record not found")
