package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrDegenerateInput  = errors.New("degenerate input")
	ErrStoreUnavailable = errors.New("store unavailable")
)
