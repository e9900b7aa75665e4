package errs

import "errors"

// Cross-cutting marks; domain packages keep their own sentinels and mark them with these
// so handlers can map a whole family of failures to one status code.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
