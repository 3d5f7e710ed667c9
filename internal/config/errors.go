package config

import "errors"

// Parse failures are fatal to the run; they are reported verbatim and never
// retried.
var (
	// ErrMissingQuery is returned when no query token is present.
	ErrMissingQuery = errors.New("didn't get a query string")

	// ErrMissingFilePath is returned when no file path token follows the query.
	ErrMissingFilePath = errors.New("didn't get a file path")
)
