package export

import "errors"

var (
	// ErrNoResult is returned when a nil result is passed to a writer.
	ErrNoResult = errors.New("export: no result")

	// ErrMalformed is returned when a stored data file cannot be read
	// back into a result.
	ErrMalformed = errors.New("export: malformed data file")
)
