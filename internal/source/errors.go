package source

import "errors"

// Data source error sentinels.
var (
	// ErrFetchFailure wraps every failure to retrieve or decode a dataset.
	ErrFetchFailure = errors.New("fetch failed")

	// ErrMalformed marks a dataset that is not a JSON object of the expected shape.
	ErrMalformed = errors.New("malformed dataset")
)
