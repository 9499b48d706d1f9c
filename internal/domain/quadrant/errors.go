package quadrant

import "errors"

// Sentinel kinds for quadrant layout errors.
var (
	ErrInsufficientData = errors.New("insufficient data for layout")
	ErrEmptyGroup       = errors.New("no rows for year")
)
