package ranking

import "errors"

// Sentinel kinds for ranking errors.
var (
	ErrEmptyGroup = errors.New("no rows to rank")
	ErrInvalidK   = errors.New("invalid top-k limit")
)
