package repository

import "errors"

// Sentinel kinds for dataset store errors.
var (
	ErrDataLoad = errors.New("dataset load failed")
)
