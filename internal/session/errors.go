package session

import "errors"

// Sentinel kinds for session errors.
var (
	ErrUnknownKind = errors.New("unknown reaction kind")
)
