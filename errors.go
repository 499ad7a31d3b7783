package quest

import "errors"

// Errors returned by the tracker. They are wrapped with context, test them
// with errors.Is.
var (
	ErrInvalidGoalKind    = errors.New("invalid goal kind")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrIndexOutOfRange    = errors.New("goal index out of range")
	ErrMalformedRecord    = errors.New("malformed record")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrNotFound           = errors.New("no saved progress found")
)
