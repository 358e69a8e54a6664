package attendance

import "errors"

// Attendance domain errors
var (
	// Policy rejections
	ErrDuplicateKind = errors.New("an event of the same kind was already recorded")
	ErrTooSoon       = errors.New("another event was recorded too recently")

	// General errors
	ErrEventNotFound = errors.New("attendance event not found")
)
