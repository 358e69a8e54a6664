package worker

import "time"

// Worker is one roster entry: a RUT mapped to a display name.
type Worker struct {
	RUT       string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
