package attendance

import (
	"context"
)

// LedgerRepository defines data access for the append-only attendance
// ledger. Append is the only mutation; there is no update or delete.
type LedgerRepository interface {
	// Append validates and inserts a new event.
	Append(ctx context.Context, event Event) (Event, error)

	// Last returns the most recent event for a person, or nil when the
	// person has no history.
	Last(ctx context.Context, rut string) (*Event, error)

	// LastForUpdate behaves like Last but takes a per-person lock for the
	// duration of the surrounding transaction, serializing the
	// read-last-then-append sequence against concurrent submissions.
	LastForUpdate(ctx context.Context, rut string) (*Event, error)

	// List returns events most-recent-first, optionally restricted to a
	// "YYYY-MM" month.
	List(ctx context.Context, month *string) ([]Event, error)

	// MonthsPresent returns the distinct "YYYY-MM" values across all
	// events, most recent first. Used to populate history filters.
	MonthsPresent(ctx context.Context) ([]string, error)
}
