package attendance

import "context"

// AttendanceService is the policy-facing contract for submissions and
// history queries.
type AttendanceService interface {
	// Submit classifies and records a check-in or check-out for a person.
	Submit(ctx context.Context, req SubmitRequest) (EventResponse, error)

	// Status reports the next expected kind for a person.
	Status(ctx context.Context, rut string) (StatusResponse, error)

	// History lists recorded events, optionally filtered by month.
	History(ctx context.Context, filter HistoryFilter) ([]EventResponse, error)

	// Months lists the distinct months that have events.
	Months(ctx context.Context) ([]string, error)
}
