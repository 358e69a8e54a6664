package attendance

import (
	"time"

	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/validator"
)

// Kind is the attendance event kind. Events for one person strictly
// alternate between check-in and check-out.
type Kind string

const (
	KindCheckIn  Kind = "check_in"
	KindCheckOut Kind = "check_out"
)

// Valid reports whether k is one of the two known kinds.
func (k Kind) Valid() bool {
	return k == KindCheckIn || k == KindCheckOut
}

// Opposite returns the kind that must follow k. An unknown kind maps to
// check-in so that a corrupted row never blocks the person permanently.
func (k Kind) Opposite() Kind {
	if k == KindCheckIn {
		return KindCheckOut
	}
	return KindCheckIn
}

// Event is a single immutable row in the attendance ledger. Name is a
// denormalized snapshot of the worker name at write time.
type Event struct {
	ID            string
	RUT           string
	Name          string
	LocationText  *string
	Latitude      *float64
	Longitude     *float64
	RecordedAt    time.Time // UTC instant
	TimezoneLabel *string   // display only
	Kind          Kind
	CreatedAt     time.Time
}

// Validate enforces the ledger append contract: rut, timestamp and kind are
// required, and latitude/longitude must be both present or both absent.
func (e *Event) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(e.RUT) {
		errs = append(errs, validator.ValidationError{
			Field:   "rut",
			Message: "rut is required",
		})
	}

	if e.RecordedAt.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "recorded_at",
			Message: "recorded_at is required",
		})
	}

	if !e.Kind.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be check_in or check_out",
		})
	}

	if (e.Latitude == nil) != (e.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "coordinates",
			Message: "latitude and longitude must be provided together",
		})
	}

	if e.Latitude != nil && (*e.Latitude < -90 || *e.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if e.Longitude != nil && (*e.Longitude < -180 || *e.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
