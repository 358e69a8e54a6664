package attendance

import (
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// SubmitRequest is the public check-in/check-out submission. The caller
// provides either a street address to geocode or a device coordinate pair.
type SubmitRequest struct {
	RUT           string   `json:"rut"`
	Address       string   `json:"address,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	TimezoneLabel *string  `json:"timezone_label,omitempty"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RUT) {
		errs = append(errs, validator.ValidationError{
			Field:   "rut",
			Message: "rut is required",
		})
	} else if !validator.IsValidRUT(r.RUT) {
		errs = append(errs, validator.ValidationError{
			Field:   "rut",
			Message: "rut is not a valid RUT",
		})
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "coordinates",
			Message: "latitude and longitude must be provided together",
		})
	}

	if r.Latitude == nil && validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "either an address or device coordinates are required",
		})
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
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

type EventResponse struct {
	ID            string   `json:"id"`
	RUT           string   `json:"rut"`
	Name          string   `json:"name"`
	LocationText  *string  `json:"location_text,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	Timestamp     string   `json:"timestamp"`
	TimezoneLabel *string  `json:"timezone_label,omitempty"`
	Kind          string   `json:"kind"`
}

// NewEventResponse renders a ledger event for the API. Timestamps are
// rendered in UTC with the layout the history and export views share.
func NewEventResponse(e Event) EventResponse {
	return EventResponse{
		ID:            e.ID,
		RUT:           e.RUT,
		Name:          e.Name,
		LocationText:  e.LocationText,
		Latitude:      e.Latitude,
		Longitude:     e.Longitude,
		Timestamp:     e.RecordedAt.UTC().Format(TimestampLayout),
		TimezoneLabel: e.TimezoneLabel,
		Kind:          string(e.Kind),
	}
}

// TimestampLayout is the display layout for event timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// StatusResponse reports where a person stands in the check-in/check-out
// cycle without recording anything.
type StatusResponse struct {
	RUT       string         `json:"rut"`
	NextKind  string         `json:"next_kind"`
	LastEvent *EventResponse `json:"last_event,omitempty"`
}

// HistoryFilter restricts the admin history view to one month.
type HistoryFilter struct {
	Month *string `json:"month,omitempty"` // YYYY-MM
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != nil && *f.Month != "" {
		if !validator.IsValidMonth(*f.Month) {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
