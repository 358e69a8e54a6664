package response

import (
	"errors"
	"net/http"

	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/admin"
	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/auth"
	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/worker"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/geocode"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// Roster and ledger errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, admin.ErrAdminNotFound):
		NotFound(w, "Admin not found")
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance event not found")

	// Policy rejections
	case errors.Is(err, attendance.ErrDuplicateKind):
		Conflict(w, "DUPLICATE_KIND", "Consecutive events of the same kind are not allowed")
	case errors.Is(err, attendance.ErrTooSoon):
		Conflict(w, "TOO_SOON", "Too little time has passed since the last event")

	// Geocoding errors
	case errors.Is(err, geocode.ErrNoResult):
		UnprocessableEntity(w, "GEOCODE_FAILURE", "Address could not be resolved to coordinates")
	case errors.Is(err, geocode.ErrUnavailable):
		UnprocessableEntity(w, "GEOCODE_FAILURE", "Geocoding service is unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
