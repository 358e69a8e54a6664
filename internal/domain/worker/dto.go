package worker

import (
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/validator"
)

type UpsertRequest struct {
	RUT  string `json:"-"`
	Name string `json:"name"`
}

func (r *UpsertRequest) Validate() error {
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

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkerResponse struct {
	RUT  string `json:"rut"`
	Name string `json:"name"`
}
