package http

import (
	"encoding/json"
	"net/http"

	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia-cl/asistencia-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

// Submit handles POST /api/v1/attendance
func (h *AttendanceHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.attendanceService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", resp)
}

// Status handles GET /api/v1/attendance/status/{rut}
func (h *AttendanceHandler) Status(w http.ResponseWriter, r *http.Request) {
	rut := chi.URLParam(r, "rut")

	resp, err := h.attendanceService.Status(r.Context(), rut)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// History handles GET /api/v1/attendance/history
func (h *AttendanceHandler) History(w http.ResponseWriter, r *http.Request) {
	var filter attendance.HistoryFilter
	if month := r.URL.Query().Get("month"); month != "" {
		filter.Month = &month
	}

	events, err := h.attendanceService.History(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}

// Months handles GET /api/v1/attendance/months
func (h *AttendanceHandler) Months(w http.ResponseWriter, r *http.Request) {
	months, err := h.attendanceService.Months(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, months)
}
