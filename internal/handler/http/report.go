package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/asistencia-cl/asistencia-backend-go/internal/handler/http/response"
	"github.com/asistencia-cl/asistencia-backend-go/internal/service/report"
)

type ReportHandler struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// ExportAttendance handles GET /api/v1/reports/attendance
func (h *ReportHandler) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	var month *string
	if m := r.URL.Query().Get("month"); m != "" {
		month = &m
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = report.FormatCSV
	}

	export, err := h.reportService.ExportAttendance(r.Context(), month, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Data)
}
