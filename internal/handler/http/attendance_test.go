package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/worker"
	"github.com/asistencia-cl/asistencia-backend-go/internal/handler/http/response"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/geocode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceService struct {
	submitResp attendance.EventResponse
	submitErr  error
	statusResp attendance.StatusResponse
	statusErr  error
}

func (f *fakeAttendanceService) Submit(ctx context.Context, req attendance.SubmitRequest) (attendance.EventResponse, error) {
	return f.submitResp, f.submitErr
}

func (f *fakeAttendanceService) Status(ctx context.Context, rut string) (attendance.StatusResponse, error) {
	return f.statusResp, f.statusErr
}

func (f *fakeAttendanceService) History(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.EventResponse, error) {
	return nil, nil
}

func (f *fakeAttendanceService) Months(ctx context.Context) ([]string, error) {
	return nil, nil
}

func submitRequest(t *testing.T, handler *AttendanceHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Submit(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestAttendanceHandler_Submit_Created(t *testing.T) {
	svc := &fakeAttendanceService{
		submitResp: attendance.EventResponse{
			ID:        "e1",
			RUT:       "11111111-1",
			Name:      "Maria Gonzalez",
			Timestamp: "2025-07-14 09:00:00",
			Kind:      "check_in",
		},
	}
	handler := NewAttendanceHandler(svc)

	rec := submitRequest(t, handler, `{"rut":"11111111-1","address":"Av. Providencia 1234"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestAttendanceHandler_Submit_InvalidBody(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	rec := submitRequest(t, handler, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_Submit_TooSoonIsConflict(t *testing.T) {
	svc := &fakeAttendanceService{submitErr: attendance.ErrTooSoon}
	handler := NewAttendanceHandler(svc)

	rec := submitRequest(t, handler, `{"rut":"11111111-1","address":"Santiago"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "TOO_SOON", resp.Error.Code)
}

func TestAttendanceHandler_Submit_UnknownWorkerIsNotFound(t *testing.T) {
	svc := &fakeAttendanceService{submitErr: worker.ErrWorkerNotFound}
	handler := NewAttendanceHandler(svc)

	rec := submitRequest(t, handler, `{"rut":"11111111-1","address":"Santiago"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttendanceHandler_Submit_GeocodeFailureIsUnprocessable(t *testing.T) {
	svc := &fakeAttendanceService{submitErr: geocode.ErrNoResult}
	handler := NewAttendanceHandler(svc)

	rec := submitRequest(t, handler, `{"rut":"11111111-1","address":"nowhere"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "GEOCODE_FAILURE", resp.Error.Code)
}

func TestAttendanceHandler_Status(t *testing.T) {
	svc := &fakeAttendanceService{
		statusResp: attendance.StatusResponse{RUT: "11111111-1", NextKind: "check_in"},
	}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/status/11111111-1", nil)
	rec := httptest.NewRecorder()
	handler.Status(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}
