package http

import (
	"encoding/json"
	"net/http"

	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/worker"
	"github.com/asistencia-cl/asistencia-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkerHandler struct {
	workerService worker.WorkerService
}

func NewWorkerHandler(workerService worker.WorkerService) *WorkerHandler {
	return &WorkerHandler{
		workerService: workerService,
	}
}

// List handles GET /api/v1/workers
func (h *WorkerHandler) List(w http.ResponseWriter, r *http.Request) {
	workers, err := h.workerService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, workers)
}

// Upsert handles PUT /api/v1/workers/{rut}
func (h *WorkerHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req worker.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.RUT = chi.URLParam(r, "rut")

	resp, err := h.workerService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Delete handles DELETE /api/v1/workers/{rut}
func (h *WorkerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	rut := chi.URLParam(r, "rut")

	if err := h.workerService.Delete(r.Context(), rut); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker removed", nil)
}
