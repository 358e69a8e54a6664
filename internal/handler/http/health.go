package http

import (
	"context"
	"net/http"
	"time"

	"github.com/asistencia-cl/asistencia-backend-go/internal/handler/http/response"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/database"
)

type HealthHandler struct {
	db *database.DB
}

func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		response.ServiceUnavailable(w, "Database unreachable")
		return
	}

	response.Success(w, map[string]string{"status": "ok"})
}
