package handler

import (
	"context"
	"net/http"
)

// Pinger reports backing-store reachability. The in-memory store has
// nothing to ping, so the handler accepts nil.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthHandler handles GET /api/health.
type HealthHandler struct {
	pinger Pinger
}

func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, healthResponse{
				Status:  "unhealthy",
				Message: err.Error(),
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Message: "TaskDeck API",
	})
}
