package handler

import (
	"net/http"
	"strconv"

	"github.com/taskdeck/backend/internal/model"
	"github.com/taskdeck/backend/internal/service"
)

// ActivityHandler handles the activity feed endpoint.
type ActivityHandler struct {
	svc service.ActivityService
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// Feed handles GET /api/activity?project_id=&limit=N.
func (h *ActivityHandler) Feed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 20
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	entries, err := h.svc.List(r.Context(), q.Get("project_id"), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if entries == nil {
		entries = []*model.ActivityEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"activity": entries})
}
