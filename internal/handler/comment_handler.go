package handler

import (
	"encoding/json"
	"net/http"

	"github.com/taskdeck/backend/internal/model"
	"github.com/taskdeck/backend/internal/service"
)

// CommentHandler handles task comment endpoints.
type CommentHandler struct {
	svc service.CommentService
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// List handles GET /api/tasks/{id}/comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("id")
	if taskID == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	comments, err := h.svc.ListByTask(r.Context(), taskID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if comments == nil {
		comments = []*model.Comment{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"comments": comments})
}

type addCommentRequest struct {
	Text string `json:"text"`
}

// Create handles POST /api/tasks/{id}/comments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("id")
	if taskID == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	comment, err := h.svc.Add(r.Context(), taskID, req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}
