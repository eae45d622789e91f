package handler

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/taskdeck/backend/internal/model"
	"github.com/taskdeck/backend/internal/service"
	"github.com/taskdeck/backend/internal/storage"
)

func taskPhotosUpdate(photos []string) model.TaskUpdate {
	return model.TaskUpdate{Photos: &photos}
}

const maxPhotoSize = 5 << 20 // 5 MB

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// PhotoHandler handles task photo upload and removal. Photos live in
// blob storage; the task record keeps an ordered list of URLs.
type PhotoHandler struct {
	storage storage.Storage
	tasks   service.TaskService
}

// NewPhotoHandler creates a PhotoHandler.
func NewPhotoHandler(store storage.Storage, tasks service.TaskService) *PhotoHandler {
	return &PhotoHandler{storage: store, tasks: tasks}
}

// Upload handles POST /api/tasks/{id}/photos.
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("id")
	if taskID == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	task, err := h.tasks.GetByID(r.Context(), taskID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		writeError(w, http.StatusBadRequest, "file_too_large")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "photo_required")
		return
	}
	defer file.Close()

	if header.Size > maxPhotoSize {
		writeError(w, http.StatusBadRequest, "file_too_large")
		return
	}

	ct := header.Header.Get("Content-Type")
	ext, ok := allowedContentTypes[ct]
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_content_type")
		return
	}

	b := make([]byte, 16)
	_, _ = rand.Read(b)
	key := path.Join("tasks", taskID, hex.EncodeToString(b)+ext)
	url, err := h.storage.Save(r.Context(), key, file, ct)
	if err != nil {
		slog.Error("photo upload failed", "error", err, "task_id", taskID)
		writeError(w, http.StatusInternalServerError, "upload_failed")
		return
	}

	photos := append(append([]string{}, task.Photos...), url)
	updated, err := h.tasks.Update(r.Context(), taskID, taskPhotosUpdate(photos))
	if err != nil {
		_ = h.storage.Delete(r.Context(), key)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

type removePhotoRequest struct {
	URL string `json:"url"`
}

// Delete handles DELETE /api/tasks/{id}/photos. The body names the
// photo URL to remove.
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("id")
	if taskID == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	var req removePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeError(w, http.StatusBadRequest, "url_required")
		return
	}

	task, err := h.tasks.GetByID(r.Context(), taskID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	photos := make([]string, 0, len(task.Photos))
	found := false
	for _, p := range task.Photos {
		if p == req.URL {
			found = true
			continue
		}
		photos = append(photos, p)
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	updated, err := h.tasks.Update(r.Context(), taskID, taskPhotosUpdate(photos))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if key, ok := strings.CutPrefix(req.URL, "/uploads/"); ok {
		_ = h.storage.Delete(r.Context(), key)
	}
	writeJSON(w, http.StatusOK, updated)
}
