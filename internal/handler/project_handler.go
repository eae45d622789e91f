package handler

import (
	"encoding/json"
	"net/http"

	"github.com/taskdeck/backend/internal/model"
	"github.com/taskdeck/backend/internal/service"
	"github.com/taskdeck/backend/internal/view"
)

// ProjectHandler handles project CRUD endpoints.
type ProjectHandler struct {
	svc service.ProjectService
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// List handles GET /api/projects?status=&sort=&dir=.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	q := r.URL.Query()
	filter := view.ProjectFilter{Status: model.ProjectStatus(q.Get("status"))}
	sort := view.Sort[view.ProjectSortField]{
		Field: view.ProjectSortField(q.Get("sort")),
		Dir:   view.Direction(q.Get("dir")),
	}
	if !sort.Dir.Valid() {
		sort.Dir = view.Asc
	}

	projects = view.Projects(projects, filter, sort)
	if projects == nil {
		projects = []*model.Project{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	project, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

type createProjectRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      model.ProjectStatus `json:"status"`
	Deadline    string              `json:"deadline"`
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	project, err := h.svc.Create(r.Context(), model.NewProject{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Deadline:    parseDate(req.Deadline),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

// Update handles PUT /api/projects/{id}. The body is a partial
// document: absent keys leave fields alone, "deadline": null clears
// the deadline.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	var in model.ProjectUpdate
	if v, ok := raw["title"]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_title")
			return
		}
		in.Title = &s
	}
	if v, ok := raw["description"]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_description")
			return
		}
		in.Description = &s
	}
	if v, ok := raw["status"]; ok {
		var s model.ProjectStatus
		if err := json.Unmarshal(v, &s); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_status")
			return
		}
		in.Status = &s
	}
	if v, ok := raw["deadline"]; ok {
		if rawJSONNull(v) {
			in.ClearDeadline = true
		} else {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				writeError(w, http.StatusBadRequest, "invalid_deadline")
				return
			}
			t := parseDate(s)
			if t == nil {
				writeError(w, http.StatusBadRequest, "invalid_deadline")
				return
			}
			in.Deadline = t
		}
	}

	project, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
