package handler

import (
	"encoding/json"
	"net/http"

	"github.com/taskdeck/backend/internal/model"
	"github.com/taskdeck/backend/internal/service"
	"github.com/taskdeck/backend/internal/view"
)

// TaskHandler handles task CRUD endpoints.
type TaskHandler struct {
	svc service.TaskService
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// taskQueryView applies the filter/sort query parameters shared by the
// task list endpoints.
func taskQueryView(r *http.Request, tasks []*model.Task) []*model.Task {
	q := r.URL.Query()
	filter := view.TaskFilter{
		Status:     model.TaskStatus(q.Get("status")),
		Priority:   model.TaskPriority(q.Get("priority")),
		AssigneeID: q.Get("assignee"),
	}
	sort := view.Sort[view.TaskSortField]{
		Field: view.TaskSortField(q.Get("sort")),
		Dir:   view.Direction(q.Get("dir")),
	}
	if !sort.Dir.Valid() {
		sort.Dir = view.Asc
	}
	return view.Tasks(tasks, filter, sort)
}

// ListByProject handles GET /api/projects/{id}/tasks.
func (h *TaskHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	tasks, err := h.svc.ListByProject(r.Context(), projectID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	tasks = taskQueryView(r, tasks)
	if tasks == nil {
		tasks = []*model.Task{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}

// ListAll handles GET /api/tasks.
func (h *TaskHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	tasks = taskQueryView(r, tasks)
	if tasks == nil {
		tasks = []*model.Task{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	task, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

type createTaskRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Status      model.TaskStatus   `json:"status"`
	Priority    model.TaskPriority `json:"priority"`
	AssigneeID  string             `json:"assignee_id"`
	DueDate     string             `json:"due_date"`
}

// Create handles POST /api/projects/{id}/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	task, err := h.svc.Create(r.Context(), projectID, model.NewTask{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
		DueDate:     parseDate(req.DueDate),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

// Update handles PUT /api/tasks/{id}. The body is a partial document:
// absent keys leave fields alone, "assignee_id": null (or "") clears
// the assignee, "due_date": null clears the due date.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var in model.TaskUpdate
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
		var s model.TaskStatus
		if err := json.Unmarshal(v, &s); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_status")
			return
		}
		in.Status = &s
	}
	if v, ok := raw["priority"]; ok {
		var p model.TaskPriority
		if err := json.Unmarshal(v, &p); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_priority")
			return
		}
		in.Priority = &p
	}
	if v, ok := raw["assignee_id"]; ok {
		var s string
		if rawJSONNull(v) {
			// null clears, same as "".
		} else if err := json.Unmarshal(v, &s); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_assignee")
			return
		}
		in.AssigneeID = &s
	}
	if v, ok := raw["due_date"]; ok {
		if rawJSONNull(v) {
			in.ClearDueDate = true
		} else {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				writeError(w, http.StatusBadRequest, "invalid_due_date")
				return
			}
			t := parseDate(s)
			if t == nil {
				writeError(w, http.StatusBadRequest, "invalid_due_date")
				return
			}
			in.DueDate = t
		}
	}
	if v, ok := raw["photos"]; ok {
		var photos []string
		if err := json.Unmarshal(v, &photos); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_photos")
			return
		}
		if photos == nil {
			photos = []string{}
		}
		in.Photos = &photos
	}

	task, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
