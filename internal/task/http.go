package task

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"taskpulse/internal/model"
)

type Handler struct {
	repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{repo: repo}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// taskDraftJSON mirrors the persisted task shape minus identity and
// completion state.
type taskDraftJSON struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        model.TaskType `json:"type"`
	DueDate     *time.Time     `json:"dueDate"`
	StartTime   string         `json:"startTime"`
	ImageURL    string         `json:"imageUrl"`
	Subtasks    []string       `json:"subtasks"`

	IsRecurring           bool               `json:"isRecurring"`
	RecurringInterval     int                `json:"recurringInterval"`
	RecurringIntervalUnit model.IntervalUnit `json:"recurringIntervalUnit"`
	Repetitions           int                `json:"repetitions"`
}

func (in taskDraftJSON) toDraft() model.TaskDraft {
	d := model.TaskDraft{
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		DueDate:     in.DueDate,
		StartTime:   in.StartTime,
		ImageURL:    in.ImageURL,
		Subtasks:    in.Subtasks,
	}
	if in.IsRecurring {
		d.Recurrence = &model.Recurrence{
			Interval:    in.RecurringInterval,
			Unit:        in.RecurringIntervalUnit,
			Repetitions: in.Repetitions,
		}
	}
	return d
}

// /api/tasks  (collection)
func (h *Handler) TasksRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		filter := ListFilter{
			Status: StatusFilter(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status")))),
		}
		ts, err := h.repo.List(filter)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, ts)

	case http.MethodPost:
		var in taskDraftJSON
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		draft := in.toDraft()
		if err := draft.Validate(); err != nil {
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				writeJSON(w, 400, map[string]any{"error": verr.Reason, "field": verr.Field})
				return
			}
			writeErr(w, 400, err.Error())
			return
		}
		t, err := h.repo.Create(draft)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 201, t)

	default:
		writeErr(w, 405, "method not allowed")
	}
}

// /api/tasks/{id}
func (h *Handler) TasksSub(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/tasks/"), "/")
	if id == "" || strings.Contains(id, "/") {
		writeErr(w, 404, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		t, err := h.repo.Get(model.TaskID(id))
		if errors.Is(err, ErrNotFound) {
			writeErr(w, 404, "not found")
			return
		}
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, t)

	case http.MethodPatch:
		var p Patch
		if err := decodeJSON(r, &p); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		t, err := h.repo.Update(model.TaskID(id), p)
		if errors.Is(err, ErrNotFound) {
			writeErr(w, 404, "not found")
			return
		}
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, t)

	case http.MethodDelete:
		if err := h.repo.Delete(model.TaskID(id)); err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		w.WriteHeader(204)

	default:
		writeErr(w, 405, "method not allowed")
	}
}

// GET /api/tasks/export
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	b, err := Export(h.repo)
	if err != nil {
		writeErr(w, 500, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFileName+`"`)
	w.WriteHeader(200)
	_, _ = w.Write(b)
}

// POST /api/tasks/import
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeErr(w, 400, "read body: "+err.Error())
		return
	}
	tasks, err := ParseSnapshot(body)
	if err != nil {
		writeErr(w, 400, err.Error())
		return
	}
	if err := h.repo.Replace(tasks); err != nil {
		writeErr(w, 500, err.Error())
		return
	}
	writeJSON(w, 200, map[string]any{"imported": len(tasks)})
}
