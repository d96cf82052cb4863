package stats

import (
	"encoding/json"
	"net/http"
	"time"

	"taskpulse/internal/task"
)

type Handler struct {
	repo       task.Repo
	windowDays int
}

func NewHandler(repo task.Repo, windowDays int) *Handler {
	return &Handler{repo: repo, windowDays: windowDays}
}

// GET /api/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.repo.Snapshot()
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(Summarize(tasks, time.Now(), h.windowDays))
}
