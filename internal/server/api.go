package server

import (
	"encoding/json"
	"net/http"

	"taskpulse/internal/config"
	"taskpulse/internal/stats"
	"taskpulse/internal/suggest"
	"taskpulse/internal/task"
)

// App holds what the handlers depend on.
type App struct {
	Tasks   task.Repo
	Suggest suggest.Provider
	Cfg     config.Config
}

func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	th := task.NewHandler(app.Tasks)
	sh := stats.NewHandler(app.Tasks, app.Cfg.Stats.WindowDays)
	gh := suggest.NewHandler(app.Suggest)

	Handle(mux, rr, "GET /api/tasks", "List tasks filtered by status (all|active|completed|overdue)", "", th.TasksRoot)
	Handle(mux, rr, "POST /api/tasks", "Create a task",
		`{"title":"water plants","type":"daily","subtasks":["fill can","do the rounds"]}`, th.TasksRoot)
	Handle(mux, rr, "GET /api/tasks/export", "Download the collection as "+task.ExportFileName, "", th.Export)
	Handle(mux, rr, "POST /api/tasks/import", "Replace the collection with an exported document", "[]", th.Import)
	Handle(mux, rr, "GET /api/tasks/{id}", "Get a task", "", th.TasksSub)
	Handle(mux, rr, "PATCH /api/tasks/{id}", "Partially update a task", `{"completed":true}`, th.TasksSub)
	Handle(mux, rr, "DELETE /api/tasks/{id}", "Delete a task and its subtasks", "", th.TasksSub)
	Handle(mux, rr, "GET /api/stats", "Completion analytics for the trailing window", "", sh.Stats)
	Handle(mux, rr, "POST /api/suggest", "Suggest subtasks for a description",
		`{"description":"plan a birthday party"}`, gh.Suggest)

	mux.HandleFunc("GET /api/routes", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(rr.List())
	})
}
