package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"taskpulse/internal/config"
	"taskpulse/internal/httpmw"
	"taskpulse/internal/server"
	"taskpulse/internal/suggest"
	"taskpulse/internal/task"
)

func main() {
	cfgPath := os.Getenv("TASKPULSE_CONFIG")
	if cfgPath == "" {
		cfgPath = "taskpulse.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg = config.FromEnv(cfg)

	repo, err := task.NewFileRepo(cfg.Data.Dir)
	if err != nil {
		log.Fatal(err)
	}

	app := &server.App{
		Tasks: repo,
		Cfg:   cfg,
	}
	if cfg.Suggest.Enabled {
		app.Suggest = &suggest.ClaudeCLI{
			Timeout: time.Duration(cfg.Suggest.TimeoutSeconds) * time.Second,
		}
	}

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}
	server.RegisterAPIRoutes(mux, rr, app)

	logger := log.New(os.Stdout, "", 0)
	handler := httpmw.Chain(mux,
		httpmw.WithRequestID,
		httpmw.WithRecover(logger),
		httpmw.WithAccessLog(logger),
	)

	fmt.Printf("taskpulse listening on %s\n", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, handler))
}
