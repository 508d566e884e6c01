package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"cyberrisk/adapters/memory"
	"cyberrisk/adapters/postgres"
	"cyberrisk/internal"
	"cyberrisk/internal/api"
	"cyberrisk/internal/config"
	"cyberrisk/internal/worker"
	"cyberrisk/ports"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	repo, err := buildRepository(cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize run storage: %v", err)
	}

	runner := worker.NewRunner(repo, logger, cfg.Simulation.MaxConcurrentRuns, cfg.Simulation.Currency)
	handler := api.NewHandler(runner, repo, cfg, logger)

	if cfg.Profiling.Enabled {
		go serveOps(cfg.Profiling.Port, logger)
	}

	logger.Info("starting cyberrisk API on :%s", cfg.Server.Port)
	if err := handler.Router().Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// buildRepository selects PostgreSQL when DATABASE_URL is set, falling
// back to the in-memory store for local runs.
func buildRepository(cfg *config.Config, logger *internal.Logger) (ports.RunRepository, error) {
	if cfg.Database.URL == "" {
		logger.Warn("DATABASE_URL not set; simulation runs are stored in memory only")
		return memory.NewRunRepository(), nil
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(postgres.Schema); err != nil {
		return nil, err
	}
	logger.Info("simulation runs persisted to PostgreSQL")
	return postgres.NewRunRepository(db), nil
}

// serveOps exposes pprof and a liveness probe on a side port.
func serveOps(port string, logger *internal.Logger) {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Mount("/debug", chimiddleware.Profiler())

	logger.Info("ops server listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Error("ops server failed: %v", err)
	}
}
