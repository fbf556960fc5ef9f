package main

import (
	"net/http"
	"os"
	"time"

	"pet-adoption-store/internal/adapters/storage/postgres"
	"pet-adoption-store/internal/platform/logger"
	"pet-adoption-store/internal/router"
)

func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	opts := router.Options{Log: log}

	// Con DB_DSN levantamos Postgres y corremos migraciones al arrancar.
	// Sin DSN el router decide solo (REST remoto o in-memory).
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		db, err := postgres.Open(dsn)
		if err != nil {
			log.Error("db open failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		defer db.Close()

		dir := os.Getenv("MIGRATIONS_DIR")
		if dir == "" {
			dir = "migrations"
		}
		if err := postgres.RunMigrations(db, dir); err != nil {
			log.Error("migrations failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}

		opts.DB = db
	}

	r := router.NewRouter(opts)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
