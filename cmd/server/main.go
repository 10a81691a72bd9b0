package main

import (
	"context"
	"errors"
	"flight-analytics-service/internal/api"
	"flight-analytics-service/internal/app"
	"flight-analytics-service/internal/config"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires concrete adapters (PostgreSQL or in-memory) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Migrations run on startup so a fresh database is usable immediately.
	repos, closeRepos, err := app.OpenRepositories(ctx, cfg, true)
	if err != nil {
		log.Fatal(err)
	}
	defer closeRepos()

	router := api.NewRouter(api.Deps{
		Analytics: app.NewAnalytics(cfg, repos),
		Importer:  app.NewImporter(cfg, repos),
		Audit:     repos.Audit,
	})

	// Uploads of the full airports file can take a while to commit.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("Server listening addr=:%s env=%s store=%s", cfg.Port, cfg.Environment, cfg.Store)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
