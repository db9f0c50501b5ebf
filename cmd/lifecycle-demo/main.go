// Command lifecycle-demo runs a small API server showing the three
// lifecycle header trigger strategies. GET /api/v1/users is deprecated with
// a sunset date and migration link; GET /api/v2/users is its replacement.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arkline/lifecycle"
	"github.com/arkline/lifecycle/internal/config"
	"github.com/arkline/lifecycle/internal/httpmw"
	"github.com/arkline/lifecycle/internal/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	slog.SetDefault(logger.New(cfg.Logging))
	slog.Info("config loaded",
		"port", cfg.Server.Port,
		"strategy", cfg.Lifecycle.Strategy,
		"policy_file", cfg.Lifecycle.PolicyFile,
	)

	reg := lifecycle.NewRegistry()
	if cfg.Lifecycle.PolicyFile != "" {
		if err := reg.LoadPolicyFile(cfg.Lifecycle.PolicyFile); err != nil {
			return fmt.Errorf("policy: %w", err)
		}
	} else if err := attachDefaults(reg); err != nil {
		return fmt.Errorf("lifecycle: %w", err)
	}

	strategy, err := lifecycle.ParseStrategy(cfg.Lifecycle.Strategy)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(httpmw.RequestID)
	r.Use(httpmw.Logger)

	api, err := lifecycle.Setup(r, reg, strategy)
	if err != nil {
		return err
	}

	mountRoutes(api, reg, strategy)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	addr := ":" + cfg.Server.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-done
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// attachDefaults marks the v1 users endpoint deprecated when no policy file
// is configured.
func attachDefaults(reg *lifecycle.Registry) error {
	return reg.Deprecated(http.MethodGet, "/api/v1/users", lifecycle.Config{
		DeprecatedAt: lifecycle.ISO("2024-01-15T00:00:00Z"),
		SunsetAt:     lifecycle.ISO("2024-06-15T00:00:00Z"),
		MigrationURL: "https://api.example.com/docs/migration",
		Replacement:  "GET /api/v2/users",
		Reason:       "Moving to v2 API with enhanced user profiles",
	})
}

// mountRoutes registers the demo endpoints. With the manual strategy the v1
// handler opts in by calling InjectHeaders itself; the other strategies
// inject without handler involvement.
func mountRoutes(r chi.Router, reg *lifecycle.Registry, strategy lifecycle.Strategy) {
	usersV1 := func(w http.ResponseWriter, req *http.Request) {
		if strategy == lifecycle.StrategyManual {
			reg.InjectHeaders(w, req)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"users":[],"api_version":"v1"}`))
	}
	usersV2 := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"users":[],"api_version":"v2"}`))
	}

	r.Get("/api/v1/users", usersV1)
	r.Get("/api/v2/users", usersV2)
}
