package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/anatolykoptev/go-kit/env"

	"github.com/lehmann314159/heimwerker/internal/catalog"
	"github.com/lehmann314159/heimwerker/internal/database"
	"github.com/lehmann314159/heimwerker/internal/handlers"
	"github.com/lehmann314159/heimwerker/internal/metrics"
	"github.com/lehmann314159/heimwerker/internal/prefs"
	"github.com/lehmann314159/heimwerker/internal/repository"
)

type config struct {
	Port            string
	DataDir         string
	RedisURL        string
	SessionLifetime time.Duration
	LogLevel        string
	ShutdownTimeout time.Duration
}

func loadConfig() config {
	return config{
		Port:            env.Str("PORT", "8080"),
		DataDir:         env.Str("DATA_DIR", "./data"),
		RedisURL:        env.Str("REDIS_URL", ""),
		SessionLifetime: env.Duration("SESSION_LIFETIME", 12*time.Hour),
		LogLevel:        env.Str("LOG_LEVEL", "info"),
		ShutdownTimeout: env.Duration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func main() {
	cfg := loadConfig()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		slog.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	db, err := database.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initialize database in %s: %w", cfg.DataDir, err)
	}
	defer db.Close()

	repo := repository.New(db)
	store := preferenceStore(cfg, repo)
	if r, ok := store.(*prefs.Redis); ok {
		defer r.Close()
	}

	tmpl, err := handlers.ParseTemplates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	sessions := scs.New()
	sessions.Lifetime = cfg.SessionLifetime
	sessions.Cookie.Name = "hm_session"
	sessions.Cookie.SameSite = http.SameSiteLaxMode

	cat := catalog.Default()
	logStats(context.Background(), cat, repo)

	router := handlers.NewRouter(handlers.Deps{
		Catalog:   cat,
		Prefs:     store,
		Sessions:  sessions,
		Templates: tmpl,
		Metrics:   metrics.New(),
		Logger:    logger,
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	slog.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Warn("graceful shutdown failed", slog.Any("error", err))
		_ = srv.Close()
	}
	slog.Info("server stopped")
	return nil
}

// preferenceStore picks Redis when configured and reachable, sqlite otherwise.
func preferenceStore(cfg config, repo *repository.Repository) prefs.Store {
	if cfg.RedisURL == "" {
		return repo
	}
	r, err := prefs.NewRedis(context.Background(), cfg.RedisURL, 365*24*time.Hour)
	if err != nil {
		slog.Warn("redis unavailable, using sqlite preferences", slog.Any("error", err))
		return repo
	}
	slog.Info("using redis preferences")
	return r
}

func logStats(ctx context.Context, cat *catalog.Catalog, repo *repository.Repository) {
	visitors, err := repo.CountVisitors(ctx)
	if err != nil {
		slog.Warn("count visitors", slog.Any("error", err))
		return
	}
	languages, err := repo.LanguageCounts(ctx)
	if err != nil {
		slog.Warn("count languages", slog.Any("error", err))
		return
	}
	slog.Info("catalog loaded",
		slog.Int("videos", cat.Len()),
		slog.Int("known_visitors", visitors),
		slog.Any("languages", languages),
	)
}
