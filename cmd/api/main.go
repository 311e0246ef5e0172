package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jasongilchristp/xrm-by-json/internal/api"
	"github.com/jasongilchristp/xrm-by-json/internal/api/handlers"
	"github.com/jasongilchristp/xrm-by-json/internal/auth"
	"github.com/jasongilchristp/xrm-by-json/internal/config"
	"github.com/jasongilchristp/xrm-by-json/internal/logger"
	"github.com/jasongilchristp/xrm-by-json/internal/metrics"
	"github.com/jasongilchristp/xrm-by-json/internal/middleware"
	"github.com/jasongilchristp/xrm-by-json/internal/repository/csvfile"
	"github.com/jasongilchristp/xrm-by-json/internal/services"
	"github.com/jasongilchristp/xrm-by-json/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos := csvfile.NewRepositories(cfg.DataDir)

	userSvc := services.NewUserService(repos.Users, cfg)
	contactSvc := services.NewContactService(repos.Contacts)

	// First-run bootstrap: an empty users table gets the admin account.
	if err := userSvc.EnsureAdmin(); err != nil {
		log.Error("admin bootstrap", "err", err)
		os.Exit(1)
	}

	sessions, err := session.NewStore(filepath.Join(cfg.DataDir, "sessions.json"))
	if err != nil {
		log.Error("session store", "err", err)
		os.Exit(1)
	}
	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL)

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:      cfg,
		Auth:     handlers.NewAuthHandler(userSvc, tm, sessions),
		Contacts: handlers.NewContactsHandler(contactSvc),
		Users:    handlers.NewUsersHandler(userSvc),
		AuthMW:   middleware.NewAuthMiddleware(tm, sessions),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "data_dir", cfg.DataDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
