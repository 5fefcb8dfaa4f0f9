package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auditforce/internal/ai"
	"auditforce/internal/auth"
	"auditforce/internal/config"
	"auditforce/internal/httpapi"
	"auditforce/internal/obs"
	"auditforce/internal/store"
	"auditforce/pkg/logger"
	"auditforce/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	slog.SetDefault(log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	authManager, err := auth.NewManager(cfg.Auth)
	if err != nil {
		log.Error("auth init failed", "err", err)
		os.Exit(1)
	}

	// State lives for the process lifetime only; every boot starts from the
	// demo snapshot.
	st := store.New(store.DemoSeed())

	// Token denylist: shared via Redis when configured, in-memory otherwise.
	var revoker auth.Revoker = auth.NewMemoryRevoker()
	if cfg.RedisEnabled() {
		rdb, err := utils.OpenRedis(rootCtx, utils.RedisConfig{Addr: cfg.RedisAddr()})
		if err != nil {
			log.Error("redis init failed", "err", err)
			os.Exit(1)
		}
		defer rdb.Close()
		revoker = auth.NewRedisRevoker(rdb)
	}

	// The AI collaborator is optional: without a key the endpoints answer
	// with the localized fallback instead of failing startup.
	var assistant *ai.Assistant
	if gemini, err := ai.NewClient(cfg.AI.Model); err != nil {
		log.Warn("ai disabled", "err", err)
	} else {
		assistant = ai.NewAssistant(gemini)
	}

	obs.Init()

	// Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))
	r.Use(obs.Middleware())

	registerRoutes(r, httpapi.Handlers{
		Store:     st,
		Auth:      authManager,
		Revoker:   revoker,
		Assistant: assistant,
	}, auth.RequireAccessToken(authManager, revoker))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      2 * time.Minute, // AI generation can be slow
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}

	_ = logger.ShutdownFlush(shutdownCtx, 2*time.Second)
}
