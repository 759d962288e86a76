package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hitforum/forum-system/internal/api"
	"github.com/hitforum/forum-system/internal/core/service"
	opshttp "github.com/hitforum/forum-system/internal/infrastructure/http"
	"github.com/hitforum/forum-system/internal/infrastructure/snapshot"
	"github.com/hitforum/forum-system/internal/pkg/config"
	"github.com/hitforum/forum-system/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := os.MkdirAll(cfg.Snapshot.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Snapshot.Dir).Msg("cannot create snapshot directory")
	}

	// --- Storage ---
	userRepo := snapshot.NewUserRepository(filepath.Join(cfg.Snapshot.Dir, "users.json"), log)
	commentRepo, err := snapshot.NewCommentRepository(filepath.Join(cfg.Snapshot.Dir, "comments.json"), log)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open comment snapshot")
	}
	postRepo, err := snapshot.NewPostRepository(filepath.Join(cfg.Snapshot.Dir, "posts.json"), commentRepo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open post snapshot")
	}

	// --- Services ---
	userService := service.NewUserService(userRepo, log)
	postService := service.NewPostService(postRepo, commentRepo, userRepo, log)
	commentService := service.NewCommentService(commentRepo, userRepo, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Ops HTTP surface (health + metrics) ---
	ops := opshttp.NewRouter(cfg.Snapshot.Dir)
	go func() {
		if err := ops.Start(cfg.Ops.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("ops server failed")
		}
	}()

	// --- Request dispatcher (blocks until shutdown) ---
	dispatcher := api.NewDispatcher(cfg.Server.Addr, cfg.Server.ReadTimeout, userService, postService, commentService, log)
	if err := dispatcher.ListenAndServe(ctx); err != nil {
		log.Fatal().Err(err).Msg("dispatcher failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := ops.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("ops server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
