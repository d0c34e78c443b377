package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/arbiterhq/arbiter/internal/admin"
	"github.com/arbiterhq/arbiter/internal/config"
	"github.com/arbiterhq/arbiter/internal/dispatch"
	"github.com/arbiterhq/arbiter/internal/httpapi"
	"github.com/arbiterhq/arbiter/internal/match"
	"github.com/arbiterhq/arbiter/internal/obslog"
	"github.com/arbiterhq/arbiter/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	logger := obslog.L()
	defer func() { _ = logger.Sync() }()

	var (
		store      match.Store
		adminStore admin.Store
		rdb        *redis.Client
	)
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal("redis url parse error", zap.Error(err))
		}
		rdb = redis.NewClient(opts)
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			cancel()
			logger.Fatal("redis ping error", zap.Error(err))
		}
		cancel()
		store = match.NewRedisStore(rdb, cfg.MatchTTL())
		adminStore = admin.NewRedisStore(rdb)
	} else {
		logger.Warn("redis not configured, using in-memory registry")
		store = match.NewMemoryStore()
		adminStore = admin.NewMemoryStore()
	}

	manager := match.NewManager(store, logger)
	if cfg.DatabaseURL != "" {
		archive, err := match.NewArchive(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("archive init error", zap.Error(err))
		}
		defer func() { _ = archive.Close() }()
		manager.AttachArchive(archive)
	}

	controller := admin.NewController(adminStore, logger)
	if err := controller.Seed(context.Background(), cfg.InitialAdmin); err != nil {
		logger.Fatal("admin seed error", zap.Error(err))
	}

	dispatcher := dispatch.New(manager, controller, logger)
	api := httpapi.NewServer(dispatcher, render.NewBoardRenderer(), logger)

	server := &fasthttp.Server{
		Handler: api.Handler(),
		Name:    "arbiter",
	}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.ListenAddr))
		if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")
	if err := server.Shutdown(); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
