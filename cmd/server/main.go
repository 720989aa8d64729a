package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/creatorpage/internal/config"
	"github.com/creatorpage/internal/db"
	"github.com/creatorpage/internal/logging"
	"github.com/creatorpage/internal/middleware"
	"github.com/creatorpage/internal/router"
	"github.com/creatorpage/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		logger, _ = zap.NewProduction()
		logger.Warn("failed to build configured logger, fallback to zap production logger", zap.Error(err))
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	gdb, err := db.Open(db.Options{
		Driver:   cfg.Database.Driver,
		DSN:      cfg.Database.DSN,
		LogLevel: logging.GormLevel(cfg.Env),
	})
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	if err := db.Migrate(gdb); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	opts := router.Options{
		Directory:        service.NewDirectory(gdb),
		Logger:           logger,
		AllowedOrigins:   cfg.AllowedOrigins,
		ContactRateLimit: cfg.ContactRateLimit,
	}
	if cfg.RedisURL != "" {
		counter, err := middleware.NewRedisCounter(context.Background(), cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, contact rate limit disabled", zap.Error(err))
		} else {
			defer counter.Close()
			opts.RateCounter = counter
		}
	}

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router.SetupRouter(opts),
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("database", cfg.Database.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Info("server exited")
}
