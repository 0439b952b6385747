package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"item-checklist/config"
	_ "item-checklist/docs" // Swagger docs
	"item-checklist/internal/checklist"
	"item-checklist/internal/httpserver"
	memoryRepo "item-checklist/internal/item/repository/memory"
	"item-checklist/internal/item/usecase"
	"item-checklist/internal/middleware"
	"item-checklist/pkg/log"
	"item-checklist/pkg/stamp"
)

// @title       Item Checklist API
// @description Items whose descriptions carry markdown-style checklists.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Item Checklist API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Timestamp stamper
	stamper, err := stamp.New(cfg.Checklist.Timezone, cfg.Checklist.TimestampLayout)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Checklist.Timezone, err)
		stamper, _ = stamp.New("UTC", cfg.Checklist.TimestampLayout)
	}

	// 4. Item domain
	itemRepo := memoryRepo.New(logger)
	itemUC := usecase.New(itemRepo, checklist.New(), stamper, logger)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ItemUseCase: itemUC,
		Middleware: middleware.Config{
			RateLimitPerMin: cfg.RateLimit.PerMin,
			RateLimitBurst:  cfg.RateLimit.Burst,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
