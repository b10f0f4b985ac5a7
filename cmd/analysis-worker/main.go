package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/config"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/db"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/extraction"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/llm"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/menu"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/storage"
	logx "github.com/billysysco04-bit/BHdesignsbyBILLY/pkg/logger"
)

// Standalone analysis worker. The API binary embeds the same loop; run
// this one to scale extraction separately from request serving.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("invalid configuration")
	}
	logx.Init(cfg.AppEnv)

	logx.Info().Msg("analysis worker starting")

	pool := db.ConnectPostgres(cfg.DatabaseURL)
	defer pool.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r2Client, err := storage.NewR2Client(ctx, cfg)
	if err != nil {
		logx.Fatal().Err(err).Msg("R2 init failed")
	}

	llmClient := llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	menuRepo := menu.NewPostgresRepository(pool)

	service := extraction.NewService(menuRepo, r2Client, llmClient)
	service.Run(ctx)
}
