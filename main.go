package main

import (
	"log/slog"
	"os"

	"github.com/iburimskiy/render-smoke/internal/config"
	"github.com/iburimskiy/render-smoke/internal/game"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := config.Default()
	if err := game.Launch(cfg, os.Stdout, logger); err != nil {
		logger.Error("render smoke failed", "error", err)
		game.ReportFatal(cfg.Title, err)
		os.Exit(1)
	}
}
