// Command pulse is the growing-circle variant of the render smoke test.
package main

import (
	"log/slog"
	"os"

	"github.com/iburimskiy/render-smoke/internal/config"
	"github.com/iburimskiy/render-smoke/internal/game"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := config.Pulse()
	if err := game.Launch(cfg, os.Stdout, logger); err != nil {
		logger.Error("pulse failed", "error", err)
		game.ReportFatal(cfg.Title, err)
		os.Exit(1)
	}
}
