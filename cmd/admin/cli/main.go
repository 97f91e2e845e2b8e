package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/cli"
	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/config"
	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app := cli.NewApp(cfg, logger)
	app.Run(context.Background())
}
