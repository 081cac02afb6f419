// ironlog-mcp serves the workout data over MCP on stdio, for use as a local
// tool server by LLM clients. Logs go to stderr; stdout carries the
// protocol.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/claude/ironlog/internal/analytics"
	"github.com/claude/ironlog/internal/catalog"
	"github.com/claude/ironlog/internal/config"
	"github.com/claude/ironlog/internal/history"
	ironmcp "github.com/claude/ironlog/internal/mcp"
	"github.com/claude/ironlog/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := storage.RunMigrations(cfg.Storage.Path); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}

	blobs, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		log.Error("failed to open blob store", "error", err)
		os.Exit(1)
	}
	defer blobs.Close()

	th := analytics.DefaultThresholds()
	th.Improving = cfg.Analytics.ImprovingThreshold
	th.Plateau = cfg.Analytics.PlateauThreshold
	th.OverloadStep = cfg.Analytics.OverloadStep
	th.RPEFloor = cfg.Analytics.RPEFloor
	th.RPECeil = cfg.Analytics.RPECeil

	store := history.New(blobs, th, log)
	if err := store.Load(context.Background()); err != nil {
		log.Error("failed to load history", "error", err)
		os.Exit(1)
	}

	s := ironmcp.New(catalog.Default(), store, Version, log)
	log.Info("IronLog MCP server on stdio", "version", Version)
	if err := server.ServeStdio(s); err != nil {
		log.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}
