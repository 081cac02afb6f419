package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claude/ironlog/internal/analytics"
	"github.com/claude/ironlog/internal/catalog"
	"github.com/claude/ironlog/internal/config"
	"github.com/claude/ironlog/internal/generator"
	"github.com/claude/ironlog/internal/history"
	"github.com/claude/ironlog/internal/server"
	"github.com/claude/ironlog/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("IronLog starting", "version", Version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := storage.RunMigrations(cfg.Storage.Path); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	if *migrateOnly {
		log.Info("migrate-only: exiting")
		return
	}

	blobs, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		log.Error("failed to open blob store", "error", err)
		os.Exit(1)
	}
	defer blobs.Close()

	ctx := context.Background()
	store := history.New(blobs, thresholdsFromConfig(cfg), log)
	if err := store.Load(ctx); err != nil {
		log.Error("failed to load history", "error", err)
		os.Exit(1)
	}
	log.Info("history loaded", "sessions", len(store.Sessions()))

	cat := catalog.Default()

	seed := cfg.Generator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := generator.New(cat, generator.Policy{
		SquatDays: *cfg.Generator.SquatDays,
		HingeDays: *cfg.Generator.HingeDays,
		PressDays: *cfg.Generator.PressDays,
	}, rand.New(rand.NewSource(seed)))

	workouts, err := gen.Generate()
	if err != nil {
		log.Error("workout generation failed", "error", err)
		os.Exit(1)
	}
	log.Info("workout cycle generated", "days", len(workouts))

	srv := server.New(cat, store, workouts, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error("listen failed", "addr", addr, "error", err)
		os.Exit(1)
	}
	log.Info("server starting", "addr", addr)

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}

func thresholdsFromConfig(cfg *config.Config) analytics.Thresholds {
	th := analytics.DefaultThresholds()
	th.Improving = cfg.Analytics.ImprovingThreshold
	th.Plateau = cfg.Analytics.PlateauThreshold
	th.OverloadStep = cfg.Analytics.OverloadStep
	th.RPEFloor = cfg.Analytics.RPEFloor
	th.RPECeil = cfg.Analytics.RPECeil
	return th
}
