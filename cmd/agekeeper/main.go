package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dkozyrev/agekeeper/internal/config"
	"github.com/dkozyrev/agekeeper/internal/daemon"
	"github.com/dkozyrev/agekeeper/internal/logging"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		cancel()
	}()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Logger
	logg, logClose, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	if err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}
	defer logClose.Close()

	logg.Info("agekeeper starting",
		"storage", cfg.Storage.Directory,
		"archive", cfg.Archive.Directory,
		"minAgeDays", cfg.Thresholds.FilesOldDays,
		"freeSpaceThreshold", cfg.Thresholds.FreeSpace,
		"checkTimeDelay", cfg.Sweep.CheckTimeDelay,
	)

	// Sweep loop (scan + evict)
	runner := daemon.New(cfg, logg)
	if err := runner.Start(ctx); err != nil {
		logg.Error("daemon failed", "error", err)
		logClose.Close()
		os.Exit(1)
	}

	log.Println("exit complete")
}
