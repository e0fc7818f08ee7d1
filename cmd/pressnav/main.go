package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressnav/pressnav/internal/config"
	"github.com/pressnav/pressnav/internal/database"
	"github.com/pressnav/pressnav/internal/logging"
	"github.com/pressnav/pressnav/internal/store"
	"github.com/pressnav/pressnav/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pressnav: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.UI.DebugLog, cfg.UI.LogPath)
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir data dir: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := database.SeedDefaults(context.Background(), db); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	st := store.New(db, log)
	p := tui.NewProgram(cfg, st, log, nil)

	watcher, err := store.NewWatcher(st, cfg.Database.Path, log)
	if err != nil {
		return fmt.Errorf("watch database: %w", err)
	}
	defer watcher.Close()
	watcher.Start(p)

	_, err = p.Run()
	return err
}
