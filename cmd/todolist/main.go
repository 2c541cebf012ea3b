package main

import (
	"fmt"
	"os"

	"todolist/internal/config"
	"todolist/internal/logging"
	"todolist/internal/storage"
	"todolist/internal/ui"
)

func main() {
	configPath := config.ResolveConfigPath()
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Printf("failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Printf("failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	tasks, err := storage.NewTaskStore(store, cfg.StorageKey, logger.Logger)
	if err != nil {
		fmt.Printf("failed to prepare task store: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", "config", configPath, "db", cfg.DBPath)
	if err := ui.Run(tasks, cfg, logger.Logger); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
