package main

import (
	"fmt"
	"log"
	"os"

	"lifeos/internal/app"
	"lifeos/internal/config"
	"lifeos/internal/storage"
	"lifeos/internal/ui"
)

func main() {
	cfg, err := config.LoadOrCreate(config.ResolveConfigPath())
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	secondary, err := storage.NewFileBackend(cfg.StateDir)
	if err != nil {
		fmt.Printf("failed to open state dir: %v\n", err)
		os.Exit(1)
	}

	// The sync store is optional; the file backend carries the state when it
	// cannot be opened.
	var priority storage.Backend
	syncStore, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Printf("sync store unavailable: %v", err)
	} else {
		priority = syncStore
		defer syncStore.Close()
	}

	store := app.New(storage.NewGateway(priority, secondary))

	if err := ui.Run(store, cfg); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
