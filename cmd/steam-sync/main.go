package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gameadvisor/database"
	"gameadvisor/internal/config"
	"gameadvisor/internal/http-api/repository"
	"gameadvisor/internal/ingestion/steam"
)

func main() {
	log.Println("===========================================")
	log.Println("   Steam Catalog Sync Starting...")
	log.Println("===========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("[Fatal] Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("[Fatal] Failed to connect to database: %v", err)
	}
	log.Println("[Database] Connected successfully")

	log.Println("[Config] Loaded configuration:")
	log.Printf("  - API Key: %s", maskAPIKey(cfg.SteamAPIKey))
	log.Printf("  - API URL: %s", cfg.SteamAPIURL)
	log.Printf("  - Store API URL: %s", cfg.SteamStoreAPIURL)
	log.Printf("  - Max Games: %d", cfg.SyncMaxGames)
	log.Printf("  - Worker Count: %d", cfg.SyncWorkers)
	log.Printf("  - Detail Interval: %s", cfg.SyncDetailInterval)

	client := steam.NewClient(cfg.SteamAPIKey,
		steam.WithBaseURLs(cfg.SteamAPIURL, cfg.SteamStoreAPIURL),
		steam.WithDetailInterval(cfg.SyncDetailInterval),
	)

	store := steam.NewCatalogStore(repository.NewGameRepo(db))
	syncService := steam.NewSyncService(client, store, steam.SyncConfig{
		MaxGames:    cfg.SyncMaxGames,
		WorkerCount: cfg.SyncWorkers,
	})
	log.Println("[SyncService] Service initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("[Shutdown] Received shutdown signal, stopping...")
		cancel()
	}()

	summary, err := syncService.Sync(ctx)
	if err != nil {
		log.Fatalf("[Sync] Error: %v", err)
	}

	log.Println("===========================================")
	log.Printf("[Sync] Completed: %d saved, %d skipped, %d failed",
		summary.Saved, summary.Skipped, summary.Failed)
	log.Println("===========================================")
}

func maskAPIKey(apiKey string) string {
	if apiKey == "" {
		return "(not set)"
	}
	if len(apiKey) <= 8 {
		return "***"
	}
	return apiKey[:4] + "..." + apiKey[len(apiKey)-4:]
}
