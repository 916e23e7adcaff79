package steam

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// GameStore is the persistence contract the sync needs: an idempotent,
// transactional upsert of one canonical record with its requirements.
type GameStore interface {
	UpsertGame(ctx context.Context, record *GameRecord) (int64, error)
}

// SyncSummary aggregates the outcome of one catalog sync run.
type SyncSummary struct {
	Saved   int
	Skipped int
	Failed  int
}

// SyncConfig holds the knobs for a sync run.
type SyncConfig struct {
	// MaxGames caps how many catalog entries are processed per run.
	// Zero means no cap.
	MaxGames int
	// WorkerCount bounds concurrent detail processing. Zero means 4.
	WorkerCount int
}

// SyncService drives the catalog through fetch, normalization and persistence.
// Per-item failures are logged and counted; a run only aborts when the first
// catalog page cannot be fetched at all.
type SyncService struct {
	client      *Client
	store       GameStore
	maxGames    int
	workerCount int

	mu      sync.Mutex
	summary SyncSummary
}

// NewSyncService wires an explicitly constructed client and store together.
func NewSyncService(client *Client, store GameStore, config SyncConfig) *SyncService {
	workerCount := config.WorkerCount
	if workerCount == 0 {
		workerCount = 4
	}
	return &SyncService{
		client:      client,
		store:       store,
		maxGames:    config.MaxGames,
		workerCount: workerCount,
	}
}

// Sync runs one full catalog pass and returns the aggregated counts.
func (s *SyncService) Sync(ctx context.Context) (SyncSummary, error) {
	s.mu.Lock()
	s.summary = SyncSummary{}
	s.mu.Unlock()

	apps, err := s.client.FetchAppList(ctx)
	if err != nil {
		return SyncSummary{}, fmt.Errorf("catalog listing unreachable: %w", err)
	}

	if s.maxGames > 0 && len(apps) > s.maxGames {
		apps = apps[:s.maxGames]
	}

	log.Printf("[SyncService] Processing %d catalog entries (%d workers)...", len(apps), s.workerCount)

	pool := NewWorkerPool(ctx, s.workerCount)
	pool.Start()

	for _, app := range apps {
		app := app
		pool.Submit(func(ctx context.Context) error {
			s.processApp(ctx, app)
			return nil
		})
	}

	pool.Wait()

	summary := s.snapshot()
	log.Printf("[SyncService] Completed: %d saved, %d skipped, %d failed", summary.Saved, summary.Skipped, summary.Failed)
	return summary, nil
}

// processApp takes one catalog entry through details, normalization and
// upsert. Each item is validated then persisted atomically; nothing here
// spans more than one item.
func (s *SyncService) processApp(ctx context.Context, app AppEntry) {
	if app.AppID == 0 {
		log.Printf("[SyncService] Skipping catalog entry without identifier (%q)", app.Name)
		s.markSkipped()
		return
	}

	raw, err := s.client.FetchAppDetails(ctx, app.AppID)
	if err != nil {
		log.Printf("[SyncService] Details unavailable for app %d: %v", app.AppID, err)
		s.markSkipped()
		return
	}
	if raw == nil {
		log.Printf("[SyncService] No usable details for app %d, skipping", app.AppID)
		s.markSkipped()
		return
	}

	record, err := BuildGameRecord(raw)
	if err != nil {
		log.Printf("[SyncService] App %d failed validation: %v", app.AppID, err)
		s.markSkipped()
		return
	}

	gameID, err := s.store.UpsertGame(ctx, record)
	if err != nil {
		log.Printf("[SyncService] Failed to persist %q (app %d): %v", record.Name, app.AppID, err)
		s.markFailed()
		return
	}

	log.Printf("[SyncService] Saved %q (id %d, app %d)", record.Name, gameID, app.AppID)
	s.markSaved()
}

func (s *SyncService) markSaved() {
	s.mu.Lock()
	s.summary.Saved++
	s.mu.Unlock()
}

func (s *SyncService) markSkipped() {
	s.mu.Lock()
	s.summary.Skipped++
	s.mu.Unlock()
}

func (s *SyncService) markFailed() {
	s.mu.Lock()
	s.summary.Failed++
	s.mu.Unlock()
}

func (s *SyncService) snapshot() SyncSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}
