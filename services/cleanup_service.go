package services

import (
	"log"

	"github.com/robfig/cron/v3"
	"github.com/spacemen100/house-haven-market-sub000/wizard"
)

// CleanupService periodically prunes abandoned wizard drafts. Staged image
// bytes live only in memory, so dropping the session releases everything.
type CleanupService struct {
	cron  *cron.Cron
	store *wizard.Store
}

func NewCleanupService(store *wizard.Store) *CleanupService {
	return &CleanupService{
		cron:  cron.New(),
		store: store,
	}
}

// Start schedules the hourly prune and launches the scheduler.
func (s *CleanupService) Start() error {
	_, err := s.cron.AddFunc("@hourly", s.pruneDrafts)
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Println("✅ Draft cleanup scheduler started")
	return nil
}

// Stop halts the scheduler, waiting for a running job to finish.
func (s *CleanupService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *CleanupService) pruneDrafts() {
	pruned := s.store.PruneExpired(wizard.DraftTTL)
	if pruned > 0 {
		log.Printf("🧹 Pruned %d expired draft(s), %d remaining", pruned, s.store.Len())
	}
}
