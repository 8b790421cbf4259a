package services

import (
	"context"
	"log"

	"github.com/Omulosi/iReporter/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CleanupService prunes blacklist entries whose token expiry has passed.
// Expired tokens are rejected at decode time before the blacklist is
// consulted, so the sweep never resurrects a revoked token.
type CleanupService struct {
	blacklistRepo repositories.BlacklistRepository
	cron          *cron.Cron
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(blacklistRepo repositories.BlacklistRepository) *CleanupService {
	return &CleanupService{
		blacklistRepo: blacklistRepo,
	}
}

// Start schedules the daily blacklist sweep (03:30)
func (s *CleanupService) Start() {
	s.cron = cron.New()
	s.cron.AddFunc("30 3 * * *", s.Sweep)
	s.cron.Start()
	log.Println("🚀 CleanupService started (blacklist sweep daily at 03:30)")
}

// Stop stops the scheduler
func (s *CleanupService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	log.Println("🛑 CleanupService stopped")
}

// Sweep deletes blacklist entries for tokens that have already expired
func (s *CleanupService) Sweep() {
	deleted, err := s.blacklistRepo.DeleteExpired(context.Background())
	if err != nil {
		log.Printf("❌ Blacklist sweep error: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("✅ Blacklist sweep removed %d expired entries", deleted)
	}
}
