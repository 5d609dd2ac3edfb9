package services

import (
	"context"
	"time"

	"github.com/motmot/nexlink/backend/internal/store"
	"go.uber.org/zap"
)

// CleanupService handles periodic cleanup of expired stories
type CleanupService struct {
	store    *store.Store
	log      *zap.Logger
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewCleanupService creates a new story cleanup service
func NewCleanupService(st *store.Store, log *zap.Logger, interval time.Duration) *CleanupService {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = time.Hour
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &CleanupService{
		store:    st,
		log:      log,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins the periodic cleanup process
func (s *CleanupService) Start() {
	s.log.Info("Starting story cleanup service", zap.Duration("interval", s.interval))
	go s.run()
}

// Stop stops the cleanup service
func (s *CleanupService) Stop() {
	s.log.Info("Stopping story cleanup service")
	s.cancel()
}

func (s *CleanupService) run() {
	// Run immediately on startup
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *CleanupService) sweep() {
	start := time.Now()
	removed := s.store.CleanupStories()
	if removed == 0 {
		return
	}
	s.log.Info("Expired stories removed",
		zap.Int("count", removed),
		zap.Duration("took", time.Since(start)),
	)
}
