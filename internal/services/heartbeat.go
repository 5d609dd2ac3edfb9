// Package services holds the background tickers that keep the store
// fresh while the process runs: the session heartbeat and the story
// expiry sweep.
package services

import (
	"context"
	"time"

	"github.com/motmot/nexlink/backend/internal/store"
	"go.uber.org/zap"
)

// HeartbeatService refreshes the active session user's last-active
// timestamp on a fixed cadence so presence stays warm even when the
// client sends no traffic.
type HeartbeatService struct {
	store    *store.Store
	log      *zap.Logger
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewHeartbeatService creates a heartbeat service. A zero interval
// falls back to 30 seconds.
func NewHeartbeatService(st *store.Store, log *zap.Logger, interval time.Duration) *HeartbeatService {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &HeartbeatService{
		store:    st,
		log:      log,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins the periodic heartbeat
func (s *HeartbeatService) Start() {
	s.log.Info("Starting heartbeat service", zap.Duration("interval", s.interval))
	go s.run()
}

// Stop stops the heartbeat service
func (s *HeartbeatService) Stop() {
	s.log.Info("Stopping heartbeat service")
	s.cancel()
}

func (s *HeartbeatService) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.beat()
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *HeartbeatService) beat() {
	user := s.store.CurrentUser()
	if user == nil {
		return
	}
	s.store.Heartbeat(user.ID)
}
