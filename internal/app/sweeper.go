package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tutorhub/internal/service"
)

// SweepInterval is fixed; the sweep cadence is not part of the API surface
const SweepInterval = 30 * time.Second

// Sweeper runs the session auto-completion sweep in the background
type Sweeper struct {
	sessions *service.SessionService
	logger   *zap.Logger
	stopChan chan struct{}
}

func NewSweeper(sessions *service.SessionService, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		sessions: sessions,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start launches the background sweep loop
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info("Starting session sweeper", zap.Duration("interval", SweepInterval))
	go s.run(ctx)
}

// Stop halts the background loop
func (s *Sweeper) Stop() {
	s.logger.Info("Stopping session sweeper")
	close(s.stopChan)
}

func (s *Sweeper) run(ctx context.Context) {
	// First pass right at startup
	s.sweep(ctx)

	ticker := time.NewTicker(SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stopChan:
			s.logger.Info("Session sweeper stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Session sweeper cancelled")
			return
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	completed, err := s.sessions.Sweep(ctx, time.Now())
	if err != nil {
		s.logger.Error("Session sweep failed", zap.Error(err))
		return
	}
	if completed > 0 {
		s.logger.Info("Session sweep done", zap.Int("completed", completed))
	}
}
