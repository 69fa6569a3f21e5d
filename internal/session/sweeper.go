package session

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Expirer is a store that can drop idle sessions
type Expirer interface {
	ExpireIdle(idle time.Duration) int
}

// Sweeper periodically expires abandoned sessions
type Sweeper struct {
	store  Expirer
	idle   time.Duration
	logger *zap.Logger
}

// NewSweeper creates a sweeper; idle <= 0 makes Run return immediately
func NewSweeper(store Expirer, idle time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{store: store, idle: idle, logger: logger}
}

// Sweep expires idle sessions once
func (s *Sweeper) Sweep() int {
	removed := s.store.ExpireIdle(s.idle)
	if removed > 0 {
		s.logger.Info("Expired idle sessions",
			zap.Int("removed", removed),
			zap.Duration("idle_timeout", s.idle),
		)
	}
	return removed
}

// Run sweeps every interval until ctx is done
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	if s.idle <= 0 {
		s.logger.Info("Session expiry disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Session sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
