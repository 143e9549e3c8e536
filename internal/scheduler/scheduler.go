package scheduler

import (
	"context"
	"time"

	"github.com/sgrinev/habit-streak-bot/internal/logger"
)

// Ticker runs one scan of due reminders.
type Ticker interface {
	Tick(ctx context.Context, now time.Time) (int, error)
}

// Scheduler drives the reminder service on a fixed interval. A tick
// that fires late or is skipped delivers nothing for the missed minute;
// there is no catch-up.
type Scheduler struct {
	svc      Ticker
	interval time.Duration
}

// New creates a Scheduler. A non-positive interval falls back to one minute.
func New(svc Ticker, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{svc: svc, interval: interval}
}

// Run ticks until ctx is cancelled. It blocks, so callers start it in
// its own goroutine.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger.Log.Infow("reminder scheduler started", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			logger.Log.Infow("reminder scheduler stopped")
			return
		case now := <-ticker.C:
			delivered, err := s.svc.Tick(ctx, now)
			if err != nil {
				logger.Log.Errorw("reminder tick failed", "error", err)
				continue
			}
			if delivered > 0 {
				logger.Log.Infow("reminders delivered", "count", delivered)
			}
		}
	}
}
