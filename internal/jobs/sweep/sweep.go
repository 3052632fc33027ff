package sweep

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Purger removes rate-limit entries whose window has elapsed. The
// redis-backed store expires keys by TTL and purges nothing.
type Purger interface {
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}

// Job bounds the rate limiter's memory by sweeping expired window
// entries. It is owned by the app lifecycle: RunLoop sweeps once at
// start, then on every tick until the context is canceled.
type Job struct {
	purger   Purger
	interval time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

func New(purger Purger, interval time.Duration, logger *zap.Logger) *Job {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Job{
		purger:   purger,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (j *Job) Run(ctx context.Context) error {
	if j.purger == nil {
		return nil
	}

	purged, err := j.purger.PurgeExpired(ctx, j.now().UTC())
	if err != nil {
		return fmt.Errorf("purge expired rate entries: %w", err)
	}
	if purged > 0 {
		j.logger.Info("rate entry sweep completed", zap.Int("purged", purged))
	}

	return nil
}

func (j *Job) RunLoop(ctx context.Context) error {
	if err := j.Run(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := j.Run(ctx); err != nil {
				return err
			}
		}
	}
}
