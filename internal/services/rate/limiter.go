package rate

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	defaultMaxRequests = 20
	defaultWindow      = time.Hour
	defaultKeyPrefix   = "rate"
)

// CounterStore is the fixed-window counter behind the limiter. Increment
// bumps the counter for key, starting a fresh window (count=1) when none
// is active, and reports the running count plus the window reset time.
// Implementations must be safe for concurrent callers.
type CounterStore interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, time.Time, error)
}

type Config struct {
	MaxRequests int
	Window      time.Duration
	KeyPrefix   string
}

type Decision struct {
	Limited       bool
	Limit         int
	Remaining     int
	ResetAt       time.Time
	RetryAfterSec int64
}

type Limiter struct {
	store CounterStore
	cfg   Config
	now   func() time.Time
}

func NewLimiter(store CounterStore, cfg Config) *Limiter {
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = defaultMaxRequests
	}
	if cfg.Window <= 0 {
		cfg.Window = defaultWindow
	}
	if strings.TrimSpace(cfg.KeyPrefix) == "" {
		cfg.KeyPrefix = defaultKeyPrefix
	}

	return &Limiter{
		store: store,
		cfg:   cfg,
		now:   time.Now,
	}
}

// Admit consumes one request unit for identifier. A limited decision means
// the caller's operation must not proceed; the counter has still been
// bumped, so hammering the endpoint never shortens the wait.
func (l *Limiter) Admit(ctx context.Context, identifier string) (Decision, error) {
	if strings.TrimSpace(identifier) == "" {
		return Decision{}, fmt.Errorf("rate limit identifier is required")
	}
	if l.store == nil {
		return Decision{}, fmt.Errorf("rate limiter store is nil")
	}

	count, resetAt, err := l.store.Increment(ctx, l.key(identifier), l.cfg.Window)
	if err != nil {
		return Decision{}, err
	}

	if count > int64(l.cfg.MaxRequests) {
		return Decision{
			Limited:       true,
			Limit:         l.cfg.MaxRequests,
			Remaining:     0,
			ResetAt:       resetAt,
			RetryAfterSec: ceilSeconds(resetAt.Sub(l.now())),
		}, nil
	}

	remaining := l.cfg.MaxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Limit:     l.cfg.MaxRequests,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}

func (l *Limiter) key(identifier string) string {
	return l.cfg.KeyPrefix + ":" + identifier
}

func ceilSeconds(d time.Duration) int64 {
	if d <= 0 {
		return 1
	}
	sec := int64(d / time.Second)
	if d%time.Second != 0 {
		sec++
	}
	if sec <= 0 {
		sec = 1
	}
	return sec
}
