package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RateRepo is the shared fixed-window counter store for horizontally
// scaled deployments. Window expiry is handled by key TTL, so the
// periodic sweep has nothing to purge here.
type RateRepo struct {
	client *goredis.Client
	now    func() time.Time
}

func NewRateRepo(client *goredis.Client) *RateRepo {
	return &RateRepo{
		client: client,
		now:    time.Now,
	}
}

func (r *RateRepo) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	if r.client == nil {
		return 0, time.Time{}, fmt.Errorf("redis client is nil")
	}
	if key == "" || window <= 0 {
		return 0, time.Time{}, fmt.Errorf("invalid rate window payload")
	}

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("increment rate key: %w", err)
	}
	if count == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, time.Time{}, fmt.Errorf("set rate key ttl: %w", err)
		}
	}

	ttl, err := r.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("read rate key ttl: %w", err)
	}
	if ttl < 0 {
		ttl = window
	}

	return count, r.now().UTC().Add(ttl), nil
}

func (r *RateRepo) PurgeExpired(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}
