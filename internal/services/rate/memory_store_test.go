package rate

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStorePurgeExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	ctx := context.Background()

	if _, _, err := store.Increment(ctx, "swipe:u1", time.Minute); err != nil {
		t.Fatalf("increment u1: %v", err)
	}
	if _, _, err := store.Increment(ctx, "swipe:u2", time.Hour); err != nil {
		t.Fatalf("increment u2: %v", err)
	}

	purged, err := store.PurgeExpired(ctx, now.Add(2*time.Minute))
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if purged != 1 {
		t.Fatalf("purged count: got %d want 1", purged)
	}
	if store.Len() != 1 {
		t.Fatalf("entries after purge: got %d want 1", store.Len())
	}
}

func TestMemoryStoreLazyResetReusesKey(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	ctx := context.Background()

	count, _, err := store.Increment(ctx, "swipe:u1", time.Minute)
	if err != nil || count != 1 {
		t.Fatalf("first increment: count=%d err=%v", count, err)
	}
	count, _, err = store.Increment(ctx, "swipe:u1", time.Minute)
	if err != nil || count != 2 {
		t.Fatalf("second increment: count=%d err=%v", count, err)
	}

	now = now.Add(time.Minute)

	count, resetAt, err := store.Increment(ctx, "swipe:u1", time.Minute)
	if err != nil {
		t.Fatalf("increment after expiry: %v", err)
	}
	if count != 1 {
		t.Fatalf("expired key should restart at 1, got %d", count)
	}
	if !resetAt.Equal(now.Add(time.Minute)) {
		t.Fatalf("reset_at after expiry: got %v want %v", resetAt, now.Add(time.Minute))
	}
}
