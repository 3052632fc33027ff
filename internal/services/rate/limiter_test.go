package rate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	redrepo "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/repo/redis"
)

func TestAdmitEnforcesFixedWindow(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	store := NewMemoryStore()
	store.now = func() time.Time { return base }

	limiter := NewLimiter(store, Config{
		MaxRequests: 20,
		Window:      time.Hour,
		KeyPrefix:   "swipe",
	})
	limiter.now = func() time.Time { return base }

	ctx := context.Background()

	for i := 1; i <= 20; i++ {
		decision, err := limiter.Admit(ctx, "u1")
		if err != nil {
			t.Fatalf("admit call #%d: %v", i, err)
		}
		if decision.Limited {
			t.Fatalf("call #%d should be admitted", i)
		}
		if decision.Remaining != 20-i {
			t.Fatalf("call #%d remaining: got %d want %d", i, decision.Remaining, 20-i)
		}
		if !decision.ResetAt.Equal(base.Add(time.Hour)) {
			t.Fatalf("call #%d reset_at: got %v want %v", i, decision.ResetAt, base.Add(time.Hour))
		}
	}

	decision, err := limiter.Admit(ctx, "u1")
	if err != nil {
		t.Fatalf("admit call #21: %v", err)
	}
	if !decision.Limited {
		t.Fatalf("call #21 should be limited")
	}
	if decision.Remaining != 0 {
		t.Fatalf("limited remaining: got %d want 0", decision.Remaining)
	}
	if decision.RetryAfterSec <= 0 {
		t.Fatalf("expected positive retry_after, got %d", decision.RetryAfterSec)
	}
}

func TestAdmitResetsAfterWindowElapses(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	limiter := NewLimiter(store, Config{
		MaxRequests: 2,
		Window:      time.Minute,
		KeyPrefix:   "swipe",
	})
	limiter.now = func() time.Time { return now }

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := limiter.Admit(ctx, "u1"); err != nil {
			t.Fatalf("admit #%d: %v", i+1, err)
		}
	}

	now = now.Add(time.Minute)

	decision, err := limiter.Admit(ctx, "u1")
	if err != nil {
		t.Fatalf("admit after window: %v", err)
	}
	if decision.Limited {
		t.Fatalf("expected fresh window after reset")
	}
	if decision.Remaining != 1 {
		t.Fatalf("fresh window remaining: got %d want 1", decision.Remaining)
	}
}

func TestAdmitIsolatesIdentifiers(t *testing.T) {
	store := NewMemoryStore()
	limiter := NewLimiter(store, Config{
		MaxRequests: 1,
		Window:      time.Hour,
		KeyPrefix:   "swipe",
	})

	ctx := context.Background()

	if _, err := limiter.Admit(ctx, "u1"); err != nil {
		t.Fatalf("admit u1: %v", err)
	}
	decision, err := limiter.Admit(ctx, "u2")
	if err != nil {
		t.Fatalf("admit u2: %v", err)
	}
	if decision.Limited {
		t.Fatalf("u2 should not inherit u1's counter")
	}
}

func TestAdmitSafeForConcurrentCallers(t *testing.T) {
	store := NewMemoryStore()
	limiter := NewLimiter(store, Config{
		MaxRequests: 50,
		Window:      time.Hour,
		KeyPrefix:   "swipe",
	})

	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			decision, err := limiter.Admit(ctx, "u1")
			if err != nil {
				t.Errorf("concurrent admit: %v", err)
				return
			}
			if !decision.Limited {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if admitted != 50 {
		t.Fatalf("admitted count under concurrency: got %d want 50", admitted)
	}
}

func TestAdmitBlocksOnRedisBackedStore(t *testing.T) {
	mr, client := newMiniRedisClient(t)
	defer mr.Close()
	defer func() { _ = client.Close() }()

	limiter := NewLimiter(redrepo.NewRateRepo(client), Config{
		MaxRequests: 2,
		Window:      10 * time.Second,
		KeyPrefix:   "swipe",
	})

	ctx := context.Background()

	for i := 0; i < 2; i++ {
		decision, err := limiter.Admit(ctx, "u42")
		if err != nil {
			t.Fatalf("admit #%d: %v", i+1, err)
		}
		if decision.Limited {
			t.Fatalf("unexpected limit on admit #%d", i+1)
		}
	}

	decision, err := limiter.Admit(ctx, "u42")
	if err != nil {
		t.Fatalf("admit #3: %v", err)
	}
	if !decision.Limited {
		t.Fatalf("expected limit on third admit in 10s window")
	}
	if decision.RetryAfterSec <= 0 {
		t.Fatalf("expected positive retry_after, got %d", decision.RetryAfterSec)
	}

	mr.FastForward(11 * time.Second)

	decision, err = limiter.Admit(ctx, "u42")
	if err != nil {
		t.Fatalf("admit after ttl expiry: %v", err)
	}
	if decision.Limited {
		t.Fatalf("expected fresh window after ttl expiry")
	}
}

func newMiniRedisClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}

	client := goredis.NewClient(&goredis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}
