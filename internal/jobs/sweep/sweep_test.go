package sweep

import (
	"context"
	"errors"
	"testing"
	"time"
)

type purgerStub struct {
	calls int
	err   error
}

func (s *purgerStub) PurgeExpired(_ context.Context, _ time.Time) (int, error) {
	s.calls++
	return 3, s.err
}

func TestRunPurgesOnce(t *testing.T) {
	purger := &purgerStub{}
	job := New(purger, time.Minute, nil)

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("run sweep: %v", err)
	}
	if purger.calls != 1 {
		t.Fatalf("purge calls: got %d want 1", purger.calls)
	}
}

func TestRunSurfacesPurgeFailure(t *testing.T) {
	purgeErr := errors.New("store down")
	job := New(&purgerStub{err: purgeErr}, time.Minute, nil)

	if err := job.Run(context.Background()); !errors.Is(err, purgeErr) {
		t.Fatalf("expected purge failure, got %v", err)
	}
}

func TestRunLoopStopsOnContextCancel(t *testing.T) {
	purger := &purgerStub{}
	job := New(purger, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- job.RunLoop(ctx)
	}()

	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run loop: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("run loop did not stop after cancel")
	}

	if purger.calls < 2 {
		t.Fatalf("expected initial run plus at least one tick, got %d", purger.calls)
	}
}

func TestRunWithoutPurgerIsNoop(t *testing.T) {
	job := New(nil, time.Minute, nil)

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("nil purger run: %v", err)
	}
}
