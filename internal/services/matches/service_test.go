package matches

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/domain/model"
)

type matchStoreStub struct {
	rows []model.Match
	err  error
}

func (s *matchStoreStub) ListForParticipant(_ context.Context, _ string, _ int) ([]model.Match, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func TestListMapsOtherParticipant(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := &matchStoreStub{rows: []model.Match{
		{ID: "m1", ParticipantA: "u1", ParticipantB: "u2", PetID: "p1", MatchType: model.MatchTypeMutual, CreatedAt: created},
		{ID: "m2", ParticipantA: "u0", ParticipantB: "u1", PetID: "p2", MatchType: model.MatchTypeMutual, CreatedAt: created},
	}}
	svc := NewService(store)

	items, err := svc.List(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("unexpected item count: %d", len(items))
	}
	if items[0].OtherActorID != "u2" {
		t.Fatalf("first match other actor: got %s want u2", items[0].OtherActorID)
	}
	if items[1].OtherActorID != "u0" {
		t.Fatalf("second match other actor: got %s want u0", items[1].OtherActorID)
	}
	if items[0].PetID != "p1" {
		t.Fatalf("first match pet: got %s want p1", items[0].PetID)
	}
}

func TestListRejectsEmptyActor(t *testing.T) {
	svc := NewService(&matchStoreStub{})

	if _, err := svc.List(context.Background(), " ", 10); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestListSurfacesStoreFailure(t *testing.T) {
	storeErr := errors.New("boom")
	svc := NewService(&matchStoreStub{err: storeErr})

	if _, err := svc.List(context.Background(), "u1", 10); !errors.Is(err, storeErr) {
		t.Fatalf("expected store failure, got %v", err)
	}
}
