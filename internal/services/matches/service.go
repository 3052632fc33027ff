package matches

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/domain/model"
)

var ErrValidation = errors.New("validation error")

type MatchStore interface {
	ListForParticipant(ctx context.Context, participantID string, limit int) ([]model.Match, error)
}

type Service struct {
	matchStore MatchStore
}

type MatchItem struct {
	ID           string
	OtherActorID string
	PetID        string
	MatchType    string
	CreatedAt    time.Time
}

func NewService(matchStore MatchStore) *Service {
	return &Service{matchStore: matchStore}
}

func (s *Service) List(ctx context.Context, actorID string, limit int) ([]MatchItem, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, ErrValidation
	}
	if s.matchStore == nil {
		return nil, fmt.Errorf("match store is nil")
	}

	rows, err := s.matchStore.ListForParticipant(ctx, actorID, limit)
	if err != nil {
		return nil, err
	}

	items := make([]MatchItem, 0, len(rows))
	for _, row := range rows {
		other := row.ParticipantA
		if other == actorID {
			other = row.ParticipantB
		}
		items = append(items, MatchItem{
			ID:           row.ID,
			OtherActorID: other,
			PetID:        row.PetID,
			MatchType:    row.MatchType,
			CreatedAt:    row.CreatedAt,
		})
	}
	return items, nil
}
