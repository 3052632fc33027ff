package swipes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/domain/enums"
	"github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/domain/model"
	pgrepo "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/repo/postgres"
)

const ReasonInvalidTiming = "invalid timing"

const defaultMinSeparation = time.Second

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrValidation      = errors.New("validation error")
	ErrPetNotFound     = errors.New("pet not found")
)

type SwipeStore interface {
	Create(ctx context.Context, actorID, targetID string, targetType enums.TargetType, direction enums.Direction, now time.Time) (model.Swipe, error)
	FindReciprocal(ctx context.Context, ownerID, actorID string) (model.Swipe, error)
}

type MatchStore interface {
	Find(ctx context.Context, participantX, participantY, petID, matchType string) (model.Match, error)
	InsertUnique(ctx context.Context, participantX, participantY, petID, matchType string, now time.Time) (model.Match, error)
}

type ListingStore interface {
	GetPetOwner(ctx context.Context, petID string) (string, error)
}

type Config struct {
	// MinSeparation is the minimum age a reciprocal swipe must have before
	// it can complete a match. Two positive signals recorded closer
	// together than this look scripted, not like two independent
	// decisions, and are refused without error.
	MinSeparation time.Duration
}

type Dependencies struct {
	SwipeStore   SwipeStore
	MatchStore   MatchStore
	ListingStore ListingStore
}

type SwipeResult struct {
	SwipeID        string
	Matched        bool
	AlreadyMatched bool
	Reason         string
}

type MatchResult struct {
	Matched        bool
	AlreadyMatched bool
	Reason         string
}

type Service struct {
	swipeStore   SwipeStore
	matchStore   MatchStore
	listingStore ListingStore
	cfg          Config
	now          func() time.Time
}

func NewService(deps Dependencies, cfg Config) *Service {
	if cfg.MinSeparation <= 0 {
		cfg.MinSeparation = defaultMinSeparation
	}

	return &Service{
		swipeStore:   deps.SwipeStore,
		matchStore:   deps.MatchStore,
		listingStore: deps.ListingStore,
		cfg:          cfg,
		now:          time.Now,
	}
}

// Swipe records one directional preference signal and, for positive
// pet-targeted swipes, attempts to materialize a match. The swipe row is
// appended unconditionally; repeats accumulate rather than overwrite.
func (s *Service) Swipe(ctx context.Context, actorID, targetID string, targetType enums.TargetType, direction enums.Direction) (SwipeResult, error) {
	if strings.TrimSpace(actorID) == "" {
		return SwipeResult{}, ErrUnauthenticated
	}
	if strings.TrimSpace(targetID) == "" || actorID == targetID {
		return SwipeResult{}, ErrValidation
	}
	if !validTargetType(targetType) || !validDirection(direction) {
		return SwipeResult{}, ErrValidation
	}
	if s.swipeStore == nil || s.matchStore == nil || s.listingStore == nil {
		return SwipeResult{}, fmt.Errorf("swipe dependencies are not configured")
	}

	now := s.now().UTC()

	rec, err := s.swipeStore.Create(ctx, actorID, targetID, targetType, direction, now)
	if err != nil {
		return SwipeResult{}, fmt.Errorf("record swipe: %w", err)
	}

	result := SwipeResult{SwipeID: rec.ID}

	// Only pet-targeted positive swipes carry the pet context a match
	// needs; user-targeted swipes are recorded and picked up by the other
	// side's reciprocity check.
	if !direction.IsPositive() || targetType != enums.TargetTypePet {
		return result, nil
	}

	match, err := s.tryMatch(ctx, actorID, targetID, now)
	if err != nil {
		return SwipeResult{}, err
	}

	result.Matched = match.Matched
	result.AlreadyMatched = match.AlreadyMatched
	result.Reason = match.Reason
	return result, nil
}

// TryMatch re-runs the reciprocity check for a positive swipe the actor
// has already recorded on the pet. Safe to call repeatedly: an existing
// match reports AlreadyMatched instead of erroring or duplicating.
func (s *Service) TryMatch(ctx context.Context, actorID, petID string, direction enums.Direction) (MatchResult, error) {
	if strings.TrimSpace(actorID) == "" {
		return MatchResult{}, ErrUnauthenticated
	}
	if strings.TrimSpace(petID) == "" || !validDirection(direction) {
		return MatchResult{}, ErrValidation
	}
	if s.matchStore == nil || s.listingStore == nil || s.swipeStore == nil {
		return MatchResult{}, fmt.Errorf("swipe dependencies are not configured")
	}

	if !direction.IsPositive() {
		return MatchResult{}, nil
	}

	return s.tryMatch(ctx, actorID, petID, s.now().UTC())
}

func (s *Service) tryMatch(ctx context.Context, actorID, petID string, now time.Time) (MatchResult, error) {
	ownerID, err := s.listingStore.GetPetOwner(ctx, petID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrPetNotFound) {
			return MatchResult{}, ErrPetNotFound
		}
		return MatchResult{}, fmt.Errorf("resolve pet owner: %w", err)
	}
	if ownerID == actorID {
		return MatchResult{}, nil
	}

	reciprocal, err := s.swipeStore.FindReciprocal(ctx, ownerID, actorID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrSwipeNotFound) {
			return MatchResult{}, nil
		}
		return MatchResult{}, fmt.Errorf("lookup reciprocal swipe: %w", err)
	}

	if now.Sub(reciprocal.CreatedAt) < s.cfg.MinSeparation {
		return MatchResult{Reason: ReasonInvalidTiming}, nil
	}

	// Fast path only: the unique index behind InsertUnique is what makes
	// concurrent duplicates impossible.
	if _, err := s.matchStore.Find(ctx, actorID, ownerID, petID, model.MatchTypeMutual); err == nil {
		return MatchResult{Matched: true, AlreadyMatched: true}, nil
	} else if !errors.Is(err, pgrepo.ErrMatchNotFound) {
		return MatchResult{}, fmt.Errorf("lookup existing match: %w", err)
	}

	if _, err := s.matchStore.InsertUnique(ctx, actorID, ownerID, petID, model.MatchTypeMutual, now); err != nil {
		if errors.Is(err, pgrepo.ErrDuplicateMatch) {
			return MatchResult{Matched: true, AlreadyMatched: true}, nil
		}
		return MatchResult{}, fmt.Errorf("create match: %w", err)
	}

	return MatchResult{Matched: true}, nil
}

func validTargetType(t enums.TargetType) bool {
	return t == enums.TargetTypePet || t == enums.TargetTypeUser
}

func validDirection(d enums.Direction) bool {
	switch d {
	case enums.DirectionPass, enums.DirectionLike, enums.DirectionSuperLike:
		return true
	default:
		return false
	}
}
