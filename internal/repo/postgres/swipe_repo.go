package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/domain/enums"
	"github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/domain/model"
)

var ErrSwipeNotFound = errors.New("swipe not found")

type SwipeRepo struct {
	pool *pgxpool.Pool
}

func NewSwipeRepo(pool *pgxpool.Pool) *SwipeRepo {
	return &SwipeRepo{pool: pool}
}

// Create appends one swipe row. Repeated swipes from the same actor on the
// same target accumulate; the table carries no uniqueness constraint.
func (r *SwipeRepo) Create(ctx context.Context, actorID, targetID string, targetType enums.TargetType, direction enums.Direction, now time.Time) (model.Swipe, error) {
	if strings.TrimSpace(actorID) == "" || strings.TrimSpace(targetID) == "" {
		return model.Swipe{}, fmt.Errorf("invalid swipe payload")
	}
	if r.pool == nil {
		return model.Swipe{}, fmt.Errorf("postgres pool is nil")
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var rec model.Swipe
	err := r.pool.QueryRow(ctx, `
INSERT INTO swipes (
	id,
	actor_id,
	target_id,
	target_type,
	direction,
	created_at
) VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, actor_id, target_id, target_type, direction, created_at
`, uuid.NewString(), actorID, targetID, string(targetType), string(direction), now.UTC()).Scan(
		&rec.ID,
		&rec.ActorID,
		&rec.TargetID,
		&rec.TargetType,
		&rec.Direction,
		&rec.CreatedAt,
	)
	if err != nil {
		return model.Swipe{}, fmt.Errorf("create swipe: %w", err)
	}

	return rec, nil
}

// FindReciprocal returns the most recent positive swipe the owner has
// already recorded toward the actor, if any.
func (r *SwipeRepo) FindReciprocal(ctx context.Context, ownerID, actorID string) (model.Swipe, error) {
	if strings.TrimSpace(ownerID) == "" || strings.TrimSpace(actorID) == "" {
		return model.Swipe{}, fmt.Errorf("invalid reciprocal lookup payload")
	}
	if r.pool == nil {
		return model.Swipe{}, fmt.Errorf("postgres pool is nil")
	}

	var rec model.Swipe
	err := r.pool.QueryRow(ctx, `
SELECT id, actor_id, target_id, target_type, direction, created_at
FROM swipes
WHERE
	actor_id = $1
	AND target_id = $2
	AND target_type = $3
	AND direction IN ($4, $5)
ORDER BY created_at DESC, id DESC
LIMIT 1
`, ownerID, actorID, string(enums.TargetTypeUser), string(enums.DirectionLike), string(enums.DirectionSuperLike)).Scan(
		&rec.ID,
		&rec.ActorID,
		&rec.TargetID,
		&rec.TargetType,
		&rec.Direction,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Swipe{}, ErrSwipeNotFound
		}
		return model.Swipe{}, fmt.Errorf("find reciprocal swipe: %w", err)
	}

	return rec, nil
}
