package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/domain/model"
)

var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrDuplicateMatch = errors.New("match already exists")
)

type MatchRepo struct {
	pool *pgxpool.Pool
}

func NewMatchRepo(pool *pgxpool.Pool) *MatchRepo {
	return &MatchRepo{pool: pool}
}

func (r *MatchRepo) Find(ctx context.Context, participantX, participantY, petID, matchType string) (model.Match, error) {
	if strings.TrimSpace(participantX) == "" || strings.TrimSpace(participantY) == "" || strings.TrimSpace(petID) == "" {
		return model.Match{}, fmt.Errorf("invalid match lookup payload")
	}
	if r.pool == nil {
		return model.Match{}, fmt.Errorf("postgres pool is nil")
	}

	participantA, participantB := model.OrderParticipants(participantX, participantY)

	var rec model.Match
	err := r.pool.QueryRow(ctx, `
SELECT id, participant_a, participant_b, pet_id, match_type, created_at
FROM matches
WHERE
	participant_a = $1
	AND participant_b = $2
	AND pet_id = $3
	AND match_type = $4
`, participantA, participantB, petID, matchType).Scan(
		&rec.ID,
		&rec.ParticipantA,
		&rec.ParticipantB,
		&rec.PetID,
		&rec.MatchType,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Match{}, ErrMatchNotFound
		}
		return model.Match{}, fmt.Errorf("find match: %w", err)
	}

	return rec, nil
}

// InsertUnique creates the match row guarded by the unique index on
// (participant_a, participant_b, pet_id, match_type). A concurrent insert
// that loses the race surfaces as ErrDuplicateMatch, never as a failure.
func (r *MatchRepo) InsertUnique(ctx context.Context, participantX, participantY, petID, matchType string, now time.Time) (model.Match, error) {
	if strings.TrimSpace(participantX) == "" || strings.TrimSpace(participantY) == "" || strings.TrimSpace(petID) == "" {
		return model.Match{}, fmt.Errorf("invalid match payload")
	}
	if r.pool == nil {
		return model.Match{}, fmt.Errorf("postgres pool is nil")
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	participantA, participantB := model.OrderParticipants(participantX, participantY)

	var rec model.Match
	err := r.pool.QueryRow(ctx, `
INSERT INTO matches (
	id,
	participant_a,
	participant_b,
	pet_id,
	match_type,
	created_at
) VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (participant_a, participant_b, pet_id, match_type) DO NOTHING
RETURNING id, participant_a, participant_b, pet_id, match_type, created_at
`, uuid.NewString(), participantA, participantB, petID, matchType, now.UTC()).Scan(
		&rec.ID,
		&rec.ParticipantA,
		&rec.ParticipantB,
		&rec.PetID,
		&rec.MatchType,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Match{}, ErrDuplicateMatch
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.Match{}, ErrDuplicateMatch
		}
		return model.Match{}, fmt.Errorf("insert match: %w", err)
	}

	return rec, nil
}

func (r *MatchRepo) ListForParticipant(ctx context.Context, participantID string, limit int) ([]model.Match, error) {
	if strings.TrimSpace(participantID) == "" {
		return nil, fmt.Errorf("invalid participant id")
	}
	if limit <= 0 {
		limit = 100
	}
	if r.pool == nil {
		return []model.Match{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, participant_a, participant_b, pet_id, match_type, created_at
FROM matches
WHERE participant_a = $1 OR participant_b = $1
ORDER BY created_at DESC, id DESC
LIMIT $2
`, participantID, limit)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	items := make([]model.Match, 0, limit)
	for rows.Next() {
		var rec model.Match
		if err := rows.Scan(
			&rec.ID,
			&rec.ParticipantA,
			&rec.ParticipantB,
			&rec.PetID,
			&rec.MatchType,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		items = append(items, rec)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate matches: %w", rows.Err())
	}

	return items, nil
}
