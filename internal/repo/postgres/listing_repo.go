package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrPetNotFound = errors.New("pet listing not found")

// ListingRepo reads the pet-listing table owned by the marketplace CRUD
// side of the system. This subsystem only resolves listing ownership.
type ListingRepo struct {
	pool *pgxpool.Pool
}

func NewListingRepo(pool *pgxpool.Pool) *ListingRepo {
	return &ListingRepo{pool: pool}
}

func (r *ListingRepo) GetPetOwner(ctx context.Context, petID string) (string, error) {
	if strings.TrimSpace(petID) == "" {
		return "", fmt.Errorf("invalid pet id")
	}
	if r.pool == nil {
		return "", fmt.Errorf("postgres pool is nil")
	}

	var ownerID string
	err := r.pool.QueryRow(ctx, `
SELECT owner_id
FROM pet_listings
WHERE id = $1
`, petID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrPetNotFound
		}
		return "", fmt.Errorf("get pet owner: %w", err)
	}

	return ownerID, nil
}
