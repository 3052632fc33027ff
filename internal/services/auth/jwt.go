package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var ErrUnauthorized = errors.New("unauthorized")

// JWTManager validates access tokens issued by the marketplace identity
// service. This subsystem only parses; issuance lives elsewhere.
type JWTManager struct {
	secret []byte
	now    func() time.Time
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		now:    time.Now,
	}
}

func (m *JWTManager) ParseAccessToken(raw string) (Identity, error) {
	if strings.TrimSpace(raw) == "" {
		return Identity{}, ErrUnauthorized
	}
	if len(m.secret) == 0 {
		return Identity{}, fmt.Errorf("jwt secret is empty")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(_ *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || token == nil || !token.Valid {
		return Identity{}, ErrUnauthorized
	}

	actorID := strings.TrimSpace(claims.Subject)
	if actorID == "" {
		return Identity{}, ErrUnauthorized
	}

	return Identity{ActorID: actorID}, nil
}

// GenerateAccessToken mirrors the identity service's token shape. Used by
// tests and local tooling.
func (m *JWTManager) GenerateAccessToken(actorID string, ttl time.Duration) (string, error) {
	if len(m.secret) == 0 {
		return "", fmt.Errorf("jwt secret is empty")
	}
	if strings.TrimSpace(actorID) == "" {
		return "", fmt.Errorf("invalid access token payload")
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	now := m.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   actorID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	return signed, nil
}
