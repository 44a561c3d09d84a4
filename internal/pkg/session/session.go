package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/pkg/errors"
)

// CookieName - cookie с токеном демо-входа
const CookieName = "portal_session"

// Claims - данные организатора в токене
type Claims struct {
	Name         string `json:"name"`
	Organization string `json:"org"`
	Email        string `json:"email"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет HS256 токены демо-входа.
// Вход всегда успешен, токен только подписывает профиль для шапки.
type Manager struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "venue-booking-portal",
	}
}

// TTL returns the token lifetime
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for the organizer
func (m *Manager) Issue(organizer domain.Organizer) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:         organizer.Name,
		Organization: organizer.Organization,
		Email:        organizer.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   organizer.Email,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse validates the token and returns the organizer it was issued for
func (m *Manager) Parse(token string) (*domain.Organizer, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
	)
	if err != nil || !parsed.Valid {
		return nil, errors.ErrInvalidSession
	}

	return &domain.Organizer{
		Name:         claims.Name,
		Organization: claims.Organization,
		Email:        claims.Email,
	}, nil
}
