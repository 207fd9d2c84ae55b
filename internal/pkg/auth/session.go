package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/campushub/eventhub/internal/app/models"
	"github.com/campushub/eventhub/internal/pkg/apperrors"
)

// SessionConfig defines session signing settings
type SessionConfig struct {
	Secret   string
	Lifetime time.Duration
	Issuer   string
}

// SessionService mints and verifies signed session payloads. The payload is
// an HS256 token carried in an HTTP-only cookie; the client never inspects
// it, and the server trusts identity and role for the session's lifetime.
type SessionService struct {
	config SessionConfig
}

// NewSessionService creates a new SessionService
func NewSessionService(config SessionConfig) *SessionService {
	return &SessionService{
		config: config,
	}
}

// SessionClaims defines the session payload
type SessionClaims struct {
	UserID int64           `json:"userId"`
	Role   models.RoleType `json:"role"`
	Name   string          `json:"name"`
	jwt.RegisteredClaims
}

// Issue creates a signed session payload for the user
func (s *SessionService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID: user.ID,
		Role:   user.Role,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   fmt.Sprintf("%d", user.ID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}

	return signed, nil
}

// Validate verifies a session token and returns its claims
func (s *SessionService) Validate(tokenString string) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, apperrors.ErrSessionInvalid
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, apperrors.ErrSessionInvalid
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrSessionInvalid
	}
	if claims.UserID <= 0 {
		return nil, apperrors.ErrSessionInvalid
	}

	return claims, nil
}

// Lifetime returns the configured session lifetime
func (s *SessionService) Lifetime() time.Duration {
	return s.config.Lifetime
}
