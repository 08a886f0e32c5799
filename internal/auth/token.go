package auth

import (
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// NewSessionToken returns an opaque bearer token for devotee sessions.
func NewSessionToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// AdminTokenManager signs and validates the admin-session cookie value.
// There is no per-admin identity; the token is a time-bound capability
// carrying only its own session id.
type AdminTokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewAdminTokenManager builds a new manager.
func NewAdminTokenManager(secret string, ttl time.Duration) *AdminTokenManager {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &AdminTokenManager{secret: []byte(secret), ttl: ttl}
}

// AdminClaims describes the admin cookie JWT payload.
type AdminClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Generate builds and signs an admin session token.
func (tm *AdminTokenManager) Generate(sessionID string) (string, time.Time, error) {
	expiresAt := time.Now().Add(tm.ttl)
	claims := &AdminClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse validates signature and expiry and returns claims.
func (tm *AdminTokenManager) Parse(tokenStr string) (*AdminClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*AdminClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// TTL exposes the configured token lifetime.
func (tm *AdminTokenManager) TTL() time.Duration {
	return tm.ttl
}
