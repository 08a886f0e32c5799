package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const adminSessionKeyPrefix = "admin-session:"

// AdminSessionStore tracks live admin sessions so the shared-capability
// cookie can be revoked server-side at logout.
type AdminSessionStore interface {
	Put(ctx context.Context, sessionID string, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}

type redisAdminSessionStore struct {
	client *redis.Client
}

// NewAdminSessionStore returns a Redis-backed store.
func NewAdminSessionStore(client *redis.Client) AdminSessionStore {
	return &redisAdminSessionStore{client: client}
}

func (s *redisAdminSessionStore) Put(ctx context.Context, sessionID string, ttl time.Duration) error {
	return s.client.Set(ctx, adminSessionKeyPrefix+sessionID, "1", ttl).Err()
}

func (s *redisAdminSessionStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, adminSessionKeyPrefix+sessionID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisAdminSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, adminSessionKeyPrefix+sessionID).Err()
}

// AdminSessionManager couples the signed cookie with the live registry.
type AdminSessionManager struct {
	tokens *AdminTokenManager
	store  AdminSessionStore
}

// NewAdminSessionManager builds the manager.
func NewAdminSessionManager(tokens *AdminTokenManager, store AdminSessionStore) *AdminSessionManager {
	return &AdminSessionManager{tokens: tokens, store: store}
}

// Create issues a new admin session and returns the signed cookie value.
func (m *AdminSessionManager) Create(ctx context.Context) (string, time.Time, error) {
	sessionID := uuid.NewString()
	token, expiresAt, err := m.tokens.Generate(sessionID)
	if err != nil {
		return "", time.Time{}, err
	}
	if err := m.store.Put(ctx, sessionID, m.tokens.TTL()); err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Validate reports whether the cookie value names a live admin session.
// Any failure (bad signature, expiry, unknown session) validates to false.
func (m *AdminSessionManager) Validate(ctx context.Context, cookieValue string) bool {
	if cookieValue == "" {
		return false
	}
	claims, err := m.tokens.Parse(cookieValue)
	if err != nil {
		return false
	}
	alive, err := m.store.Exists(ctx, claims.SessionID)
	if err != nil {
		return false
	}
	return alive
}

// Clear revokes the session named by the cookie value.
func (m *AdminSessionManager) Clear(ctx context.Context, cookieValue string) error {
	claims, err := m.tokens.Parse(cookieValue)
	if err != nil {
		// Nothing to revoke for an unparseable cookie.
		return nil
	}
	return m.store.Delete(ctx, claims.SessionID)
}
