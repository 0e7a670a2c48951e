// File: services/session/manager.go
package session

import (
	"context"
	"encoding/json"
	"errors"

	"mycare/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Session is the identity derived from a bearer token. Handlers and services
// consume this struct instead of re-parsing JWT claims.
type Session struct {
	UserID int64  `json:"userId"`
	Rol    string `json:"rol"`
}

var ErrInvalidSession = errors.New("invalid or expired session")

// Manager validates tokens and caches the derived identity in Redis, keyed by
// a hash of the token so the raw credential never touches the cache.
type Manager struct {
	cache  *redis.Client
	logger *zap.Logger
}

func NewManager() *Manager {
	return &Manager{
		cache:  utils.GetAuthCacheClient(),
		logger: utils.GetLogger(),
	}
}

func (m *Manager) key(token string) string {
	return utils.SessionCachePrefix + utils.HashToken(token)
}

// Establish validates the token, derives the session identity and caches it
// with a TTL aligned to the token's remaining lifetime. Called at login.
func (m *Manager) Establish(ctx context.Context, token string) (Session, error) {
	userID, rol, err := utils.ExtractIdentityFromToken(token)
	if err != nil {
		return Session{}, ErrInvalidSession
	}
	sess := Session{UserID: userID, Rol: rol}

	ttl, err := utils.ExpiryFromToken(token)
	if err != nil {
		return Session{}, ErrInvalidSession
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return Session{}, err
	}
	if err := m.cache.Set(ctx, m.key(token), payload, ttl).Err(); err != nil {
		// A cache miss later just forces revalidation; don't fail the login.
		m.logger.Warn("Failed to cache session", zap.Error(err))
	}
	return sess, nil
}

// FromToken resolves the session for a bearer token, serving from cache when
// possible and falling back to full validation on a miss.
func (m *Manager) FromToken(ctx context.Context, token string) (Session, error) {
	cached, err := m.cache.Get(ctx, m.key(token)).Result()
	if err == nil {
		var sess Session
		if jsonErr := json.Unmarshal([]byte(cached), &sess); jsonErr == nil && sess.UserID > 0 {
			return sess, nil
		}
		// Corrupt entry; drop it and revalidate.
		m.cache.Del(ctx, m.key(token))
	} else if err != redis.Nil {
		m.logger.Warn("Session cache lookup failed", zap.Error(err))
	}
	return m.Establish(ctx, token)
}

// Clear removes the cached session for a token. Called at logout; the token
// itself remains valid until expiry, but the cached identity is gone.
func (m *Manager) Clear(ctx context.Context, token string) error {
	return m.cache.Del(ctx, m.key(token)).Err()
}
