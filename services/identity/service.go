package identity

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"medigen/models"
	"medigen/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	ErrUnauthenticated = errors.New("insufficient authorization")
	ErrRevoked         = errors.New("token has been signed out")
)

// Service verifies tokens through a Verifier and caches the result in Redis,
// keyed by token hash. Without a cache client every request hits the
// verifier.
type Service struct {
	verifier Verifier
	cache    *redis.Client
	now      func() time.Time
}

func NewService(verifier Verifier, cache *redis.Client) *Service {
	return &Service{verifier: verifier, cache: cache, now: time.Now}
}

// Authenticate returns the identity behind token.
func (s *Service) Authenticate(ctx context.Context, token string) (models.Identity, error) {
	if token == "" {
		return models.Identity{}, ErrUnauthenticated
	}
	hash := utils.HashToken(token)

	if s.cache != nil {
		revoked, err := s.cache.Exists(ctx, utils.AuthRevokedPrefix+hash).Result()
		switch {
		case err != nil:
			utils.GetLogger().Warn("auth cache unavailable, verifying directly", zap.Error(err))
		case revoked > 0:
			return models.Identity{}, ErrRevoked
		default:
			if id, ok := s.cached(ctx, hash); ok {
				return id, nil
			}
		}
	}

	id, expires, err := s.verifier.Verify(ctx, token)
	if err != nil {
		utils.GetLogger().Debug("token rejected", zap.Error(err))
		return models.Identity{}, ErrUnauthenticated
	}

	if s.cache != nil {
		if data, err := json.Marshal(id); err == nil {
			_ = s.cache.Set(ctx, utils.AuthCachePrefix+hash, data, s.ttlUntil(expires)).Err()
		}
	}
	return id, nil
}

// SignOut revokes token for the rest of its lifetime and ends the user's
// provider sessions.
func (s *Service) SignOut(ctx context.Context, token string, id models.Identity) error {
	hash := utils.HashToken(token)
	if s.cache != nil {
		_, expires, err := s.verifier.Verify(ctx, token)
		if err != nil {
			expires = time.Time{}
		}
		pipe := s.cache.TxPipeline()
		pipe.Del(ctx, utils.AuthCachePrefix+hash)
		pipe.Set(ctx, utils.AuthRevokedPrefix+hash, id.UID, s.revokeTTL(expires))
		if _, err := pipe.Exec(ctx); err != nil {
			utils.GetLogger().Error("failed to revoke token", zap.String("uid", id.UID), zap.Error(err))
			return err
		}
	}
	if err := s.verifier.Revoke(ctx, id.UID); err != nil {
		utils.GetLogger().Warn("provider sign-out failed", zap.String("uid", id.UID), zap.Error(err))
	}
	return nil
}

func (s *Service) cached(ctx context.Context, hash string) (models.Identity, bool) {
	data, err := s.cache.Get(ctx, utils.AuthCachePrefix+hash).Bytes()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("error reading auth cache", zap.Error(err))
		}
		return models.Identity{}, false
	}
	var id models.Identity
	if err := json.Unmarshal(data, &id); err != nil || id.UID == "" {
		return models.Identity{}, false
	}
	return id, true
}

// ttlUntil caps the cache entry at AuthCacheTTL and at the token expiry.
func (s *Service) ttlUntil(expires time.Time) time.Duration {
	ttl := utils.AuthCacheTTL
	if !expires.IsZero() {
		if left := expires.Sub(s.now()); left < ttl {
			ttl = left
		}
	}
	if ttl < time.Second {
		ttl = time.Second
	}
	return ttl
}

func (s *Service) revokeTTL(expires time.Time) time.Duration {
	if expires.IsZero() {
		return utils.AuthCacheTTL
	}
	if left := expires.Sub(s.now()); left > time.Second {
		return left
	}
	return time.Second
}
