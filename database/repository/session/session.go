// Package sessionRepo caches in-flight booking sessions.
package sessionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	keyPrefix   = "booking:session:"
	claimPrefix = "booking:confirm:"
)

// ErrNotFound is returned for unknown or expired sessions.
var ErrNotFound = errors.New("session not found")

// Repository stores encoded sessions with a time-to-live.
type Repository interface {
	Save(ctx context.Context, id string, data []byte, ttl time.Duration) error
	Get(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error

	// Claim marks id as being confirmed by ownerID. Exactly one caller gets
	// true until the claim expires or is released.
	Claim(ctx context.Context, id, ownerID string, ttl time.Duration) (bool, error)
	// ClaimedBy returns the owner holding the claim on id, or ErrNotFound.
	ClaimedBy(ctx context.Context, id string) (string, error)
	Release(ctx context.Context, id string) error
}

type RedisSessionRepo struct {
	client *redis.Client
}

func NewRedisSessionRepo(client *redis.Client) *RedisSessionRepo {
	return &RedisSessionRepo{client: client}
}

func (r *RedisSessionRepo) Save(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, keyPrefix+id, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache booking session: %w", err)
	}
	return nil
}

func (r *RedisSessionRepo) Get(ctx context.Context, id string) ([]byte, error) {
	data, err := r.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	return data, nil
}

func (r *RedisSessionRepo) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

func (r *RedisSessionRepo) Claim(ctx context.Context, id, ownerID string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, claimPrefix+id, ownerID, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim booking session: %w", err)
	}
	return ok, nil
}

func (r *RedisSessionRepo) ClaimedBy(ctx context.Context, id string) (string, error) {
	owner, err := r.client.Get(ctx, claimPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read booking claim: %w", err)
	}
	return owner, nil
}

func (r *RedisSessionRepo) Release(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, claimPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to release booking claim: %w", err)
	}
	return nil
}
