package ai

import (
	"context"
	"encoding/json"
	"time"

	"medigen/models"

	"github.com/go-redis/redis/v8"
)

const chatHistoryPrefix = "ai:chat:"

// RedisChatStore keeps each conversation as one JSON list. Every write renews
// the TTL.
type RedisChatStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisChatStore(client *redis.Client, ttl time.Duration) *RedisChatStore {
	return &RedisChatStore{client: client, ttl: ttl}
}

// Get returns nil for an unknown conversation.
func (s *RedisChatStore) Get(ctx context.Context, chatID string) ([]models.ChatMessage, error) {
	data, err := s.client.Get(ctx, chatHistoryPrefix+chatID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var messages []models.ChatMessage
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *RedisChatStore) Set(ctx context.Context, chatID string, messages []models.ChatMessage) error {
	b, err := json.Marshal(messages)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, chatHistoryPrefix+chatID, b, s.ttl).Err()
}

func (s *RedisChatStore) Clear(ctx context.Context, chatID string) error {
	return s.client.Del(ctx, chatHistoryPrefix+chatID).Err()
}
