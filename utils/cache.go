// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"medigen/config"

	"github.com/go-redis/redis/v8"
)

var (
	// StorageClient backs the redis durable storage backend.
	StorageClient *redis.Client
	// SessionClient holds in-flight booking sessions.
	SessionClient *redis.Client
	// AuthCacheClient caches verified identity tokens and revocations.
	AuthCacheClient *redis.Client
	// ChatClient keeps the assistant chat history.
	ChatClient *redis.Client
)

func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
	return client
}

// InitRedis connects every redis client the service uses.
func InitRedis() {
	GetSessionClient()
	GetAuthCacheClient()
	GetChatClient()
	if config.AppConfig.StorageBackend == "redis" {
		GetStorageClient()
	}
}

// GetStorageClient returns the client for durable key/value storage.
func GetStorageClient() *redis.Client {
	if StorageClient == nil {
		StorageClient = newRedisClient(config.AppConfig.RedisStorageDB, "Storage")
	}
	return StorageClient
}

// GetSessionClient returns the booking session cache client.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		SessionClient = newRedisClient(config.AppConfig.RedisSessionDB, "Session")
	}
	return SessionClient
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "Auth Cache")
	}
	return AuthCacheClient
}

// GetChatClient returns the chat history client.
func GetChatClient() *redis.Client {
	if ChatClient == nil {
		ChatClient = newRedisClient(config.AppConfig.RedisChatDB, "Chat")
	}
	return ChatClient
}

// RedisClients lists the connected clients, for health checks.
func RedisClients() []*redis.Client {
	var clients []*redis.Client
	for _, c := range []*redis.Client{StorageClient, SessionClient, AuthCacheClient, ChatClient} {
		if c != nil {
			clients = append(clients, c)
		}
	}
	return clients
}
