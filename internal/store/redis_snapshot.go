package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/marketflowhq/marketflow/internal/models"
)

// RedisSnapshot persists the collection under a single Redis key.
type RedisSnapshot struct {
	client *redis.Client
	key    string
}

// RedisConfig holds the Redis snapshot backend settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// NewRedisSnapshot creates a Redis-backed snapshot and verifies the
// connection.
func NewRedisSnapshot(cfg RedisConfig) (*RedisSnapshot, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSnapshot{
		client: client,
		key:    cfg.Key,
	}, nil
}

// Load reads the snapshot key. A missing key is an empty collection.
func (rs *RedisSnapshot) Load(ctx context.Context) ([]models.Campaign, error) {
	data, err := rs.client.Get(ctx, rs.key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot from Redis: %w", err)
	}
	var campaigns []models.Campaign
	if err := json.Unmarshal([]byte(data), &campaigns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return campaigns, nil
}

// Save rewrites the snapshot key with the full collection. No TTL: the
// snapshot is durable state, not a cache.
func (rs *RedisSnapshot) Save(ctx context.Context, campaigns []models.Campaign) error {
	data, err := json.Marshal(campaigns)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := rs.client.Set(ctx, rs.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot to Redis: %w", err)
	}
	return nil
}
