// Package cache provides the Redis-backed billing queue cache.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	approder "github.com/kchelvan55/customer-admin-app-sub000/application/order"
	"github.com/kchelvan55/customer-admin-app-sub000/config"
	"github.com/kchelvan55/customer-admin-app-sub000/pkg/logger"
)

const queueKey = "cadmin:billing:queue"

// QueueCache stores the serialized billing queue read model in Redis.
// Cache failures degrade to a miss so reads fall through to the repository.
type QueueCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQueueCache connects to Redis and verifies the connection with a ping.
func NewQueueCache(cfg *config.RedisConfig) (*QueueCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &QueueCache{client: client, ttl: cfg.QueueTTL}, nil
}

// GetQueue returns the cached queue, or false on a miss or decode failure.
func (c *QueueCache) GetQueue(ctx context.Context) ([]*approder.OrderResponse, bool) {
	payload, err := c.client.Get(ctx, queueKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Warn("Billing queue cache read failed", zap.Error(err))
		return nil, false
	}

	var queue []*approder.OrderResponse
	if err := json.Unmarshal(payload, &queue); err != nil {
		logger.Warn("Billing queue cache decode failed", zap.Error(err))
		return nil, false
	}
	return queue, true
}

// SetQueue stores the queue with the configured TTL.
func (c *QueueCache) SetQueue(ctx context.Context, queue []*approder.OrderResponse) {
	payload, err := json.Marshal(queue)
	if err != nil {
		logger.Warn("Billing queue cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, queueKey, payload, c.ttl).Err(); err != nil {
		logger.Warn("Billing queue cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached queue after any order mutation.
func (c *QueueCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, queueKey).Err(); err != nil {
		logger.Warn("Billing queue cache invalidation failed", zap.Error(err))
	}
}

// Close releases the underlying Redis connection.
func (c *QueueCache) Close() error {
	return c.client.Close()
}

var _ approder.QueueCache = (*QueueCache)(nil)
