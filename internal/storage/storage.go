// Package storage caches detection results so repeated inputs skip the
// scoring pipeline at the service layer.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/glossa-dev/glossa/internal/config"
	"github.com/glossa-dev/glossa/internal/models"
)

// ResultCache stores detection responses keyed by input text.
type ResultCache interface {
	Get(ctx context.Context, text string) (*models.DetectionResponse, bool)
	Set(ctx context.Context, text string, response *models.DetectionResponse)
	Close() error
}

// CacheKey derives the cache key for an input text.
func CacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "glossa:result:" + hex.EncodeToString(sum[:])
}

// redisCache is a Redis-backed ResultCache with a fixed TTL.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(cfg config.RedisConfig, ttl time.Duration, logger *zap.Logger) (ResultCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("storage: redis ping: %w", err)
	}
	return &redisCache{client: client, ttl: ttl, logger: logger}, nil
}

func (c *redisCache) Get(ctx context.Context, text string) (*models.DetectionResponse, bool) {
	data, err := c.client.Get(ctx, CacheKey(text)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("result cache read failed", zap.Error(err))
		return nil, false
	}
	var response models.DetectionResponse
	if err := json.Unmarshal(data, &response); err != nil {
		c.logger.Warn("result cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return &response, true
}

func (c *redisCache) Set(ctx context.Context, text string, response *models.DetectionResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		c.logger.Warn("result cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, CacheKey(text), data, c.ttl).Err(); err != nil {
		c.logger.Warn("result cache write failed", zap.Error(err))
	}
}

func (c *redisCache) Close() error {
	return c.client.Close()
}

// nopCache is used when Redis is disabled.
type nopCache struct{}

// NewNopCache returns a cache that stores nothing.
func NewNopCache() ResultCache {
	return nopCache{}
}

func (nopCache) Get(context.Context, string) (*models.DetectionResponse, bool) { return nil, false }
func (nopCache) Set(context.Context, string, *models.DetectionResponse)       {}
func (nopCache) Close() error                                                 { return nil }
