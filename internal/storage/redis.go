package storage

import (
	"context"
	"strconv"
	"time"

	"foodigo/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) ReviewMarkerKey(foodID, userID string) string {
	return "review:" + foodID + ":" + userID
}

func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	res, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (c *RedisCache) SetMarker(ctx context.Context, key string) error {
	return c.Client.Set(ctx, key, "1", c.TTL).Err()
}

func foodStatsKey(foodID string) string {
	return "food:" + foodID
}

// FoodStats reads the hash the worker mirrors after each review. A missing key
// yields nil, nil.
func (c *RedisCache) FoodStats(ctx context.Context, foodID string) (*domain.FoodStats, error) {
	fields, err := c.Client.HGetAll(ctx, foodStatsKey(foodID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	stats := &domain.FoodStats{FoodID: foodID}
	stats.AvgRating, _ = strconv.ParseFloat(fields["avg_rating"], 64)
	stats.ReviewCount, _ = strconv.Atoi(fields["review_count"])
	stats.LastUpdated, _ = strconv.ParseInt(fields["last_updated"], 10, 64)
	return stats, nil
}
