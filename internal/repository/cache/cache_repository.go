package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/collection-points/internal/domain"
	"github.com/collection-points/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const pointKeyPrefix = "points:v1:"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// PointKey - ключ кеша для пункта
func PointKey(id int64) string {
	return fmt.Sprintf("%s%d", pointKeyPrefix, id)
}

// GetPoint получает пункт из кеша. Пункты неизменяемы после создания,
// поэтому кешированная копия не устаревает. Повреждённая запись удаляется
// и считается промахом.
func (r *cacheRepository) GetPoint(ctx context.Context, id int64) (*domain.Point, error) {
	data, err := r.Get(ctx, PointKey(id))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var point domain.Point
	if err := json.Unmarshal(data, &point); err != nil {
		r.logger.Warn("Dropping corrupted cached point", zap.Int64("id", id), zap.Error(err))
		if err := r.Delete(ctx, PointKey(id)); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return &point, nil
}

// SetPoint сохраняет пункт в кеше
func (r *cacheRepository) SetPoint(ctx context.Context, point *domain.Point, ttl time.Duration) error {
	data, err := json.Marshal(point)
	if err != nil {
		r.logger.Error("Failed to marshal point", zap.Int64("id", point.ID), zap.Error(err))
		return fmt.Errorf("marshal point: %w", err)
	}

	return r.Set(ctx, PointKey(point.ID), data, ttl)
}
