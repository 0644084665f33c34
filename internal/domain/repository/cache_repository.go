package repository

import (
	"context"
	"time"

	"github.com/collection-points/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetPoint получает пункт из кеша, nil при промахе
	GetPoint(ctx context.Context, id int64) (*domain.Point, error)

	// SetPoint сохраняет пункт в кеше
	SetPoint(ctx context.Context, point *domain.Point, ttl time.Duration) error
}
