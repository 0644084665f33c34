package repository

import (
	"context"

	"github.com/collection-points/internal/domain"
)

// PointRepository определяет методы для работы с пунктами приёма
type PointRepository interface {
	// Create атомарно сохраняет пункт и все его связи с категориями
	Create(ctx context.Context, point *domain.Point, categoryIDs []int64) (*domain.Point, error)

	// GetByID возвращает пункт вместе с его категориями
	GetByID(ctx context.Context, id int64) (*domain.Point, error)

	// Query возвращает пункты, подходящие под фильтр, одним запросом
	Query(ctx context.Context, filter domain.PointFilter) ([]*domain.Point, error)
}
