package repository

import (
	"context"

	"github.com/collection-points/internal/domain"
)

// CategoryRepository - чтение справочника категорий
type CategoryRepository interface {
	// List возвращает все категории в порядке добавления
	List(ctx context.Context) ([]domain.Category, error)
}
