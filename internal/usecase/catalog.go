package usecase

import (
	"context"
	"sync"

	"github.com/collection-points/internal/domain"
	"github.com/collection-points/internal/domain/repository"
	"go.uber.org/zap"
)

// CategoryCatalog - справочник категорий материалов.
// Загружается один раз при старте и дальше только читается,
// поэтому конкурентные читатели обходятся без блокировок.
type CategoryCatalog struct {
	repo   repository.CategoryRepository
	logger *zap.Logger

	once    sync.Once
	loadErr error

	ordered []domain.Category
	byID    map[int64]domain.Category
}

func NewCategoryCatalog(repo repository.CategoryRepository, logger *zap.Logger) *CategoryCatalog {
	return &CategoryCatalog{
		repo:   repo,
		logger: logger,
		byID:   make(map[int64]domain.Category),
	}
}

// Load читает категории из хранилища. Повторные вызовы возвращают результат первого.
func (c *CategoryCatalog) Load(ctx context.Context) error {
	c.once.Do(func() {
		categories, err := c.repo.List(ctx)
		if err != nil {
			c.logger.Error("Failed to load category catalog", zap.Error(err))
			c.loadErr = err
			return
		}

		byID := make(map[int64]domain.Category, len(categories))
		for _, category := range categories {
			byID[category.ID] = category
		}

		c.ordered = categories
		c.byID = byID

		c.logger.Info("Category catalog loaded", zap.Int("count", len(categories)))
	})

	return c.loadErr
}

// List возвращает копию справочника в порядке добавления
func (c *CategoryCatalog) List() []domain.Category {
	result := make([]domain.Category, len(c.ordered))
	copy(result, c.ordered)
	return result
}

func (c *CategoryCatalog) Exists(id int64) bool {
	_, ok := c.byID[id]
	return ok
}

func (c *CategoryCatalog) Get(id int64) (domain.Category, bool) {
	category, ok := c.byID[id]
	return category, ok
}

// Missing возвращает идентификаторы, которых нет в справочнике
func (c *CategoryCatalog) Missing(ids []int64) []int64 {
	var missing []int64
	for _, id := range ids {
		if !c.Exists(id) {
			missing = append(missing, id)
		}
	}
	return missing
}

// Resolve возвращает категории по идентификаторам, неизвестные пропускаются
func (c *CategoryCatalog) Resolve(ids []int64) []domain.Category {
	result := make([]domain.Category, 0, len(ids))
	for _, id := range ids {
		if category, ok := c.Get(id); ok {
			result = append(result, category)
		}
	}
	return result
}
