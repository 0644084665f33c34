package usecase

import (
	"context"

	"github.com/collection-points/internal/usecase/dto"
	"go.uber.org/zap"
)

type ItemUseCase struct {
	catalog   *CategoryCatalog
	presenter *dto.Presenter
	logger    *zap.Logger
}

func NewItemUseCase(
	catalog *CategoryCatalog,
	presenter *dto.Presenter,
	logger *zap.Logger,
) *ItemUseCase {
	return &ItemUseCase{
		catalog:   catalog,
		presenter: presenter,
		logger:    logger,
	}
}

// ListItems возвращает все категории материалов с абсолютными URL иконок
func (uc *ItemUseCase) ListItems(ctx context.Context) ([]dto.CategoryResponse, error) {
	items, err := uc.presenter.Categories(uc.catalog.List())
	if err != nil {
		uc.logger.Error("Failed to present categories", zap.Error(err))
		return nil, err
	}

	return items, nil
}
