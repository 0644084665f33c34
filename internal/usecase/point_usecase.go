package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/collection-points/internal/domain"
	"github.com/collection-points/internal/domain/repository"
	"github.com/collection-points/internal/pkg/errors"
	"github.com/collection-points/internal/pkg/utils"
	"github.com/collection-points/internal/pkg/validator"
	"github.com/collection-points/internal/usecase/dto"
	"go.uber.org/zap"
)

type PointUseCase struct {
	pointRepo repository.PointRepository
	cacheRepo repository.CacheRepository
	storage   repository.ImageStorage
	catalog   *CategoryCatalog
	presenter *dto.Presenter
	policy    validator.ImagePolicy
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewPointUseCase создаёт usecase пунктов. cacheRepo может быть nil,
// тогда чтение идёт напрямую из репозитория.
func NewPointUseCase(
	pointRepo repository.PointRepository,
	cacheRepo repository.CacheRepository,
	storage repository.ImageStorage,
	catalog *CategoryCatalog,
	presenter *dto.Presenter,
	policy validator.ImagePolicy,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *PointUseCase {
	return &PointUseCase{
		pointRepo: pointRepo,
		cacheRepo: cacheRepo,
		storage:   storage,
		catalog:   catalog,
		presenter: presenter,
		policy:    policy,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// CreatePoint регистрирует пункт приёма.
// Все проверки выполняются до записи: сначала поля, список категорий и изображение,
// затем принадлежность категорий справочнику. Только после этого сохраняется
// изображение и открывается транзакция.
func (uc *PointUseCase) CreatePoint(
	ctx context.Context,
	req dto.CreatePointRequest,
	image *dto.ImageUpload,
) (*dto.PointResponse, error) {
	req.Normalize()

	// пустая часть image равнозначна отсутствию файла
	if image != nil && len(image.Data) == 0 {
		image = nil
	}

	fields, err := validator.FieldErrors(&req)
	if err != nil {
		uc.logger.Error("Failed to validate point request", zap.Error(err))
		return nil, errors.ErrInternalServer.Wrap(err)
	}

	categoryIDs, ok := utils.ParseIDList(req.Items)
	switch {
	case !ok:
		fields["items"] = "list"
	case len(categoryIDs) == 0:
		fields["items"] = "required"
	}

	if image != nil {
		if rule := uc.policy.Check(image.Data); rule != "" {
			fields["image"] = rule
		}
	}

	if len(fields) > 0 {
		return nil, errors.NewValidationError(fields)
	}

	if missing := uc.catalog.Missing(categoryIDs); len(missing) > 0 {
		return nil, errors.NewUnknownCategoryError(missing)
	}

	// numeric уже проверен валидатором
	latitude, _ := strconv.ParseFloat(req.Latitude, 64)
	longitude, _ := strconv.ParseFloat(req.Longitude, 64)

	point := &domain.Point{
		Name:      req.Name,
		Email:     req.Email,
		Whatsapp:  req.Whatsapp,
		Latitude:  latitude,
		Longitude: longitude,
		City:      req.City,
		UF:        req.UF,
	}

	if image != nil {
		ref, err := uc.storage.Store(ctx, image.Data, image.Filename)
		if err != nil {
			return nil, err
		}
		point.Image = &ref
	}

	created, err := uc.pointRepo.Create(ctx, point, categoryIDs)
	if err != nil {
		uc.discardImage(point.Image)
		return nil, err
	}

	uc.cachePoint(ctx, created)

	uc.logger.Info("Point created",
		zap.Int64("point_id", created.ID),
		zap.String("uf", created.UF),
		zap.String("city", created.City),
	)

	return uc.present(created)
}

// GetPoint возвращает пункт по идентификатору
func (uc *PointUseCase) GetPoint(ctx context.Context, id int64) (*dto.PointResponse, error) {
	if id <= 0 {
		return nil, errors.NewValidationError(map[string]string{"id": "gt=0"})
	}

	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetPoint(ctx, id)
		if err != nil {
			uc.logger.Warn("Point cache read failed", zap.Int64("point_id", id), zap.Error(err))
		}
		if cached != nil {
			return uc.present(cached)
		}
	}

	point, err := uc.pointRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.cachePoint(ctx, point)

	return uc.present(point)
}

// QueryPoints ищет пункты по региону и категориям.
// Пустой фильтр возвращает все пункты.
func (uc *PointUseCase) QueryPoints(ctx context.Context, req dto.ListPointsRequest) ([]dto.PointResponse, error) {
	categoryIDs, ok := utils.ParseIDList(req.Items)
	if !ok {
		return nil, errors.NewValidationError(map[string]string{"items": "list"})
	}

	filter := domain.PointFilter{
		City:        req.City,
		UF:          req.UF,
		CategoryIDs: categoryIDs,
	}

	points, err := uc.pointRepo.Query(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]dto.PointResponse, 0, len(points))
	for _, point := range points {
		resp, err := uc.present(point)
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}

	return result, nil
}

func (uc *PointUseCase) present(point *domain.Point) (*dto.PointResponse, error) {
	resp, err := uc.presenter.Point(point, uc.catalog.Resolve(point.CategoryIDs))
	if err != nil {
		uc.logger.Error("Failed to present point", zap.Int64("point_id", point.ID), zap.Error(err))
		return nil, err
	}
	return &resp, nil
}

func (uc *PointUseCase) cachePoint(ctx context.Context, point *domain.Point) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.SetPoint(ctx, point, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache point", zap.Int64("point_id", point.ID), zap.Error(err))
	}
}

// discardImage удаляет изображение, оставшееся без пункта после неудачной транзакции
func (uc *PointUseCase) discardImage(ref *string) {
	if ref == nil {
		return
	}

	// запрос мог быть отменён, удаление всё равно выполняется
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := uc.storage.Delete(ctx, *ref); err != nil {
		uc.logger.Warn("Failed to delete orphaned image", zap.String("ref", *ref), zap.Error(err))
	}
}
